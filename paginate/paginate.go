// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package paginate

import (
	"net/url"
	"strconv"
)

// PageParam is the query parameter carrying the page number
const PageParam = "pageno"

// window is how many page links are shown on each side of the current page
const window = 2

type Link struct {
	Number  int
	URL     string
	Current bool
}

type Pagination struct {
	Total      int
	PerPage    int
	Current    int
	TotalPages int

	// Pages is the window of numbered links around Current
	Pages []Link
	First *Link
	Prev  *Link
	Next  *Link
	Last  *Link
}

// ParsePage reads a page number, anything invalid is page 1
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// New computes the pages for total items. Links keep the other query
// parameters of base and only replace the page number.
func New(total, perPage, current int, base *url.URL) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + perPage - 1) / perPage

	if current < 1 {
		current = 1
	}
	if totalPages > 0 && current > totalPages {
		current = totalPages
	}

	p := Pagination{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		TotalPages: totalPages,
	}

	if totalPages <= 1 {
		return p
	}

	link := func(n int) *Link {
		return &Link{Number: n, URL: pageURL(base, n), Current: n == current}
	}

	lo := max(1, current-window)
	hi := min(totalPages, current+window)
	for n := lo; n <= hi; n++ {
		p.Pages = append(p.Pages, *link(n))
	}

	if lo > 1 {
		p.First = link(1)
	}
	if hi < totalPages {
		p.Last = link(totalPages)
	}
	if current > 1 {
		p.Prev = link(current - 1)
	}
	if current < totalPages {
		p.Next = link(current + 1)
	}

	return p
}

// Offset is the number of items before the current page
func (p Pagination) Offset() int {
	return (p.Current - 1) * p.PerPage
}

func (p Pagination) Limit() int {
	return p.PerPage
}

// HasPages reports whether page controls should be shown
func (p Pagination) HasPages() bool {
	return p.TotalPages > 1
}

func pageURL(base *url.URL, n int) string {
	u := url.URL{}
	q := url.Values{}
	if base != nil {
		u.Path = base.Path
		q = base.Query()
	}
	q.Set(PageParam, strconv.Itoa(n))
	u.RawQuery = q.Encode()
	return u.String()
}
