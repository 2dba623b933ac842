// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/quizzes/session"
)

// DefaultBackURL is where /goback leads before any page was remembered
const DefaultBackURL = "/quizzes"

// Pages that are steps of a flow rather than places to come back to
var notRemembered = []string{"/new", "/edit", "/play", "/check", "/randomplay", "/randomPlay"}

// RememberBack stores the URL of successful list-like GET pages in the
// session so /goback can return to them. Must run inside the session
// middleware.
func RememberBack(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rememberable(r) {
			next.ServeHTTP(w, r)
			return
		}

		sess := session.FromContext(r.Context())
		target := r.URL.RequestURI()

		rec := &statusRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
			onHeader: func(status int) {
				if status < http.StatusBadRequest {
					sess.SetBackURL(target)
				}
			},
		}
		next.ServeHTTP(rec, r)

		if !rec.wroteHeader {
			sess.SetBackURL(target)
		}
	})
}

// BackURL is the page /goback redirects to
func BackURL(r *http.Request) string {
	if u := session.FromContext(r.Context()).BackURL(); u != "" {
		return u
	}
	return DefaultBackURL
}

func rememberable(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}

	path := r.URL.Path
	switch path {
	case "/goback", "/health", "/favicon.ico":
		return false
	}
	if strings.Contains(path, "/randomCheck/") {
		return false
	}
	for _, suffix := range notRemembered {
		if strings.HasSuffix(path, suffix) {
			return false
		}
	}
	return true
}
