// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quizzes/cliparse"
	"github.com/danielhkuo/quizzes/db"
)

// TestDBURL is an in-memory sqlite database, private to one connection
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// SetupTestDB creates a fresh test database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  cliparse.DatabaseSQLite,
		SessionTTL:    time.Hour,
		PageSize:      10,
		Env:           "test",
	}
}

// CreateTestQuiz inserts a quiz and returns its ID
func CreateTestQuiz(t *testing.T, conn *sql.DB, question, answer string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO quizzes (question, answer)
		VALUES ($1, $2)
		RETURNING id
	`, question, answer).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test quiz: %v", err)
	}

	return id
}

// CreateTestGroup inserts a group containing the given quizzes
func CreateTestGroup(t *testing.T, conn *sql.DB, name string, quizIDs ...int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow("INSERT INTO quiz_groups (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test group: %v", err)
	}

	for _, quizID := range quizIDs {
		AddQuizToGroup(t, conn, id, quizID)
	}

	return id
}

// AddQuizToGroup adds one membership row
func AddQuizToGroup(t *testing.T, conn *sql.DB, groupID, quizID int64) {
	t.Helper()

	_, err := conn.Exec("INSERT INTO group_quizzes (group_id, quiz_id) VALUES ($1, $2)", groupID, quizID)
	if err != nil {
		t.Fatalf("Failed to add quiz %d to group %d: %v", quizID, groupID, err)
	}
}

// CountRows counts the rows of a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates a url-encoded form POST
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// Browser sends requests to a handler and keeps the cookies it sets,
// so session state carries across requests like in a real browser
type Browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func NewBrowser(t *testing.T, handler http.Handler) *Browser {
	return &Browser{t: t, handler: handler, cookies: make(map[string]*http.Cookie)}
}

// Do serves req and stores the response cookies
func (b *Browser) Do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()

	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}

	return w
}

func (b *Browser) Get(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.Do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *Browser) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.Do(MakeFormRequest(http.MethodPost, path, form))
}

// Follow issues a GET to the Location of a redirect response
func (b *Browser) Follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	b.t.Helper()

	location := w.Header().Get("Location")
	if location == "" {
		b.t.Fatalf("Expected a redirect, got status %d without Location", w.Code)
	}
	return b.Get(location)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected status 303, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertBodyContains checks the body for each fragment
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q. Body: %s", f, body)
		}
	}
}

// AssertBodyNotContains is the inverse of AssertBodyContains
func AssertBodyNotContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if strings.Contains(body, f) {
			t.Errorf("Expected body not to contain %q", f)
		}
	}
}
