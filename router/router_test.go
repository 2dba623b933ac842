// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/quizzes/session"
	"github.com/danielhkuo/quizzes/testutil"
	"github.com/danielhkuo/quizzes/views"
)

func newTestRouter(t *testing.T) (*chi.Mux, *testutil.Browser) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	rd, err := views.New()
	if err != nil {
		t.Fatalf("Failed to load templates: %v", err)
	}
	sessions := session.NewManager(memstore.New(), cfg.SessionTTL, false)

	mux := NewRouter(db, cfg, sessions, rd)
	return mux, testutil.NewBrowser(t, mux)
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("Expected no session cookie for a health check")
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	// Every route is registered: unknown ids reach the handler and give
	// the 404 page, never chi's 405
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/"},
		{"GET", "/health"},
		{"GET", "/goback"},
		{"GET", "/quizzes"},
		{"GET", "/quizzes/new"},
		{"POST", "/quizzes/create"},
		{"GET", "/quizzes/randomplay"},
		{"GET", "/quizzes/randomCheck/1"},
		{"GET", "/quizzes/1"},
		{"PUT", "/quizzes/1"},
		{"DELETE", "/quizzes/1"},
		{"GET", "/quizzes/1/edit"},
		{"GET", "/quizzes/1/play"},
		{"GET", "/quizzes/1/check"},
		{"GET", "/groups"},
		{"GET", "/groups/new"},
		{"POST", "/groups/create"},
		{"GET", "/groups/scores"},
		{"GET", "/groups/1/edit"},
		{"PUT", "/groups/1"},
		{"DELETE", "/groups/1"},
		{"GET", "/groups/1/randomPlay"},
		{"GET", "/groups/1/randomCheck/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeFormRequest(tc.method, tc.path, url.Values{})
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/quizzes"},
		{"PUT", "/quizzes"},
		{"POST", "/quizzes/1"},
		{"PATCH", "/groups/1"},
		{"DELETE", "/groups"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405, got %d", w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertBodyContains(t, w, "Error 404")
}

func TestSessionCookie(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/quizzes", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Expected a session cookie after visiting a list page")
	}
	if !cookie.HttpOnly {
		t.Error("Expected the session cookie to be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Error("Expected SameSite=Lax")
	}
	if cookie.Value == "" {
		t.Error("Expected a session token")
	}
}

// TestQuizWorkflow walks through the site the way a visitor would:
// 1. Create quizzes
// 2. Put them in a group
// 3. Play the group and the random game
// 4. Check the scores
// 5. Delete the group
func TestQuizWorkflow(t *testing.T) {
	_, browser := newTestRouter(t)

	// Step 1: Create two quizzes
	var quizPaths []string
	for _, q := range []struct{ question, answer string }{
		{"Capital of France?", "Paris"},
		{"Capital of Japan?", "Tokyo"},
	} {
		w := browser.PostForm("/quizzes/create", url.Values{"question": {q.question}, "answer": {q.answer}})
		if w.Code != http.StatusSeeOther {
			t.Fatalf("Step 1 - Create quiz failed: %d - %s", w.Code, w.Body.String())
		}
		quizPaths = append(quizPaths, w.Header().Get("Location"))
	}

	list := browser.Get("/quizzes?search=capital")
	testutil.AssertBodyContains(t, list, "Capital of France?", "Capital of Japan?", "2 found")

	// Step 2: Create a group holding both
	w := browser.PostForm("/groups/create", url.Values{"name": {"Capitals"}})
	testutil.AssertRedirect(t, w, "/groups")

	groups := browser.Follow(w)
	testutil.AssertBodyContains(t, groups, "Group created successfully.", "Capitals")

	w = browser.PostForm("/groups/1?_method=PUT", url.Values{
		"name":       {"Capitals"},
		"quizzesIds": {strings.TrimPrefix(quizPaths[0], "/quizzes/"), strings.TrimPrefix(quizPaths[1], "/quizzes/")},
	})
	testutil.AssertRedirect(t, w, "/groups")

	edit := browser.Get("/groups/1/edit")
	testutil.AssertBodyContains(t, edit, `value="1" checked`, `value="2" checked`)

	// Step 3: Play the group until it runs out
	answers := map[string]string{"Capital of France?": "paris", "Capital of Japan?": "TOKYO"}
	for round := 1; round <= 2; round++ {
		play := browser.Get("/groups/1/randomPlay")
		testutil.AssertStatus(t, play, http.StatusOK)

		var quizID int
		var answer string
		for question, a := range answers {
			if strings.Contains(play.Body.String(), question) {
				answer = a
				break
			}
		}
		for _, p := range quizPaths {
			if strings.Contains(play.Body.String(), "/groups/1/randomCheck/"+strings.TrimPrefix(p, "/quizzes/")) {
				fmt.Sscanf(strings.TrimPrefix(p, "/quizzes/"), "%d", &quizID)
			}
		}
		if answer == "" || quizID == 0 {
			t.Fatalf("Step 3 - Round %d: no playable quiz in %s", round, play.Body.String())
		}

		check := browser.Get(fmt.Sprintf("/groups/1/randomCheck/%d?answer=%s", quizID, answer))
		testutil.AssertBodyContains(t, check, "is correct", fmt.Sprintf("Score: %d", round))
	}

	// Step 4: Scores reflect the group game only
	scores := browser.Get("/groups/scores")
	testutil.AssertBodyContains(t, scores, "<td>Capitals</td><td>2</td>", "Random play: 0")

	done := browser.Get("/groups/1/randomPlay")
	testutil.AssertBodyContains(t, done, "No more quizzes", "Final score: 2")

	// Step 5: Delete the group and go back to the list
	browser.Get("/groups")
	w = browser.PostForm("/groups/1?_method=DELETE", url.Values{})
	testutil.AssertRedirect(t, w, "/goback")

	back := browser.Follow(w)
	testutil.AssertRedirect(t, back, "/groups")

	final := browser.Follow(back)
	testutil.AssertBodyContains(t, final, "Group deleted successfully.", "No groups")
}
