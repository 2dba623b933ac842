// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2/memstore"

	"github.com/danielhkuo/quizzes/session"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/quizzes", nil)
	w := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"SeeOther", http.StatusSeeOther, ""},
		{"Unprocessable", http.StatusUnprocessableEntity, "<p>errors</p>"},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))

			req := httptest.NewRequest("POST", "/quizzes/create", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestMethodOverride(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		target   string
		form     url.Values
		expected string
	}{
		{"query PUT", "POST", "/quizzes/1?_method=PUT", nil, "PUT"},
		{"query lowercase delete", "POST", "/quizzes/1?_method=delete", nil, "DELETE"},
		{"form field", "POST", "/groups/1", url.Values{"_method": {"PUT"}, "name": {"x"}}, "PUT"},
		{"plain POST", "POST", "/quizzes/create", url.Values{"question": {"q"}}, "POST"},
		{"unsupported override", "POST", "/quizzes/1?_method=TRACE", nil, "POST"},
		{"GET is never overridden", "GET", "/quizzes/1?_method=DELETE", nil, "GET"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Method
			}))

			var req *http.Request
			if tc.form != nil {
				req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if seen != tc.expected {
				t.Errorf("Expected method %s, got %s", tc.expected, seen)
			}
		})
	}
}

func TestMethodOverride_KeepsFormValues(t *testing.T) {
	var name string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name = r.FormValue("name")
	}))

	form := url.Values{"_method": {"PUT"}, "name": {"Capitals"}}
	req := httptest.NewRequest("POST", "/groups/3", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if name != "Capitals" {
		t.Errorf("Expected form value 'Capitals' after override, got '%s'", name)
	}
}

// rememberedBackURL runs one request through the session and back-URL
// middleware and returns the back URL the session holds afterwards
func rememberedBackURL(t *testing.T, method, target string, status int) string {
	t.Helper()

	manager := session.NewManager(memstore.New(), time.Hour, false)

	var back string
	probe := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			back = session.FromContext(r.Context()).BackURL()
		})
	}

	handler := manager.Middleware(probe(RememberBack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))
	return back
}

func TestRememberBack(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		target   string
		status   int
		expected string
	}{
		{"quiz list with query", "GET", "/quizzes?search=capital&pageno=2", http.StatusOK, "/quizzes?search=capital&pageno=2"},
		{"group list", "GET", "/groups", http.StatusOK, "/groups"},
		{"show page", "GET", "/quizzes/4", http.StatusOK, "/quizzes/4"},
		{"new form", "GET", "/quizzes/new", http.StatusOK, ""},
		{"edit form", "GET", "/groups/2/edit", http.StatusOK, ""},
		{"play page", "GET", "/quizzes/4/play", http.StatusOK, ""},
		{"check page", "GET", "/quizzes/4/check?answer=x", http.StatusOK, ""},
		{"random play", "GET", "/quizzes/randomplay", http.StatusOK, ""},
		{"group random play", "GET", "/groups/2/randomPlay", http.StatusOK, ""},
		{"random check", "GET", "/groups/2/randomCheck/4?answer=x", http.StatusOK, ""},
		{"goback itself", "GET", "/goback", http.StatusSeeOther, ""},
		{"error page", "GET", "/quizzes/999", http.StatusNotFound, ""},
		{"non-GET", "POST", "/quizzes/create", http.StatusSeeOther, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rememberedBackURL(t, tc.method, tc.target, tc.status)
			if got != tc.expected {
				t.Errorf("Expected back URL %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestBackURL_Default(t *testing.T) {
	req := httptest.NewRequest("GET", "/goback", nil)
	if got := BackURL(req); got != DefaultBackURL {
		t.Errorf("Expected %q without a session, got %q", DefaultBackURL, got)
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote string) int {
		req := httptest.NewRequest("GET", "/quizzes/1/check?answer=x", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := send("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 over the limit, got %d", code)
	}
	if code := send("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("Expected a different client to pass, got %d", code)
	}
}

func TestRateLimit_IgnoresForwardedHeaders(t *testing.T) {
	handler := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwarded string) int {
		req := httptest.NewRequest("GET", "/quizzes/randomCheck/1?answer=x", nil)
		req.RemoteAddr = "192.168.1.50:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		req.Header.Set("X-Real-IP", forwarded)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("203.0.113.1"); code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", code)
	}
	if code := send("203.0.113.2"); code != http.StatusTooManyRequests {
		t.Errorf("Rotating X-Forwarded-For should not reset the limit, got %d", code)
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	var ids []string
	handler := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, w.Header().Get(RequestIDHeader))
	}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/quizzes", nil))
	}
	if ids[0] == "" || ids[0] == ids[1] {
		t.Errorf("Expected a fresh id per request, got %v", ids)
	}

	req := httptest.NewRequest("GET", "/quizzes", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("Expected the client id to be echoed, got %q", got)
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.195",
		},
		{
			name:       "X-Forwarded-For chain",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195,70.41.3.18,150.172.238.178"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.195",
		},
		{
			name:       "X-Forwarded-For with space after comma",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.195",
		},
		{
			name:       "X-Real-IP",
			headers:    map[string]string{"X-Real-IP": "198.51.100.178"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "198.51.100.178",
		},
		{
			name: "X-Forwarded-For takes precedence over X-Real-IP",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.195",
				"X-Real-IP":       "198.51.100.178",
			},
			remoteAddr: "10.0.0.1:12345",
			expected:   "203.0.113.195",
		},
		{
			name:       "RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.100:54321",
			expected:   "192.168.1.100",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.100",
			expected:   "192.168.1.100",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "[::1]:12345",
			expected:   "::1",
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "2001:db8::1",
		},
		{
			name:       "Empty X-Forwarded-For falls through",
			headers:    map[string]string{"X-Forwarded-For": ""},
			remoteAddr: "192.168.1.50:8080",
			expected:   "192.168.1.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			result := GetClientIP(req)

			if result != tc.expected {
				t.Errorf("Expected IP '%s', got '%s'", tc.expected, result)
			}
		})
	}
}
