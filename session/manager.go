// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

const (
	CookieName = "quizzes_session"
	defaultTTL = 24 * time.Hour
)

type Manager struct {
	sm *scs.SessionManager
}

// NewManager creates the session middleware over store. secure marks the
// cookie HTTPS-only.
func NewManager(store scs.Store, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	sm := scs.New()
	sm.Store = store
	sm.Lifetime = ttl
	sm.Cookie.Name = CookieName
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Persist = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	sm.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		slog.Error("session error", "error", err, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}

	return &Manager{sm: sm}
}

// Middleware loads the session before the handler and commits it before
// the first byte of the response is written
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return m.sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := &Session{ctx: r.Context(), sm: m.sm}
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sess)))
	}))
}
