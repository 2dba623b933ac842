// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/session"
	"github.com/danielhkuo/quizzes/store"
)

// Renderer draws a named page with the session's pending flashes
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data any)
}

const formErrorsFlash = "There are errors in the form:"

// NotFound renders the 404 error page
func NotFound(rd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, rd, http.StatusNotFound, "Page not found.")
	}
}

func renderError(w http.ResponseWriter, r *http.Request, rd Renderer, status int, message string) {
	rd.Render(w, r, status, "error", models.ErrorView{Status: status, Message: message})
}

// fail turns a store error into an error page. ErrNotFound is a 404;
// anything else is logged, flashed with the given prefix and shown as 500.
func fail(w http.ResponseWriter, r *http.Request, rd Renderer, err error, flashPrefix string) {
	if errors.Is(err, store.ErrNotFound) {
		renderError(w, r, rd, http.StatusNotFound, "Not found.")
		return
	}

	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	if flashPrefix != "" {
		session.FromContext(r.Context()).AddFlash(models.FlashError, flashPrefix+err.Error())
	}
	renderError(w, r, rd, http.StatusInternalServerError, "Something went wrong.")
}

// flashFormErrors queues the validation messages for the redisplayed form
func flashFormErrors(r *http.Request, messages []string) {
	sess := session.FromContext(r.Context())
	sess.AddFlash(models.FlashError, formErrorsFlash)
	for _, msg := range messages {
		sess.AddFlash(models.FlashError, msg)
	}
}

func flashSuccess(r *http.Request, message string) {
	session.FromContext(r.Context()).AddFlash(models.FlashSuccess, message)
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// pathID parses a positive integer path parameter
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
