// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quizzes/middleware"
	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/store"
)

type HomeHandler struct {
	db *sql.DB
	rd Renderer
}

func NewHomeHandler(db *sql.DB, rd Renderer) *HomeHandler {
	return &HomeHandler{db: db, rd: rd}
}

// Home handles GET /
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	quizCount, err := store.CountQuizzes(ctx, h.db, "")
	if err != nil {
		fail(w, r, h.rd, err, "")
		return
	}
	groupCount, err := store.CountGroups(ctx, h.db)
	if err != nil {
		fail(w, r, h.rd, err, "")
		return
	}

	h.rd.Render(w, r, http.StatusOK, "home", models.HomeView{QuizCount: quizCount, GroupCount: groupCount})
}

// GoBack handles GET /goback
func GoBack(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, middleware.BackURL(r))
}
