// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/store"
)

type QuizHandlerFunc func(w http.ResponseWriter, r *http.Request, quiz *models.Quiz)

type GroupHandlerFunc func(w http.ResponseWriter, r *http.Request, group *models.Group)

// WithQuiz loads the quiz named by the {id} path parameter before next
// runs. Malformed or unknown ids render the 404 page.
func WithQuiz(db *sql.DB, rd Renderer, next QuizHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			renderError(w, r, rd, http.StatusNotFound, "Quiz not found.")
			return
		}

		quiz, err := store.GetQuiz(r.Context(), db, id)
		if err != nil {
			fail(w, r, rd, err, "")
			return
		}

		next(w, r, quiz)
	}
}

// WithGroup is WithQuiz for groups
func WithGroup(db *sql.DB, rd Renderer, next GroupHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			renderError(w, r, rd, http.StatusNotFound, "Group not found.")
			return
		}

		group, err := store.GetGroup(r.Context(), db, id)
		if err != nil {
			fail(w, r, rd, err, "")
			return
		}

		next(w, r, group)
	}
}
