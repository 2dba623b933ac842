// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/quizzes/cliparse"
	"github.com/danielhkuo/quizzes/handlers"
	"github.com/danielhkuo/quizzes/middleware"
	"github.com/danielhkuo/quizzes/session"
)

// Answer checks per client IP and minute
const (
	checkLimit  = 60
	checkWindow = time.Minute
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Manager, rd handlers.Renderer) *chi.Mux {
	r := chi.NewRouter()

	// Method override must run before routing
	r.Use(middleware.WithLogging)
	r.Use(middleware.MethodOverride)
	r.Use(sessions.Middleware)
	r.Use(middleware.RememberBack)

	r.NotFound(handlers.NotFound(rd))

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(db, rd)
	quizHandler := handlers.NewQuizHandler(db, cfg, rd)
	groupHandler := handlers.NewGroupHandler(db, cfg, rd)

	limitChecks := middleware.RateLimit(checkLimit, checkWindow)

	withQuiz := func(h handlers.QuizHandlerFunc) http.HandlerFunc {
		return handlers.WithQuiz(db, rd, h)
	}
	withGroup := func(h handlers.GroupHandlerFunc) http.HandlerFunc {
		return handlers.WithGroup(db, rd, h)
	}

	r.Get("/", homeHandler.Home)
	r.Get("/health", handlers.Health)
	r.Get("/goback", handlers.GoBack)

	// Quizzes. Static segments win over {id} in chi's tree.
	r.Get("/quizzes", quizHandler.Index)
	r.Get("/quizzes/new", quizHandler.New)
	r.Post("/quizzes/create", quizHandler.Create)
	r.Get("/quizzes/randomplay", quizHandler.RandomPlay)
	r.With(limitChecks).Get("/quizzes/randomCheck/{id}", withQuiz(quizHandler.RandomCheck))
	r.Get("/quizzes/{id}", withQuiz(quizHandler.Show))
	r.Put("/quizzes/{id}", withQuiz(quizHandler.Update))
	r.Delete("/quizzes/{id}", withQuiz(quizHandler.Delete))
	r.Get("/quizzes/{id}/edit", withQuiz(quizHandler.Edit))
	r.Get("/quizzes/{id}/play", withQuiz(quizHandler.Play))
	r.With(limitChecks).Get("/quizzes/{id}/check", withQuiz(quizHandler.Check))

	// Groups
	r.Get("/groups", groupHandler.Index)
	r.Get("/groups/new", groupHandler.New)
	r.Post("/groups/create", groupHandler.Create)
	r.Get("/groups/scores", groupHandler.Scores)
	r.Get("/groups/{id}/edit", withGroup(groupHandler.Edit))
	r.Put("/groups/{id}", withGroup(groupHandler.Update))
	r.Delete("/groups/{id}", withGroup(groupHandler.Delete))
	r.Get("/groups/{id}/randomPlay", withGroup(groupHandler.RandomPlay))
	r.With(limitChecks).Get("/groups/{id}/randomCheck/{quizId}", withGroup(groupHandler.RandomCheck))

	return r
}
