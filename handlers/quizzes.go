// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quizzes/cliparse"
	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/paginate"
	"github.com/danielhkuo/quizzes/session"
	"github.com/danielhkuo/quizzes/store"
)

type QuizHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	rd   Renderer
	pick store.Picker
}

func NewQuizHandler(db *sql.DB, cfg cliparse.Config, rd Renderer) *QuizHandler {
	return &QuizHandler{db: db, cfg: cfg, rd: rd, pick: store.DefaultPicker}
}

// WithPicker replaces the random source of random play
func (h *QuizHandler) WithPicker(pick store.Picker) *QuizHandler {
	h.pick = pick
	return h
}

func (h *QuizHandler) pageSize() int {
	if h.cfg.PageSize > 0 {
		return h.cfg.PageSize
	}
	return cliparse.DefaultPageSize
}

// Index handles GET /quizzes?search=&pageno=
func (h *QuizHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	search := r.URL.Query().Get("search")

	total, err := store.CountQuizzes(ctx, h.db, search)
	if err != nil {
		fail(w, r, h.rd, err, "Error listing the Quizzes: ")
		return
	}

	page := paginate.ParsePage(r.URL.Query().Get(paginate.PageParam))
	pagination := paginate.New(total, h.pageSize(), page, r.URL)

	quizzes, err := store.ListQuizzes(ctx, h.db, search, pagination.Limit(), pagination.Offset())
	if err != nil {
		fail(w, r, h.rd, err, "Error listing the Quizzes: ")
		return
	}

	h.rd.Render(w, r, http.StatusOK, "quizzes/index", models.QuizListView{
		Quizzes:    quizzes,
		Search:     search,
		Total:      total,
		Pagination: pagination,
	})
}

// New handles GET /quizzes/new
func (h *QuizHandler) New(w http.ResponseWriter, r *http.Request) {
	h.rd.Render(w, r, http.StatusOK, "quizzes/new", models.QuizFormView{})
}

// Create handles POST /quizzes/create
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := quizForm(r)
	if messages := form.Validate(); len(messages) > 0 {
		flashFormErrors(r, messages)
		h.rd.Render(w, r, http.StatusUnprocessableEntity, "quizzes/new", models.QuizFormView{Quiz: form.Quiz(0)})
		return
	}

	id, err := store.CreateQuiz(r.Context(), h.db, form.Quiz(0))
	if err != nil {
		fail(w, r, h.rd, err, "Error creating a new Quiz: ")
		return
	}

	slog.Info("quiz created", "quiz_id", id)
	flashSuccess(r, "Quiz created successfully.")
	redirect(w, r, fmt.Sprintf("/quizzes/%d", id))
}

// Show handles GET /quizzes/{id}
func (h *QuizHandler) Show(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	h.rd.Render(w, r, http.StatusOK, "quizzes/show", models.QuizView{Quiz: *quiz})
}

// Edit handles GET /quizzes/{id}/edit
func (h *QuizHandler) Edit(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	h.rd.Render(w, r, http.StatusOK, "quizzes/edit", models.QuizFormView{Quiz: *quiz})
}

// Update handles PUT /quizzes/{id}
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	form := quizForm(r)
	if messages := form.Validate(); len(messages) > 0 {
		flashFormErrors(r, messages)
		h.rd.Render(w, r, http.StatusUnprocessableEntity, "quizzes/edit", models.QuizFormView{Quiz: form.Quiz(quiz.ID)})
		return
	}

	if err := store.UpdateQuiz(r.Context(), h.db, form.Quiz(quiz.ID)); err != nil {
		fail(w, r, h.rd, err, "Error editing the Quiz: ")
		return
	}

	slog.Info("quiz edited", "quiz_id", quiz.ID)
	flashSuccess(r, "Quiz edited successfully.")
	redirect(w, r, fmt.Sprintf("/quizzes/%d", quiz.ID))
}

// Delete handles DELETE /quizzes/{id}
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	if err := store.DeleteQuiz(r.Context(), h.db, quiz.ID); err != nil {
		fail(w, r, h.rd, err, "Error deleting the Quiz: ")
		return
	}

	// The show page of the deleted quiz is no place to go back to
	sess := session.FromContext(r.Context())
	if sess.BackURL() == fmt.Sprintf("/quizzes/%d", quiz.ID) {
		sess.SetBackURL("/quizzes")
	}

	slog.Info("quiz deleted", "quiz_id", quiz.ID)
	flashSuccess(r, "Quiz deleted successfully.")
	redirect(w, r, "/goback")
}

// Play handles GET /quizzes/{id}/play?answer=
func (h *QuizHandler) Play(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	h.rd.Render(w, r, http.StatusOK, "quizzes/play", models.PlayView{
		Quiz:   *quiz,
		Answer: r.URL.Query().Get("answer"),
	})
}

// Check handles GET /quizzes/{id}/check?answer=
func (h *QuizHandler) Check(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	answer := r.URL.Query().Get("answer")
	h.rd.Render(w, r, http.StatusOK, "quizzes/result", models.ResultView{
		Quiz:   *quiz,
		Answer: answer,
		Result: models.CheckAnswer(quiz.Answer, answer),
	})
}

// RandomPlay handles GET /quizzes/randomplay
func (h *QuizHandler) RandomPlay(w http.ResponseWriter, r *http.Request) {
	state := session.FromContext(r.Context()).RandomPlay()

	quiz, err := nextQuiz(r.Context(), h.db, 0, state, h.pick)
	if errors.Is(err, store.ErrNotFound) {
		score := state.Score()
		state.Reset()
		h.rd.Render(w, r, http.StatusOK, "play/random_nomore", models.RandomNoMoreView{Score: score})
		return
	}
	if err != nil {
		fail(w, r, h.rd, err, "Error playing random quizzes: ")
		return
	}

	h.rd.Render(w, r, http.StatusOK, "play/random_play", models.RandomPlayView{
		Quiz:  *quiz,
		Score: state.Score(),
	})
}

// RandomCheck handles GET /quizzes/randomCheck/{id}?answer=
func (h *QuizHandler) RandomCheck(w http.ResponseWriter, r *http.Request, quiz *models.Quiz) {
	answer := r.URL.Query().Get("answer")
	state := session.FromContext(r.Context()).RandomPlay()

	result, score := checkRandom(state, quiz, answer)
	if !result {
		state.Reset()
	}

	h.rd.Render(w, r, http.StatusOK, "play/random_result", models.RandomResultView{
		Quiz:   *quiz,
		Answer: answer,
		Result: result,
		Score:  score,
	})
}

func quizForm(r *http.Request) models.QuizForm {
	form := models.QuizForm{
		Question: r.PostFormValue("question"),
		Answer:   r.PostFormValue("answer"),
	}
	form.Normalize()
	return form
}
