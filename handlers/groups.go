// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quizzes/cliparse"
	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/session"
	"github.com/danielhkuo/quizzes/store"
)

type GroupHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	rd   Renderer
	pick store.Picker
}

func NewGroupHandler(db *sql.DB, cfg cliparse.Config, rd Renderer) *GroupHandler {
	return &GroupHandler{db: db, cfg: cfg, rd: rd, pick: store.DefaultPicker}
}

func (h *GroupHandler) WithPicker(pick store.Picker) *GroupHandler {
	h.pick = pick
	return h
}

// Index handles GET /groups
func (h *GroupHandler) Index(w http.ResponseWriter, r *http.Request) {
	groups, err := store.ListGroups(r.Context(), h.db)
	if err != nil {
		fail(w, r, h.rd, err, "Error listing the Groups: ")
		return
	}

	h.rd.Render(w, r, http.StatusOK, "groups/index", models.GroupListView{Groups: groups})
}

// New handles GET /groups/new
func (h *GroupHandler) New(w http.ResponseWriter, r *http.Request) {
	h.rd.Render(w, r, http.StatusOK, "groups/new", models.GroupFormView{})
}

// Create handles POST /groups/create
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := groupForm(r)
	if messages := form.Validate(); len(messages) > 0 {
		flashFormErrors(r, messages)
		h.rd.Render(w, r, http.StatusUnprocessableEntity, "groups/new", models.GroupFormView{Group: form.Group(0)})
		return
	}

	id, err := store.CreateGroup(r.Context(), h.db, form.Group(0))
	if err != nil {
		fail(w, r, h.rd, err, "Error creating a new Group: ")
		return
	}

	slog.Info("group created", "group_id", id)
	flashSuccess(r, "Group created successfully.")
	redirect(w, r, "/groups")
}

// Edit handles GET /groups/{id}/edit
func (h *GroupHandler) Edit(w http.ResponseWriter, r *http.Request, group *models.Group) {
	ctx := r.Context()

	selected, err := store.GroupQuizIDs(ctx, h.db, group.ID)
	if err != nil {
		fail(w, r, h.rd, err, "Error editing the Group: ")
		return
	}

	h.renderEdit(w, r, http.StatusOK, *group, selected)
}

// Update handles PUT /groups/{id}. The checked quizzes replace the
// whole membership.
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request, group *models.Group) {
	form := groupForm(r)
	if messages := form.Validate(); len(messages) > 0 {
		flashFormErrors(r, messages)
		h.renderEdit(w, r, http.StatusUnprocessableEntity, form.Group(group.ID), form.QuizIDs)
		return
	}

	if err := store.UpdateGroup(r.Context(), h.db, form.Group(group.ID), form.QuizIDs); err != nil {
		fail(w, r, h.rd, err, "Error editing the Group: ")
		return
	}

	slog.Info("group edited", "group_id", group.ID, "quizzes", len(form.QuizIDs))
	flashSuccess(r, "Group edited successfully.")
	redirect(w, r, "/groups")
}

func (h *GroupHandler) renderEdit(w http.ResponseWriter, r *http.Request, status int, group models.Group, selected []int64) {
	all, err := store.AllQuizzes(r.Context(), h.db)
	if err != nil {
		fail(w, r, h.rd, err, "Error editing the Group: ")
		return
	}

	h.rd.Render(w, r, status, "groups/edit", models.GroupFormView{
		Group:      group,
		AllQuizzes: all,
		Selected:   selected,
	})
}

// Delete handles DELETE /groups/{id}
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request, group *models.Group) {
	if err := store.DeleteGroup(r.Context(), h.db, group.ID); err != nil {
		fail(w, r, h.rd, err, "Error deleting the Group: ")
		return
	}

	sess := session.FromContext(r.Context())
	sess.DeleteGroupPlay(group.ID)

	slog.Info("group deleted", "group_id", group.ID)
	flashSuccess(r, "Group deleted successfully.")
	redirect(w, r, "/goback")
}

// RandomPlay handles GET /groups/{id}/randomPlay
func (h *GroupHandler) RandomPlay(w http.ResponseWriter, r *http.Request, group *models.Group) {
	sess := session.FromContext(r.Context())
	state := sess.GroupPlay(group.ID)

	quiz, err := nextQuiz(r.Context(), h.db, group.ID, state, h.pick)
	if errors.Is(err, store.ErrNotFound) {
		score := state.Score()
		sess.DeleteGroupPlay(group.ID)
		h.rd.Render(w, r, http.StatusOK, "play/random_nomore", models.RandomNoMoreView{Group: group, Score: score})
		return
	}
	if err != nil {
		fail(w, r, h.rd, err, "Error playing the Group: ")
		return
	}

	h.rd.Render(w, r, http.StatusOK, "play/random_play", models.RandomPlayView{
		Group: group,
		Quiz:  *quiz,
		Score: state.Score(),
	})
}

// RandomCheck handles GET /groups/{id}/randomCheck/{quizId}?answer=.
// Quizzes outside the group are not found.
func (h *GroupHandler) RandomCheck(w http.ResponseWriter, r *http.Request, group *models.Group) {
	quizID, ok := pathID(r, "quizId")
	if !ok {
		renderError(w, r, h.rd, http.StatusNotFound, "Quiz not found.")
		return
	}

	quiz, err := store.GetGroupQuiz(r.Context(), h.db, group.ID, quizID)
	if err != nil {
		fail(w, r, h.rd, err, "")
		return
	}

	answer := r.URL.Query().Get("answer")
	sess := session.FromContext(r.Context())

	result, score := checkRandom(sess.GroupPlay(group.ID), quiz, answer)
	if !result {
		sess.DeleteGroupPlay(group.ID)
	}

	h.rd.Render(w, r, http.StatusOK, "play/random_result", models.RandomResultView{
		Group:  group,
		Quiz:   *quiz,
		Answer: answer,
		Result: result,
		Score:  score,
	})
}

// Scores handles GET /groups/scores
func (h *GroupHandler) Scores(w http.ResponseWriter, r *http.Request) {
	groups, err := store.ListGroups(r.Context(), h.db)
	if err != nil {
		fail(w, r, h.rd, err, "Error listing the scores: ")
		return
	}

	sess := session.FromContext(r.Context())
	scores := make([]models.GroupScore, 0, len(groups))
	for _, g := range groups {
		scores = append(scores, models.GroupScore{Group: g, Score: sess.GroupScore(g.ID)})
	}

	h.rd.Render(w, r, http.StatusOK, "groups/scores", models.ScoresView{
		Scores:          scores,
		RandomPlayScore: sess.RandomPlayScore(),
	})
}

// groupForm reads the name and the checked quizzesIds. Values that are
// not ids are ignored.
func groupForm(r *http.Request) models.GroupForm {
	form := models.GroupForm{Name: r.PostFormValue("name")}
	for _, raw := range r.PostForm["quizzesIds"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		form.QuizIDs = append(form.QuizIDs, id)
	}
	form.Normalize()
	return form
}
