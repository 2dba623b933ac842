// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/quizzes/models"
	"github.com/danielhkuo/quizzes/store"
)

// nextQuiz returns the pending quiz of a game, or draws a new one among
// the quizzes not resolved yet. groupID 0 plays every quiz.
// Returns store.ErrNotFound once everything is resolved.
func nextQuiz(ctx context.Context, db *sql.DB, groupID int64, state *models.PlayState, pick store.Picker) (*models.Quiz, error) {
	if state.LastQuizID != 0 {
		var quiz *models.Quiz
		var err error
		if groupID == 0 {
			quiz, err = store.GetQuiz(ctx, db, state.LastQuizID)
		} else {
			quiz, err = store.GetGroupQuiz(ctx, db, groupID, state.LastQuizID)
		}
		if err == nil {
			return quiz, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		// Deleted or removed from the group since it was drawn
		state.LastQuizID = 0
	}

	quiz, err := store.PickRandomQuiz(ctx, db, groupID, state.Resolved, pick)
	if err != nil {
		return nil, err
	}
	state.LastQuizID = quiz.ID
	return quiz, nil
}

// checkRandom applies an answer to a game and returns whether it was
// right and the score to show. A miss ends the game: the score is the
// progress made before it and the caller discards the state.
func checkRandom(state *models.PlayState, quiz *models.Quiz, answer string) (bool, int) {
	if !models.CheckAnswer(quiz.Answer, answer) {
		return false, state.Score()
	}
	state.Resolve(quiz.ID)
	return true, state.Score()
}
