// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/quizzes/models"
)

// Picker returns a uniform random integer in [0, n)
type Picker func(n int) int

// DefaultPicker draws from math/rand/v2
func DefaultPicker(n int) int {
	return rand.IntN(n)
}

// PickRandomQuiz draws one quiz uniformly among those not in exclude.
// groupID 0 draws from every quiz, otherwise only from the group's quizzes.
// Returns ErrNotFound when nothing is left.
func PickRandomQuiz(ctx context.Context, db *sql.DB, groupID int64, exclude []int64, pick Picker) (*models.Quiz, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}
	if pick == nil {
		pick = DefaultPicker
	}

	from := " FROM quizzes q WHERE 1 = 1"
	var args []any
	if groupID != 0 {
		from = " FROM quizzes q JOIN group_quizzes gq ON gq.quiz_id = q.id WHERE gq.group_id = $1"
		args = append(args, groupID)
	}
	clause, excludeArgs := notIn("q.id", exclude, len(args)+1)
	from += clause
	args = append(args, excludeArgs...)

	// Count what is actually left so the offset stays in range even when
	// resolved quizzes were deleted in the meantime.
	var remaining int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*)"+from, args...).Scan(&remaining); err != nil {
		return nil, fmt.Errorf("count remaining quizzes: %w", err)
	}
	if remaining == 0 {
		return nil, ErrNotFound
	}

	offset := pick(remaining)
	if offset < 0 || offset >= remaining {
		offset = 0
	}

	query := fmt.Sprintf("SELECT q.id, q.question, q.answer%s ORDER BY q.id LIMIT 1 OFFSET $%d", from, len(args)+1)
	args = append(args, offset)

	quiz := &models.Quiz{}
	err := db.QueryRowContext(ctx, query, args...).Scan(&quiz.ID, &quiz.Question, &quiz.Answer)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("pick random quiz: %w", err)
	}
	return quiz, nil
}
