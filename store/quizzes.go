// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/danielhkuo/quizzes/models"
)

var spaceRun = regexp.MustCompile(` +`)

// SearchPattern turns a search string into a LIKE pattern: every run of
// spaces matches anything, and so do both ends. Empty search is no filter.
func SearchPattern(search string) string {
	if search == "" {
		return ""
	}
	return "%" + spaceRun.ReplaceAllString(strings.ToLower(search), "%") + "%"
}

func searchClause(search string, next int) (string, []any) {
	pattern := SearchPattern(search)
	if pattern == "" {
		return "", nil
	}
	return fmt.Sprintf(" WHERE LOWER(question) LIKE $%d", next), []any{pattern}
}

func CountQuizzes(ctx context.Context, db *sql.DB, search string) (int, error) {
	if err := ensureContext(ctx); err != nil {
		return 0, err
	}

	where, args := searchClause(search, 1)

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quizzes"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return count, nil
}

// ListQuizzes returns one page of quizzes ordered by id
func ListQuizzes(ctx context.Context, db *sql.DB, search string, limit, offset int) ([]models.Quiz, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}

	where, args := searchClause(search, 1)
	n := len(args)
	query := fmt.Sprintf("SELECT id, question, answer FROM quizzes%s ORDER BY id LIMIT $%d OFFSET $%d", where, n+1, n+2)
	args = append(args, limit, offset)

	return queryQuizzes(ctx, db, query, args...)
}

func AllQuizzes(ctx context.Context, db *sql.DB) ([]models.Quiz, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}
	return queryQuizzes(ctx, db, "SELECT id, question, answer FROM quizzes ORDER BY id")
}

func GetQuiz(ctx context.Context, db *sql.DB, id int64) (*models.Quiz, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{}
	err := db.QueryRowContext(ctx, "SELECT id, question, answer FROM quizzes WHERE id = $1", id).
		Scan(&quiz.ID, &quiz.Question, &quiz.Answer)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	return quiz, nil
}

func CreateQuiz(ctx context.Context, db *sql.DB, quiz models.Quiz) (int64, error) {
	if err := ensureContext(ctx); err != nil {
		return 0, err
	}

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO quizzes (question, answer)
		VALUES ($1, $2)
		RETURNING id
	`, quiz.Question, quiz.Answer).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create quiz: %w", err)
	}
	return id, nil
}

// UpdateQuiz saves question and answer only
func UpdateQuiz(ctx context.Context, db *sql.DB, quiz models.Quiz) error {
	if err := ensureContext(ctx); err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE quizzes
		SET question = $1, answer = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, quiz.Question, quiz.Answer, quiz.ID)
	if err != nil {
		return fmt.Errorf("update quiz: %w", err)
	}
	return expectOneRow(res, "update quiz")
}

// DeleteQuiz removes the quiz and its group memberships
func DeleteQuiz(ctx context.Context, db *sql.DB, id int64) error {
	if err := ensureContext(ctx); err != nil {
		return err
	}

	return withinTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM group_quizzes WHERE quiz_id = $1", id); err != nil {
			return fmt.Errorf("delete quiz memberships: %w", err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM quizzes WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete quiz: %w", err)
		}
		return expectOneRow(res, "delete quiz")
	})
}

func queryQuizzes(ctx context.Context, db *sql.DB, query string, args ...any) ([]models.Quiz, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []models.Quiz{}
	for rows.Next() {
		var q models.Quiz
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quizzes: %w", err)
	}
	return quizzes, nil
}

func expectOneRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
