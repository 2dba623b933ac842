// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quizzes/models"
)

func ListGroups(ctx context.Context, db *sql.DB) ([]models.Group, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, name FROM quiz_groups ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

func CountGroups(ctx context.Context, db *sql.DB) (int, error) {
	if err := ensureContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quiz_groups").Scan(&count); err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return count, nil
}

func GetGroup(ctx context.Context, db *sql.DB, id int64) (*models.Group, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}

	group := &models.Group{}
	err := db.QueryRowContext(ctx, "SELECT id, name FROM quiz_groups WHERE id = $1", id).Scan(&group.ID, &group.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get group: %w", err)
	}
	return group, nil
}

func CreateGroup(ctx context.Context, db *sql.DB, group models.Group) (int64, error) {
	if err := ensureContext(ctx); err != nil {
		return 0, err
	}

	var id int64
	err := db.QueryRowContext(ctx, "INSERT INTO quiz_groups (name) VALUES ($1) RETURNING id", group.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create group: %w", err)
	}
	return id, nil
}

// UpdateGroup saves the name and replaces the membership with quizIDs.
// Ids of quizzes that do not exist are skipped.
func UpdateGroup(ctx context.Context, db *sql.DB, group models.Group, quizIDs []int64) error {
	if err := ensureContext(ctx); err != nil {
		return err
	}

	return withinTx(ctx, db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE quiz_groups
			SET name = $1, updated_at = CURRENT_TIMESTAMP
			WHERE id = $2
		`, group.Name, group.ID)
		if err != nil {
			return fmt.Errorf("update group: %w", err)
		}
		if err := expectOneRow(res, "update group"); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM group_quizzes WHERE group_id = $1", group.ID); err != nil {
			return fmt.Errorf("clear group quizzes: %w", err)
		}

		seen := make(map[int64]bool, len(quizIDs))
		for _, quizID := range quizIDs {
			if seen[quizID] {
				continue
			}
			seen[quizID] = true

			_, err := tx.ExecContext(ctx, `
				INSERT INTO group_quizzes (group_id, quiz_id)
				SELECT CAST($1 AS BIGINT), id FROM quizzes WHERE id = $2
			`, group.ID, quizID)
			if err != nil {
				return fmt.Errorf("add quiz %d to group: %w", quizID, err)
			}
		}
		return nil
	})
}

func DeleteGroup(ctx context.Context, db *sql.DB, id int64) error {
	if err := ensureContext(ctx); err != nil {
		return err
	}

	return withinTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM group_quizzes WHERE group_id = $1", id); err != nil {
			return fmt.Errorf("delete group memberships: %w", err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM quiz_groups WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		return expectOneRow(res, "delete group")
	})
}

// GroupQuizIDs returns the ids of the group's quizzes in ascending order
func GroupQuizIDs(ctx context.Context, db *sql.DB, groupID int64) ([]int64, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT quiz_id FROM group_quizzes WHERE group_id = $1 ORDER BY quiz_id", groupID)
	if err != nil {
		return nil, fmt.Errorf("query group quizzes: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan group quiz: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group quizzes: %w", err)
	}
	return ids, nil
}

func CountGroupQuizzes(ctx context.Context, db *sql.DB, groupID int64) (int, error) {
	if err := ensureContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM group_quizzes WHERE group_id = $1", groupID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count group quizzes: %w", err)
	}
	return count, nil
}

// GetGroupQuiz returns the quiz only if it belongs to the group
func GetGroupQuiz(ctx context.Context, db *sql.DB, groupID, quizID int64) (*models.Quiz, error) {
	if err := ensureContext(ctx); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{}
	err := db.QueryRowContext(ctx, `
		SELECT q.id, q.question, q.answer
		FROM quizzes q
		JOIN group_quizzes gq ON gq.quiz_id = q.id
		WHERE gq.group_id = $1 AND q.id = $2
	`, groupID, quizID).Scan(&quiz.ID, &quiz.Question, &quiz.Answer)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get group quiz: %w", err)
	}
	return quiz, nil
}
