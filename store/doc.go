// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store reads and writes quizzes and groups.

Every function takes the request context and the *sql.DB:

	quiz, err := store.GetQuiz(ctx, db, id)
	if errors.Is(err, store.ErrNotFound) {
		// 404
	}

Queries use $n placeholders and portable SQL so the same code runs on
sqlite and postgres.

# Random Play

PickRandomQuiz draws a quiz uniformly among the ones not yet resolved,
optionally restricted to a group:

	quiz, err := store.PickRandomQuiz(ctx, db, groupID, state.Resolved, store.DefaultPicker)
*/
package store
