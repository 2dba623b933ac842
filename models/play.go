// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "slices"

// PlayState is the random-play progress of one game mode.
// LastQuizID is the quiz shown but not yet answered correctly, 0 if none.
type PlayState struct {
	Resolved   []int64 `json:"resolved"`
	LastQuizID int64   `json:"last_quiz_id"`
}

func (p *PlayState) IsResolved(quizID int64) bool {
	return slices.Contains(p.Resolved, quizID)
}

// Resolve records a correct answer. An id is only ever counted once.
// Reports whether the id was newly added.
func (p *PlayState) Resolve(quizID int64) bool {
	p.LastQuizID = 0
	if p.IsResolved(quizID) {
		return false
	}
	p.Resolved = append(p.Resolved, quizID)
	return true
}

func (p *PlayState) Score() int {
	if p == nil {
		return 0
	}
	return len(p.Resolved)
}

// Reset discards all progress
func (p *PlayState) Reset() {
	p.Resolved = nil
	p.LastQuizID = 0
}
