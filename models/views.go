// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/quizzes/paginate"

// View types passed to templates

type QuizListView struct {
	Quizzes    []Quiz
	Search     string
	Total      int
	Pagination paginate.Pagination
}

type QuizView struct {
	Quiz Quiz
}

type QuizFormView struct {
	Quiz Quiz
}

type PlayView struct {
	Quiz   Quiz
	Answer string
}

type ResultView struct {
	Quiz   Quiz
	Answer string
	Result bool
}

// Group is nil for the all-quizzes game
type RandomPlayView struct {
	Group *Group
	Quiz  Quiz
	Score int
}

type RandomResultView struct {
	Group  *Group
	Quiz   Quiz
	Answer string
	Result bool
	Score  int
}

type RandomNoMoreView struct {
	Group *Group
	Score int
}

type GroupListView struct {
	Groups []Group
}

type GroupFormView struct {
	Group      Group
	AllQuizzes []Quiz
	Selected   []int64
}

type GroupScore struct {
	Group Group
	Score int
}

type ScoresView struct {
	Scores          []GroupScore
	RandomPlayScore int
}

type HomeView struct {
	QuizCount  int
	GroupCount int
}

type ErrorView struct {
	Status  int
	Message string
}
