// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, form, and view types.

# Domain Types

  - Quiz: question/answer pair
  - Group: named set of quizzes
  - Flash: one-time message for the next page
  - PlayState: random-play progress (resolved ids, pending quiz)

# Forms

QuizForm and GroupForm carry submitted values. Normalize trims them and
Validate returns the messages shown above the form:

	form := models.QuizForm{Question: r.FormValue("question"), Answer: r.FormValue("answer")}
	form.Normalize()
	if msgs := form.Validate(); msgs != nil {
		// redisplay
	}

Constraints are go-playground/validator struct tags.

# Views

The *View types are the template data of each page.
*/
package models
