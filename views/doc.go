// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages.

Templates are embedded from templates/. Each page file defines "title"
and "content" and is parsed together with layout.html and partials/:

	rd, err := views.New()
	rd.Render(w, r, http.StatusOK, "quizzes/index", models.QuizListView{...})

Render pops the session's flash messages into the layout, so a flash
is shown exactly once.
*/
package views
