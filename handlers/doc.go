// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers of the quiz site.

# Handler Types

Each handler is a struct with database, config and renderer dependencies:

  - QuizHandler: Quiz CRUD, single quiz play and the all-quizzes random game
  - GroupHandler: Group CRUD, group random games and the scores page
  - HomeHandler: Home page counts

Handlers are created via constructor functions:

	quizHandler := handlers.NewQuizHandler(db, cfg, renderer)

WithPicker swaps the random source, which tests use to make draws
deterministic.

# Autoload

Routes with an {id} use WithQuiz or WithGroup, which load the entity
first and hand it to the handler. Malformed or unknown ids render the
404 page without calling the handler:

	handlers.WithQuiz(db, rd, quizHandler.Show)

# Errors

  - Unknown entities give the error page with 404
  - Invalid forms are redisplayed with 422 and the messages flashed
    after "There are errors in the form:"
  - Other store failures are logged, flashed and shown as 500

# Random Play

A game remembers the resolved quiz ids and the quiz currently shown in
the session. A correct answer resolves the quiz once; a wrong one ends
the game. When nothing is left the final score is shown and the game
starts over on the next visit. Group games are independent of each
other and of the all-quizzes game.
*/
package handlers
