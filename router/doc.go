// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the quiz site.

# Route Registration

NewRouter creates a chi.Mux with every page:

	mux := router.NewRouter(db, cfg, sessions, renderer)

chi is used instead of http.ServeMux because the routes mix static and
parameter segments at the same depth (/quizzes/randomCheck/{id} next to
/quizzes/{id}/check), which ServeMux rejects as conflicting.

# Middleware

Every request passes through, in order: request logging, method
override, session load/save, back-URL tracking. Answer checks are also
rate limited per client IP.

# Endpoints

	GET    /                                  Home
	GET    /health                            Health check
	GET    /goback                            Back to the last list page

	GET    /quizzes?search=&pageno=           List, search and paginate
	GET    /quizzes/new                       New quiz form
	POST   /quizzes/create                    Create quiz
	GET    /quizzes/{id}                      Show quiz
	GET    /quizzes/{id}/edit                 Edit quiz form
	PUT    /quizzes/{id}                      Update quiz
	DELETE /quizzes/{id}                      Delete quiz
	GET    /quizzes/{id}/play?answer=         Play one quiz
	GET    /quizzes/{id}/check?answer=        Check the answer
	GET    /quizzes/randomplay                Random play over all quizzes
	GET    /quizzes/randomCheck/{id}?answer=  Check a random play answer

	GET    /groups                            List groups
	GET    /groups/new                        New group form
	POST   /groups/create                     Create group
	GET    /groups/scores                     Session scores
	GET    /groups/{id}/edit                  Edit name and quizzes
	PUT    /groups/{id}                       Update group
	DELETE /groups/{id}                       Delete group
	GET    /groups/{id}/randomPlay            Random play in a group
	GET    /groups/{id}/randomCheck/{quizId}  Check a group answer

PUT and DELETE come from HTML forms as POST with ?_method=.
*/
package router
