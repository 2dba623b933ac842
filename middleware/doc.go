// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware for the quiz site.

# Request Logging

	r.Use(middleware.WithLogging)

Logs request start and completion (status, duration_ms) under a
request_id. The id comes from the X-Request-ID header or a new uuid and
is echoed in the response.

# Method Override

HTML forms can only send GET and POST. A POST with _method=PUT, PATCH
or DELETE in the query string or form body is routed as that method:

	<form method="post" action="/quizzes/4?_method=DELETE">

Register it with r.Use so it runs before routing.

# Back Navigation

RememberBack records the last successful GET of a page worth returning
to (lists and show pages, not forms, play or check pages) in the
session. BackURL reads it for the /goback redirect, defaulting to
/quizzes.

# Rate Limiting

	r.With(middleware.RateLimit(30, time.Minute)).Get("/quizzes/{id}/check", ...)

Limits per connecting IP (RemoteAddr) using go-chi/httprate. Forwarded
headers are ignored so clients cannot rotate them past the limit.

# Client IP Extraction

Get the original client IP for logs (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
