// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quizzes web server.

Quizzes is a server-rendered trivia site: create questions with their
answers, collect them in groups, and play them one by one or in a
random game that keeps score for the browser session.

# Starting the Server

No settings are required:

	go run .

With sqlite (the default) a quizzes.db file is created in the working
directory. To use PostgreSQL:

	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): only with DATABASE_TYPE=postgres

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REDIS_ADDR (-redis): keep sessions in redis instead of memory
  - SESSION_TTL (-session-ttl): session lifetime (default: 24h)
  - PAGE_SIZE (-page-size): quizzes per list page (default: 10)
  - APP_ENV (-env): production switches to JSON logs and secure cookies

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (quizzes, groups, random play)
  - router: Route definitions using go-chi/chi
  - middleware: Logging, method override, back navigation, rate limiting
  - session: scs cookie sessions backed by memory or redis
  - views: Embedded html/template pages
  - store: SQL persistence for quizzes and groups
  - paginate: Page math and page links
  - models: Domain, form and view types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
