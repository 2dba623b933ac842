// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p               Server port (default: 3318)
	-d               Database URL
	-t               Database type: sqlite (default) or postgres
	-redis           Redis address for the session store
	-session-ttl     Session lifetime (default: 24h)
	-page-size       Quizzes per list page (default: 10)
	-env             Application environment (default: local)

# Environment Variables

Flags fall back to environment variables, then to config.yaml in the
working directory or ./config:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	REDIS_ADDR     → -redis
	SESSION_TTL    → -session-ttl
	PAGE_SIZE      → -page-size
	APP_ENV        → -env

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is postgres and no DATABASE_URL is given
  - DATABASE_TYPE is neither sqlite nor postgres

With sqlite and no URL, a local quizzes.db file is used.
*/
package cliparse
