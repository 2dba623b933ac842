// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connecting

Open registers both drivers and pings the database:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (lib/pq).

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - quizzes: question/answer pairs
  - quiz_groups: named collections of quizzes
  - group_quizzes: many-to-many membership, cascades on delete of either side

SQLite only enforces the cascades when the connection enables foreign
keys (the default URL sets _pragma=foreign_keys(1)); the store removes
memberships explicitly so both backends behave the same.
*/
package db
