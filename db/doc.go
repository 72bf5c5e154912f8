// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and applies schema migrations.

# Connecting

Open accepts the database type ("sqlite" or "postgres") and a connection URL:

	conn, err := db.Open("sqlite", "file:polls.db")

SQLite connections are limited to one open connection and have foreign
keys enabled.

# Migrations

Migrations are embedded SQL files applied with golang-migrate:

	if err := db.Migrate(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times. Each database type has its own directory
under migrations/.

# Tables

  - question: question_text, pub_date
  - choice: question_id, choice_text, votes

# Relationships

	question 1──* choice

The foreign key uses ON DELETE CASCADE.

# Indexes

  - question.pub_date
  - choice.question_id
*/
package db
