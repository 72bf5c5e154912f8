// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Visitors browse the latest published questions, vote for a choice and
read the results. A small JSON API creates questions and records votes.

# Starting the Server

The server reads environment variables (optionally from a .env file) or
CLI flags:

	DATABASE_URL=polls.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): Server port (default: 3318)
  - CORS_ORIGINS (-cors): Comma-separated origins allowed to call /api (default: *)
  - -env-file: dotenv file to load first (default: .env)

Migrations run on startup.

# Architecture

  - handlers: HTML pages and JSON endpoints
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Queries over question and choice
  - pages: Embedded HTML templates
  - models: Records and request/response types
  - db: Connections and migrations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
