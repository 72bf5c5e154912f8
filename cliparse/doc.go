// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path/URI or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - CORSOrigins: origins allowed to call the JSON API (default: *)

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type
	-cors      Comma-separated CORS origins
	-env-file  dotenv file to load if present (default: .env)

# Environment Variables

Flags fall back to environment variables, read with cleanenv:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGINS  → -cors

Variables in the dotenv file are loaded with godotenv first and never
replace variables already set. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - the port is not a number between 1 and 65535
*/
package cliparse
