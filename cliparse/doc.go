// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and environment
variables.

# Precedence

CLI flags win over environment variables, which win over defaults:

	toolvote -p 3321 -t sqlite -d toolvote.db

A .env file in the working directory is loaded (via godotenv) before any
environment variable is read, so local development needs no exported vars.

# Settings

  - PORT (-p): listen port (default 3321)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default sqlite)
  - DATABASE_URL (-d): driver connection string; defaults to a local
    toolvote.db file in sqlite mode, required in postgres mode

DriverName maps the configured type to the registered database/sql driver
("sqlite" for modernc.org/sqlite, "postgres" for lib/pq).
*/
package cliparse
