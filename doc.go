// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the toolvote API server.

Toolvote is a small voting service for a fixed catalog of AI tools: users
like or unlike tools, per-tool counters live in a SQL store behind an atomic
increment/decrement API, and a second table captures email subscriptions.

# Starting the Server

	go run main.go

The default configuration uses a local sqlite file. For PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3321 -t postgres -d "postgres://..."

A .env file in the working directory is loaded automatically.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (votes, subscriptions, catalog)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema creation and counter queries
  - cliparse: Configuration parsing
  - catalog: The static tool list

The client side of the system lives in its own packages and never runs in
this process:

  - widget: optimistic like-toggle state, reconciliation, render projection
  - localstore: durable per-identity JSON storage (localStorage analog)
  - apiclient: HTTP client implementing the widget's remote interfaces

See package documentation for each component.
*/
package main
