// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the toolvote API.

# Handler Types

Each handler is a struct with its dependencies injected via a constructor:

  - VotesHandler: counter reads and atomic increment/decrement
  - SubscriptionsHandler: email capture and subscriber count
  - CatalogHandler: serves the static tool catalog

The catalog is passed in explicitly rather than read from a package-level
variable, so tests can run against any fixture catalog:

	votesHandler := handlers.NewVotesHandler(conn, catalog.Default())

# Voting Flow

	GET  /votes                 → ListCounts (tool_id -> vote_count map)
	POST /votes/{id}/increment  → Increment (returns authoritative count)
	POST /votes/{id}/decrement  → Decrement (returns authoritative count)

Each mutation is one atomic upsert on the counter row; the response carries
the store's resulting count, never a value computed from the request. Unknown
tool ids are rejected with 404 before touching the store.

# Subscriptions

	POST /subscriptions        → Subscribe
	GET  /subscriptions/count  → Count

Subscribe validates and lowercases the email before any database work, then
inserts and lets the UNIQUE constraint decide duplicates: a violation maps to
409 with a duplicate-specific message, anything else to a generic 500. The
row records the submitting user agent and, when available, client IP.
*/
package handlers
