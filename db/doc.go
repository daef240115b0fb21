// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and the vote-counter queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - vote_counter: per-tool shared counters, keyed by tool_id
  - email_submission: captured subscriptions; email is UNIQUE and the
    constraint is the single source of truth for "already subscribed"

# Counter Semantics

AdjustVoteCount is the only write path for counters. It is a single upsert
with RETURNING, so the increment is atomic per row regardless of how many
clients race on it; no counter value is ever computed client-side. A decrement
against a missing row yields -1: counters are non-negative by convention only,
not by constraint.

# Dialect

All SQL here runs unchanged on both supported drivers (modernc.org/sqlite and
lib/pq): $n placeholders, CURRENT_TIMESTAMP, upsert with RETURNING.
*/
package db
