// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is restricted to the dialect both drivers share.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Per-tool shared vote counters
CREATE TABLE IF NOT EXISTS vote_counter (
    tool_id TEXT PRIMARY KEY,
    vote_count INTEGER NOT NULL DEFAULT 0
);

-- Captured email subscriptions
CREATE TABLE IF NOT EXISTS email_submission (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    user_agent TEXT,
    ip_address TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_email_submission_created_at ON email_submission(created_at);
`
