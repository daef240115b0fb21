// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// AdjustVoteCount atomically adds delta to a tool's counter and returns the
// resulting count. A missing row is created as if its count were zero. The
// whole read-modify-write happens inside the store; callers never compute
// the new count themselves.
func AdjustVoteCount(db *sql.DB, toolID string, delta int) (int, error) {
	var count int
	err := db.QueryRow(`
		INSERT INTO vote_counter (tool_id, vote_count)
		VALUES ($1, $2)
		ON CONFLICT (tool_id)
		DO UPDATE SET vote_count = vote_counter.vote_count + $2
		RETURNING vote_count
	`, toolID, delta).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust vote count for %s: %w", toolID, err)
	}

	return count, nil
}

// LoadVoteCounts returns the full tool_id -> vote_count table. Tools that
// have never been voted on have no row and are absent from the map.
func LoadVoteCounts(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT tool_id, vote_count FROM vote_counter`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vote counters: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var toolID string
		var count int
		if err := rows.Scan(&toolID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote counter: %w", err)
		}
		counts[toolID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote counters: %w", err)
	}

	return counts, nil
}

// TotalVotes sums every counter. Used for the startup log line.
func TotalVotes(db *sql.DB) (int64, error) {
	var total sql.NullInt64
	err := db.QueryRow(`SELECT SUM(vote_count) FROM vote_counter`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum vote counters: %w", err)
	}
	return total.Int64, nil
}
