// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// Store is a durable keyed JSON store, one file per key under a single
// directory. It mirrors browser localStorage semantics: reads of missing or
// unparseable entries behave as absent, and writes are best-effort.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Get reads the value stored under key into v. It returns false if the key
// is absent or the stored payload fails to parse; corrupt data is discarded,
// never surfaced as an error.
func (s *Store) Get(key string, v interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("discarding corrupt local storage entry", "key", key, "error", err)
		return false
	}
	return true
}

// Set replaces the value stored under key. Failure to persist is logged and
// otherwise ignored: the worst case is that the value does not survive a
// reload.
func (s *Store) Set(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to encode local storage entry", "key", key, "error", err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		slog.Warn("failed to create local storage dir", "dir", s.dir, "error", err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		slog.Warn("failed to write local storage entry", "key", key, "error", err)
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
