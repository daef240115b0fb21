// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"sync"

	"toolvote/catalog"
)

// UserLike is one persisted like record. The JSON shape matches the payload
// the browser widget historically wrote, so existing stored likes still load.
type UserLike struct {
	ToolID string `json:"toolId"`
	Liked  bool   `json:"liked"`
}

// State holds the session's vote snapshot: the current user's like flags and
// the cached server-side counters, both keyed by tool id. The catalog is
// fixed at construction and never mutated.
//
// State is safe for concurrent use; toggle completions land on goroutines.
type State struct {
	cat catalog.Catalog

	mu     sync.Mutex
	likes  map[string]bool
	remote map[string]int
}

// NewState returns an empty state over the given catalog: nothing liked,
// every cached counter zero.
func NewState(cat catalog.Catalog) *State {
	return &State{
		cat:    cat,
		likes:  make(map[string]bool),
		remote: make(map[string]int),
	}
}

// Liked reports whether the user currently likes the tool. Absence of a
// record means false.
func (s *State) Liked(toolID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[toolID]
}

// DisplayCount returns the tool's base count plus the cached remote counter.
// An id unknown to the catalog yields 0 rather than an error, so rendering
// stays total.
func (s *State) DisplayCount(toolID string) int {
	entry, ok := s.cat.Lookup(toolID)
	if !ok {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return entry.BaseCount + s.remote[toolID]
}

// SetLiked upserts the user's like record for the tool.
func (s *State) SetLiked(toolID string, liked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[toolID] = liked
}

// SetRemoteCount overwrites the cached counter for the tool.
func (s *State) SetRemoteCount(toolID string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remote[toolID] = count
}

// AdjustRemoteCount adds delta to the cached counter. Used for the
// optimistic bump at toggle time; the authoritative server value replaces
// it when the adjust call resolves.
func (s *State) AdjustRemoteCount(toolID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remote[toolID] += delta
}

// LikeRecords returns the full like-record set in stable (catalog) order,
// suitable for persistence. Tools outside the catalog never appear.
func (s *State) LikeRecords() []UserLike {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []UserLike
	for _, entry := range s.cat.Entries() {
		if liked, ok := s.likes[entry.ID]; ok {
			records = append(records, UserLike{ToolID: entry.ID, Liked: liked})
		}
	}
	return records
}

// RestoreLikes replaces the like set from persisted records.
func (s *State) RestoreLikes(records []UserLike) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.likes = make(map[string]bool, len(records))
	for _, rec := range records {
		s.likes[rec.ToolID] = rec.Liked
	}
}
