// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

// Entry is one votable tool. Entries are static: the catalog is fixed at
// build time and never reordered or mutated at runtime.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	BaseCount int    `json:"base_count"`
}

// Catalog is an ordered, immutable list of entries. The zero value is an
// empty catalog.
type Catalog struct {
	entries []Entry
	byID    map[string]Entry
}

// New builds a catalog from the given entries, preserving their order.
// Later duplicates of an id are dropped.
func New(entries []Entry) Catalog {
	c := Catalog{byID: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if _, dup := c.byID[e.ID]; dup {
			continue
		}
		c.byID[e.ID] = e
		c.entries = append(c.entries, e)
	}
	return c
}

// Entries returns the entries in catalog order. The returned slice is a copy.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry for id, or false if the id is not in the catalog.
func (c Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Contains reports whether id names a catalog entry.
func (c Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Default returns the catalog of AI tools the site votes on.
func Default() Catalog {
	return New([]Entry{
		{ID: "chatgpt", Name: "ChatGPT", Icon: "🤖", BaseCount: 13},
		{ID: "copilot", Name: "Copilot", Icon: "👨‍✈️", BaseCount: 3},
		{ID: "canva", Name: "Canva", Icon: "🎨", BaseCount: 2},
		{ID: "claude", Name: "Claude", Icon: "🧠", BaseCount: 6},
		{ID: "lovable", Name: "Lovable", Icon: "💝", BaseCount: 4},
		{ID: "replit", Name: "Replit", Icon: "⚡", BaseCount: 4},
		{ID: "figma", Name: "Figma", Icon: "🎭", BaseCount: 3},
		{ID: "cursor", Name: "Cursor", Icon: "⚡", BaseCount: 8},
		{ID: "windsurf", Name: "Windsurf", Icon: "🏄", BaseCount: 2},
		{ID: "gemini", Name: "Gemini", Icon: "💎", BaseCount: 4},
	})
}
