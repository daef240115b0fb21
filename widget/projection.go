// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import "toolvote/catalog"

// CardView is everything the presentation layer needs to draw one tool card.
type CardView struct {
	ID           string
	Name         string
	Icon         string
	DisplayCount int
	Liked        bool
}

// Project maps the catalog and current state to view records, one per
// catalog entry, in the catalog's fixed order. It reads state but has no
// side effects and cannot fail.
func Project(cat catalog.Catalog, s *State) []CardView {
	entries := cat.Entries()
	views := make([]CardView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, CardView{
			ID:           entry.ID,
			Name:         entry.Name,
			Icon:         entry.Icon,
			DisplayCount: s.DisplayCount(entry.ID),
			Liked:        s.Liked(entry.ID),
		})
	}
	return views
}

// Render projects the widget's own catalog and state.
func (w *Widget) Render() []CardView {
	return Project(w.cat, w.state)
}
