// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package widget implements the client side of the voting system: optimistic
like toggling, durable like records, and reconciliation of cached counters
against the shared remote table.

# State Model

Three pieces of data meet here, keyed by tool id:

  - the immutable catalog entry (name, icon, base count)
  - the current user's like flag, durable on this device only
  - the shared remote counter, cached once per session

A tool's displayed count is always base count + cached remote counter. The
like flag and the remote counter live in different ownership domains and are
reconciled only at toggle time and at load time; no background process forces
them into agreement.

# Toggle Semantics

Toggle is the single mutation entry point. The flip and a provisional ±1 on
the cached counter are applied and persisted before the remote call is even
issued, so the caller sees the new flag and count synchronously. The remote increment/decrement is atomic server-side
and returns the authoritative count, which overwrites the cache (a plain
overwrite, not a merge), so votes from other users arriving in between are
picked up for free.

Failures do not roll the flip back; the widget accepts an inconsistency
window until the next Load. In-flight calls are not cancelled either, but
each adjust carries a per-tool sequence number and stale responses are
discarded, so the displayed count always reflects the newest issued adjust.

# Usage

	w := widget.New(widget.Config{
		Catalog:       catalog.Default(),
		Store:         localstore.New(dir),
		Counters:      client,
		Subscriptions: client,
	})
	w.Load(ctx)
	w.Toggle(ctx, "chatgpt")
	for _, card := range w.Render() {
		// draw card
	}
*/
package widget
