// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"sync"

	"toolvote/catalog"
)

// DefaultIdentity is the shared anonymous identity used when no caller
// supplies one. Likes are per browser profile, not per human.
const DefaultIdentity = "user-1"

// Config carries the widget's collaborators. The catalog and identity are
// explicit parameters so widgets for distinct users can coexist in one
// process.
type Config struct {
	Catalog       catalog.Catalog
	Identity      string
	Store         LocalStore
	Counters      CounterService
	Subscriptions SubscriptionService
}

// Widget owns the optimistic like-toggle flow: it is the only mutator of its
// State, persists like records after every change, and reconciles cached
// counters against the remote store's authoritative responses.
type Widget struct {
	cat      catalog.Catalog
	state    *State
	store    LocalStore
	counters CounterService
	subs     SubscriptionService
	identity string

	mu  sync.Mutex
	seq map[string]uint64 // latest issued adjust per tool id
	wg  sync.WaitGroup
}

// New builds a widget with empty state. Call Load to hydrate persisted likes
// and the remote counter snapshot.
func New(cfg Config) *Widget {
	identity := cfg.Identity
	if identity == "" {
		identity = DefaultIdentity
	}
	return &Widget{
		cat:      cfg.Catalog,
		state:    NewState(cfg.Catalog),
		store:    cfg.Store,
		counters: cfg.Counters,
		subs:     cfg.Subscriptions,
		identity: identity,
		seq:      make(map[string]uint64),
	}
}

// State exposes the underlying vote state for direct reads.
func (w *Widget) State() *State {
	return w.state
}

// Load hydrates the session: like records from local storage (missing or
// corrupt payloads yield an empty set) and the counter snapshot from the
// remote store (on error every counter stays zero, so displayed counts fall
// back to base counts).
func (w *Widget) Load(ctx context.Context) {
	var records []UserLike
	if w.store.Get(likesKey(w.identity), &records) {
		w.state.RestoreLikes(records)
	}

	counts, err := w.counters.Counts(ctx)
	if err != nil {
		slog.Warn("failed to load remote vote counts", "error", err)
		return
	}
	for toolID, count := range counts {
		w.state.SetRemoteCount(toolID, count)
	}
}

// Toggle flips the user's like for one tool. The local flag and displayed
// count change before this function returns; exactly one remote adjust is
// then issued asynchronously (increment for false→true, decrement for
// true→false). On success the cached counter takes the server's returned
// value, so concurrent votes from other users are absorbed. On failure the
// optimistic flip stays in place until the next full Load.
//
// Rapid re-toggles do not queue or cancel earlier calls. Each adjust carries
// a per-tool sequence number and a response is dropped unless it is the
// latest issued for that tool, so a stale reply cannot clobber a newer count.
func (w *Widget) Toggle(ctx context.Context, toolID string) error {
	if !w.cat.Contains(toolID) {
		return ErrUnknownTool
	}

	liked := !w.state.Liked(toolID)
	w.state.SetLiked(toolID, liked)
	if liked {
		w.state.AdjustRemoteCount(toolID, 1)
	} else {
		w.state.AdjustRemoteCount(toolID, -1)
	}
	w.store.Set(likesKey(w.identity), w.state.LikeRecords())

	w.mu.Lock()
	w.seq[toolID]++
	issued := w.seq[toolID]
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		var count int
		var err error
		if liked {
			count, err = w.counters.Increment(ctx, toolID)
		} else {
			count, err = w.counters.Decrement(ctx, toolID)
		}
		if err != nil {
			// No rollback: the local state keeps the optimistic value
			slog.Warn("vote adjust failed", "tool_id", toolID, "liked", liked, "error", err)
			return
		}

		// Check-and-apply under one lock: a toggle issued after the
		// check must not interleave before the write lands
		w.mu.Lock()
		if w.seq[toolID] == issued {
			w.state.SetRemoteCount(toolID, count)
		}
		w.mu.Unlock()
	}()

	return nil
}

// Wait blocks until every in-flight counter adjust has completed.
func (w *Widget) Wait() {
	w.wg.Wait()
}

// SubmitEmail validates, lowercases, and submits an email subscription.
// Validation failures return ErrInvalidEmail before any remote call. A
// locally recorded prior submission short-circuits to ErrAlreadySubscribed;
// otherwise the remote store's uniqueness check decides. Successful
// submissions are remembered locally.
func (w *Widget) SubmitEmail(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	var submitted []string
	w.store.Get(emailsKey(w.identity), &submitted)
	for _, prior := range submitted {
		if prior == email {
			return ErrAlreadySubscribed
		}
	}

	if err := w.subs.Subscribe(ctx, email); err != nil {
		return err
	}

	w.store.Set(emailsKey(w.identity), append(submitted, email))
	return nil
}

func likesKey(identity string) string {
	return "userLikes-" + identity
}

func emailsKey(identity string) string {
	return "submittedEmails-" + identity
}
