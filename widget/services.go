// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"context"
	"errors"
)

var (
	ErrUnknownTool       = errors.New("tool not in catalog")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// CounterService is the remote counter table. Increment and Decrement are
// atomic on the server and return the authoritative post-adjust count; the
// widget never computes a counter value itself.
type CounterService interface {
	Counts(ctx context.Context) (map[string]int, error)
	Increment(ctx context.Context, toolID string) (int, error)
	Decrement(ctx context.Context, toolID string) (int, error)
}

// SubscriptionService is the remote email-capture table. Subscribe returns
// an error wrapping ErrAlreadySubscribed when the address is already on file.
type SubscriptionService interface {
	Subscribe(ctx context.Context, email string) error
}

// LocalStore is durable per-device keyed storage. Get reports false for
// absent or corrupt entries; Set is best-effort and never fails loudly.
type LocalStore interface {
	Get(key string, v interface{}) bool
	Set(key string, v interface{})
}
