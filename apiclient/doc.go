// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the HTTP client for the toolvote API. It satisfies the
widget's CounterService and SubscriptionService interfaces, so a widget wired
with a Client talks to a live server:

	client := apiclient.New("http://localhost:3321")
	w := widget.New(widget.Config{
		Catalog:       catalog.Default(),
		Store:         localstore.New(dir),
		Counters:      client,
		Subscriptions: client,
	})

Non-2xx responses surface as *StatusError; a 409 on Subscribe maps to
widget.ErrAlreadySubscribed.
*/
package apiclient
