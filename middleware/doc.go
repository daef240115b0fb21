// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging, JSON helpers, CORS, and client
IP extraction for the HTTP handlers.

WithLogging logs request start and completion with method, path, and duration
via slog. CORS reflects the request Origin so the widget can be served from a
dev server on another port. GetClientIP honors X-Forwarded-For and X-Real-IP
before falling back to RemoteAddr; the subscriptions handler records its
result as the optional ip_address column.
*/
package middleware
