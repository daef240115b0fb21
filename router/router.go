// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"toolvote/catalog"
	"toolvote/handlers"
	"toolvote/middleware"
)

func NewRouter(conn *sql.DB, cat catalog.Catalog) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	votesHandler := handlers.NewVotesHandler(conn, cat)
	subsHandler := handlers.NewSubscriptionsHandler(conn)
	catalogHandler := handlers.NewCatalogHandler(cat)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog (public, static)
	mux.HandleFunc("GET /tools", middleware.WithLogging(catalogHandler.List))

	// Vote counters (public)
	mux.HandleFunc("GET /votes", middleware.WithLogging(votesHandler.ListCounts))
	mux.HandleFunc("POST /votes/{id}/increment", middleware.WithLogging(votesHandler.Increment))
	mux.HandleFunc("POST /votes/{id}/decrement", middleware.WithLogging(votesHandler.Decrement))

	// Email capture (public)
	mux.HandleFunc("POST /subscriptions", middleware.WithLogging(subsHandler.Subscribe))
	mux.HandleFunc("GET /subscriptions/count", middleware.WithLogging(subsHandler.Count))

	// Root endpoint. {$} anchors the pattern to exactly "/" so unknown
	// paths and wrong-method requests fall through to the mux's own
	// 404/405 handling.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("toolvote API v1"))
	})

	// The widget runs in a browser served from elsewhere
	return middleware.CORS(mux)
}
