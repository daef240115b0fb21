// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"toolvote/catalog"
	"toolvote/db"
	"toolvote/middleware"
	"toolvote/models"
)

type VotesHandler struct {
	db  *sql.DB
	cat catalog.Catalog
}

func NewVotesHandler(conn *sql.DB, cat catalog.Catalog) *VotesHandler {
	return &VotesHandler{db: conn, cat: cat}
}

// ListCounts handles GET /votes
// Returns the full counter table. Tools nobody has voted on have no row
// and are absent; clients treat missing as zero.
func (h *VotesHandler) ListCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := db.LoadVoteCounts(h.db)
	if err != nil {
		slog.Error("failed to load vote counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountsResponse{Counts: counts})
}

// Increment handles POST /votes/{id}/increment
func (h *VotesHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, 1)
}

// Decrement handles POST /votes/{id}/decrement
func (h *VotesHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, -1)
}

// adjust applies a single +1/-1 to one counter and responds with the
// authoritative post-adjust count.
func (h *VotesHandler) adjust(w http.ResponseWriter, r *http.Request, delta int) {
	toolID := r.PathValue("id")
	if toolID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tool id is required")
		return
	}

	if !h.cat.Contains(toolID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown tool: "+toolID)
		return
	}

	count, err := db.AdjustVoteCount(h.db, toolID, delta)
	if err != nil {
		slog.Error("failed to adjust vote count", "error", err, "tool_id", toolID, "delta", delta)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote adjusted", "tool_id", toolID, "delta", delta, "count", count)

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountResponse{
		ToolID: toolID,
		Count:  count,
	})
}
