// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"toolvote/middleware"
	"toolvote/models"
)

type SubscriptionsHandler struct {
	db *sql.DB
}

func NewSubscriptionsHandler(conn *sql.DB) *SubscriptionsHandler {
	return &SubscriptionsHandler{db: conn}
}

// Subscribe handles POST /subscriptions
// The email_submission.email UNIQUE constraint is the single source of truth
// for duplicates; there is no pre-insert existence check to race against.
func (h *SubscriptionsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid email address")
		return
	}

	userAgent := r.UserAgent()
	var ipAddress *string
	if ip := middleware.GetClientIP(r); ip != "" {
		ipAddress = &ip
	}

	_, err := h.db.Exec(`
		INSERT INTO email_submission (id, email, user_agent, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), email, userAgent, ipAddress, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "You are already subscribed!")
			return
		}
		slog.Error("failed to insert email submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit email. Please check your connection and try again.")
		return
	}

	slog.Info("email subscribed", "email", email)

	middleware.JSONResponse(w, http.StatusCreated, models.SubscribeResponse{
		Message: "Your email has been submitted successfully. Thank you for subscribing!",
	})
}

// Count handles GET /subscriptions/count
func (h *SubscriptionsHandler) Count(w http.ResponseWriter, r *http.Request) {
	var count int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM email_submission`).Scan(&count)
	if err != nil {
		slog.Error("failed to count email submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubscriberCountResponse{Count: count})
}

// isUniqueViolation matches the duplicate-key error text of both supported
// drivers (modernc sqlite and lib/pq).
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed: email_submission.email") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
