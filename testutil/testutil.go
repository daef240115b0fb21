// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"toolvote/catalog"
	"toolvote/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database, named after the test so shared
// cache never bleeds across tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// SQLite allows one writer; a single pooled conn avoids lock errors
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// TestCatalog returns a small fixed catalog for tests that don't care about
// the production tool list.
func TestCatalog() catalog.Catalog {
	return catalog.New([]catalog.Entry{
		{ID: "chatgpt", Name: "ChatGPT", Icon: "🤖", BaseCount: 13},
		{ID: "claude", Name: "Claude", Icon: "🧠", BaseCount: 6},
		{ID: "cursor", Name: "Cursor", Icon: "⚡", BaseCount: 8},
	})
}

// SeedVoteCount sets a tool's counter directly.
func SeedVoteCount(t *testing.T, conn *sql.DB, toolID string, count int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote_counter (tool_id, vote_count)
		VALUES ($1, $2)
		ON CONFLICT (tool_id) DO UPDATE SET vote_count = $2
	`, toolID, count)
	if err != nil {
		t.Fatalf("Failed to seed vote count: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
