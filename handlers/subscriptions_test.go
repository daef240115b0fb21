package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"toolvote/models"
	"toolvote/testutil"
)

func TestSubscribe(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewSubscriptionsHandler(conn)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		check          func(t *testing.T)
	}{
		{
			name:           "valid email",
			body:           models.SubscribeRequest{Email: "Alice@Example.com"},
			expectedStatus: http.StatusCreated,
			check: func(t *testing.T) {
				// Stored lowercased with user agent
				var email, userAgent string
				err := conn.QueryRow(`SELECT email, user_agent FROM email_submission`).Scan(&email, &userAgent)
				if err != nil {
					t.Fatalf("Failed to query submission: %v", err)
				}
				if email != "alice@example.com" {
					t.Errorf("stored email = %q, want alice@example.com", email)
				}
				if userAgent != "widget-test/1.0" {
					t.Errorf("stored user agent = %q", userAgent)
				}
			},
		},
		{
			name:           "duplicate email",
			body:           models.SubscribeRequest{Email: "ALICE@example.com"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "empty email",
			body:           models.SubscribeRequest{Email: ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           models.SubscribeRequest{Email: "not-an-address"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           nil, // empty body
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/subscriptions", tt.body, map[string]string{
				"User-Agent": "widget-test/1.0",
			})
			w := httptest.NewRecorder()

			handler.Subscribe(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestSubscribe_DuplicateMessageIsDistinct(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewSubscriptionsHandler(conn)

	submit := func() *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/subscriptions", models.SubscribeRequest{Email: "bob@example.com"}, nil)
		w := httptest.NewRecorder()
		handler.Subscribe(w, req)
		return w
	}

	submit()
	w := submit()

	testutil.AssertStatus(t, w, http.StatusConflict)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "You are already subscribed!" {
		t.Errorf("Message = %q, want the duplicate-specific message", resp.Message)
	}

	// Still exactly one row
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM email_submission`).Scan(&count); err != nil {
		t.Fatalf("Failed to count submissions: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestSubscribe_RecordsClientIP(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewSubscriptionsHandler(conn)

	req := testutil.MakeRequest("POST", "/subscriptions", models.SubscribeRequest{Email: "carol@example.com"}, map[string]string{
		"X-Forwarded-For": "203.0.113.7",
	})
	w := httptest.NewRecorder()

	handler.Subscribe(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var ip string
	if err := conn.QueryRow(`SELECT ip_address FROM email_submission`).Scan(&ip); err != nil {
		t.Fatalf("Failed to query ip: %v", err)
	}
	if ip != "203.0.113.7" {
		t.Errorf("ip_address = %q, want 203.0.113.7", ip)
	}
}

func TestSubscriberCount(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewSubscriptionsHandler(conn)

	countNow := func(t *testing.T) int {
		req := testutil.MakeRequest("GET", "/subscriptions/count", nil, nil)
		w := httptest.NewRecorder()
		handler.Count(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.SubscriberCountResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.Count
	}

	if got := countNow(t); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}

	req := testutil.MakeRequest("POST", "/subscriptions", models.SubscribeRequest{Email: "dave@example.com"}, nil)
	handler.Subscribe(httptest.NewRecorder(), req)

	if got := countNow(t); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}
