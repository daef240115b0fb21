// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"toolvote/catalog"
	"toolvote/models"
	"toolvote/widget"
)

// Client talks to the toolvote API. It implements widget.CounterService and
// widget.SubscriptionService.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: http.DefaultClient}
}

// NewWithHTTPClient is New with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// Counts fetches the full tool_id -> vote_count table.
func (c *Client) Counts(ctx context.Context) (map[string]int, error) {
	var resp models.VoteCountsResponse
	if err := c.get(ctx, "/votes", &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

// Increment atomically adds one vote for the tool and returns the resulting
// count.
func (c *Client) Increment(ctx context.Context, toolID string) (int, error) {
	return c.adjust(ctx, toolID, "increment")
}

// Decrement atomically removes one vote for the tool and returns the
// resulting count.
func (c *Client) Decrement(ctx context.Context, toolID string) (int, error) {
	return c.adjust(ctx, toolID, "decrement")
}

func (c *Client) adjust(ctx context.Context, toolID, op string) (int, error) {
	var resp models.VoteCountResponse
	if err := c.post(ctx, "/votes/"+toolID+"/"+op, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Subscribe submits an email subscription. A 409 from the server maps to
// widget.ErrAlreadySubscribed.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	req := models.SubscribeRequest{Email: email}
	err := c.post(ctx, "/subscriptions", &req, &models.SubscribeResponse{})
	if statusOf(err) == http.StatusConflict {
		return fmt.Errorf("subscribe %s: %w", email, widget.ErrAlreadySubscribed)
	}
	return err
}

// Catalog fetches the server's tool catalog.
func (c *Client) Catalog(ctx context.Context) ([]catalog.Entry, error) {
	var entries []catalog.Entry
	if err := c.get(ctx, "/tools", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// StatusError is a non-2xx API response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func statusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
