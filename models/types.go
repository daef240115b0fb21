package models

// Request types

type SubscribeRequest struct {
	Email string `json:"email"`
}

// Response types

type VoteCountResponse struct {
	ToolID string `json:"tool_id"`
	Count  int    `json:"count"`
}

// tool_id -> vote_count
type VoteCountsResponse struct {
	Counts map[string]int `json:"counts"`
}

type SubscribeResponse struct {
	Message string `json:"message"`
}

type SubscriberCountResponse struct {
	Count int `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
