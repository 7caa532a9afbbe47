package types

import "github.com/killallgit/websearch-api/internal/services/websearch"

// SearchRequest represents a web search request.
//
// Query is a pointer so a missing field and an explicitly empty one produce
// different validation messages.
type SearchRequest struct {
	Query      *string           `json:"query" example:"latest AI news"`
	Limit      int               `json:"limit,omitempty" example:"10"`
	UserID     string            `json:"userId,omitempty" example:"user-123"`
	Filters    websearch.Filters `json:"filters,omitempty"`
	DeepSearch bool              `json:"deepSearch,omitempty" example:"false"`
}

// SetPlanRequest moves a user to a different subscription plan
type SetPlanRequest struct {
	Plan string `json:"plan" binding:"required" example:"pro"`
}
