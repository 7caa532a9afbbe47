package types

import "github.com/killallgit/websearch-api/internal/services/websearch"

// SearchResponse is the success shape for the search endpoint
type SearchResponse struct {
	Success         bool               `json:"success"`
	Results         []websearch.Result `json:"results"`
	Query           string             `json:"query"`
	Count           int                `json:"count"`
	RelatedSearches []string           `json:"relatedSearches"`
	Provider        string             `json:"provider"`
	Message         string             `json:"message,omitempty"`
}

// SearchFailureResponse is returned on quota exhaustion and unexpected
// failures
type SearchFailureResponse struct {
	Success   bool               `json:"success"`
	Results   []websearch.Result `json:"results"`
	Message   string             `json:"message"`
	Remaining *int               `json:"remaining,omitempty"`
	Total     *int               `json:"total,omitempty"`
	ResetDate string             `json:"resetDate,omitempty"`
}

// ValidationErrorResponse is returned for rejected input
type ValidationErrorResponse struct {
	Error string `json:"error"`
}

// QuotaStatusResponse reports a user's current allowance
type QuotaStatusResponse struct {
	UserID    string `json:"userId"`
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
	ResetAt   string `json:"resetAt,omitempty"`
	Plan      string `json:"plan"`
}
