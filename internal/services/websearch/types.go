package websearch

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrEmptyQuery indicates the query was empty after trimming
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrNotConfigured indicates a provider is missing required credentials
	ErrNotConfigured = errors.New("provider not configured")

	// ErrNoResults indicates a provider returned zero usable results
	ErrNoResults = errors.New("no results found")
)

// Result type constants
const (
	TypeWeb      = "web"
	TypeNews     = "news"
	TypeAcademic = "academic"
	TypeVideo    = "video"
	TypeImage    = "image"
)

// Filters narrows a search by content type and recency.
//
// Domains is accepted for forward compatibility but is not applied by any
// provider today.
type Filters struct {
	Type      string   `json:"type,omitempty"`      // all, news, academic, videos, images
	DateRange string   `json:"dateRange,omitempty"` // day, week, month, year, all
	Domains   []string `json:"domains,omitempty"`
}

// Result is the normalized search result shape every provider maps into.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date,omitempty"`
	Favicon string `json:"favicon,omitempty"`
	Type    string `json:"type"`
}

// Provider is the interface every search backend implements.
type Provider interface {
	// Name returns the provider identifier (e.g. "searxng", "google").
	Name() string

	// Search executes a query and returns normalized results. Providers
	// return an error on transport, auth, or payload failure; they never
	// return partial garbage.
	Search(ctx context.Context, query string, limit int, filters Filters) ([]Result, error)
}

// Response is the outcome of one orchestrated search run.
type Response struct {
	Results         []Result `json:"results"`
	Provider        string   `json:"provider"`
	RelatedSearches []string `json:"relatedSearches"`
	Message         string   `json:"message,omitempty"`
}

// valid reports whether a mapped result carries the required fields.
func (r Result) valid() bool {
	return r.Title != "" && r.URL != "" && r.Snippet != ""
}

// normalizeSource strips a leading "www." and lowercases a hostname.
func normalizeSource(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}

// sourceFromURL extracts the bare domain from a result URL.
func sourceFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return normalizeSource(u.Hostname())
}

// sanitize drops invalid results and bounds the list to limit.
func sanitize(results []Result, limit int) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if !r.valid() {
			continue
		}
		if r.Source == "" {
			r.Source = sourceFromURL(r.URL)
		} else {
			r.Source = normalizeSource(r.Source)
		}
		out = append(out, r)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
