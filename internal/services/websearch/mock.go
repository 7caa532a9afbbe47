package websearch

import (
	"context"
	"fmt"
	"net/url"
)

// MockWarning is the disclosure attached to responses served from mock results
const MockWarning = "Live search providers are unavailable. Showing generated placeholder results."

// mockTemplate describes one synthetic result shape
type mockTemplate struct {
	domain  string
	title   string
	snippet string
	path    string
}

// mockTemplates is the fixed domain set synthetic results are drawn from
var mockTemplates = []mockTemplate{
	{
		domain:  "wikipedia.org",
		title:   "%s - Wikipedia",
		snippet: "Comprehensive encyclopedia article covering %s, including history, context, and references.",
		path:    "https://wikipedia.org/wiki/%s",
	},
	{
		domain:  "stackoverflow.com",
		title:   "How to work with %s - Stack Overflow",
		snippet: "Community answers to common questions about %s, with code examples and accepted solutions.",
		path:    "https://stackoverflow.com/questions/tagged/%s",
	},
	{
		domain:  "github.com",
		title:   "%s - GitHub repositories",
		snippet: "Open source projects and code repositories related to %s.",
		path:    "https://github.com/search?q=%s",
	},
	{
		domain:  "medium.com",
		title:   "Understanding %s - Medium",
		snippet: "In-depth articles and tutorials about %s written by practitioners.",
		path:    "https://medium.com/search?q=%s",
	},
	{
		domain:  "dev.to",
		title:   "%s articles - DEV Community",
		snippet: "Developer-written posts and discussions about %s.",
		path:    "https://dev.to/search?q=%s",
	},
}

// MockProvider deterministically generates results from a fixed template set.
// It never fails, which guarantees the orchestrator always has something to
// return.
type MockProvider struct{}

// NewMockProvider creates the synthetic result generator
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string { return "mock" }

// Search substitutes the query into the fixed templates, up to 5 results.
func (p *MockProvider) Search(ctx context.Context, query string, limit int, filters Filters) ([]Result, error) {
	count := len(mockTemplates)
	if limit > 0 && limit < count {
		count = limit
	}

	escaped := url.QueryEscape(query)
	results := make([]Result, 0, count)
	for _, tmpl := range mockTemplates[:count] {
		results = append(results, Result{
			Title:   fmt.Sprintf(tmpl.title, query),
			URL:     fmt.Sprintf(tmpl.path, escaped),
			Snippet: fmt.Sprintf(tmpl.snippet, query),
			Source:  tmpl.domain,
			Favicon: fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s", tmpl.domain),
			Type:    TypeWeb,
		})
	}

	return results, nil
}
