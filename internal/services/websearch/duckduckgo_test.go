package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuckDuckGoProviderSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("no_html"))

		w.Write([]byte(`{
			"Heading": "Go (programming language)",
			"AbstractText": "Go is a statically typed, compiled language.",
			"AbstractURL": "https://en.wikipedia.org/wiki/Go_(programming_language)",
			"RelatedTopics": [
				{
					"Text": "Goroutine - A lightweight thread managed by the Go runtime.",
					"FirstURL": "https://duckduckgo.com/Goroutine",
					"Icon": {"URL": "https://duckduckgo.com/i/goroutine.png"}
				},
				{
					"Text": "",
					"FirstURL": "https://duckduckgo.com/empty"
				}
			]
		}`))
	}))
	defer server.Close()

	provider := NewDuckDuckGoProvider(DuckDuckGoConfig{BaseURL: server.URL})

	results, err := provider.Search(context.Background(), "golang", 10, Filters{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Go (programming language)", results[0].Title)
	assert.Equal(t, "en.wikipedia.org", results[0].Source)

	assert.Equal(t, "Goroutine", results[1].Title)
	assert.Equal(t, "https://duckduckgo.com/i/goroutine.png", results[1].Favicon)
}

func TestDuckDuckGoProviderSearch_NoInstantAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Heading": "", "AbstractText": "", "AbstractURL": "", "RelatedTopics": []}`))
	}))
	defer server.Close()

	provider := NewDuckDuckGoProvider(DuckDuckGoConfig{BaseURL: server.URL})

	results, err := provider.Search(context.Background(), "obscure query", 10, Filters{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDuckDuckGoProviderSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewDuckDuckGoProvider(DuckDuckGoConfig{BaseURL: server.URL})

	_, err := provider.Search(context.Background(), "golang", 10, Filters{})
	assert.Error(t, err)
}

func TestTopicTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "segment before separator",
			text:     "Goroutine - A lightweight thread",
			expected: "Goroutine",
		},
		{
			name:     "no separator returns text",
			text:     "Short topic text",
			expected: "Short topic text",
		},
		{
			name:     "long text truncated to 100 chars",
			text:     strings.Repeat("x", 150),
			expected: strings.Repeat("x", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, topicTitle(tt.text))
		})
	}
}
