package websearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForContext(t *testing.T) {
	results := []Result{
		{Title: "First", URL: "https://a.com", Snippet: "alpha", Source: "a.com"},
		{Title: "Second", URL: "https://b.com", Snippet: "bravo", Source: "b.com"},
	}

	got := FormatForContext(results)

	assert.True(t, strings.HasPrefix(got, "1. First\n"))
	assert.Contains(t, got, "Source: a.com\n")
	assert.Contains(t, got, "Snippet: alpha\n")
	assert.Contains(t, got, "URL: https://a.com\n")
	assert.Contains(t, got, "\n\n2. Second\n")
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestFormatForContext_Empty(t *testing.T) {
	assert.Equal(t, "No search results available.", FormatForContext(nil))
	assert.Equal(t, "No search results available.", FormatForContext([]Result{}))
}
