package websearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderSearch(t *testing.T) {
	provider := NewMockProvider()

	results, err := provider.Search(context.Background(), "golang testing", 10, Filters{})
	require.NoError(t, err)
	require.Len(t, results, 5)

	for _, r := range results {
		assert.Contains(t, r.Title, "golang testing")
		assert.NotEmpty(t, r.URL)
		assert.NotEmpty(t, r.Snippet)
		assert.NotEmpty(t, r.Source)
		assert.Equal(t, TypeWeb, r.Type)
	}

	assert.Equal(t, "wikipedia.org", results[0].Source)
	assert.Equal(t, "stackoverflow.com", results[1].Source)
}

func TestMockProviderSearch_RespectsLimit(t *testing.T) {
	provider := NewMockProvider()

	results, err := provider.Search(context.Background(), "golang", 2, Filters{})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestMockProviderSearch_Deterministic(t *testing.T) {
	provider := NewMockProvider()

	first, err := provider.Search(context.Background(), "kubernetes", 5, Filters{})
	require.NoError(t, err)
	second, err := provider.Search(context.Background(), "kubernetes", 5, Filters{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMockProviderSearch_EscapesQueryInURL(t *testing.T) {
	provider := NewMockProvider()

	results, err := provider.Search(context.Background(), "a b&c", 5, Filters{})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotContains(t, r.URL, " ")
		assert.NotContains(t, r.URL, "&c")
	}
}
