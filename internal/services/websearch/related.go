package websearch

import (
	"sort"
	"strings"
)

// relatedModifiers are appended to suggestions in fixed preference order
var relatedModifiers = []string{"tutorial", "examples", "best practices", "how to", "guide"}

const (
	maxRelatedSearches = 5
	maxFrequencyTerms  = 3
	maxModifierTerms   = 2
	minTermLength      = 5
)

// relatedSearches derives follow-up query suggestions from the result set.
//
// Terms that recur across result titles and snippets (and are not already in
// the query) become "<query> <term>" suggestions; generic modifiers fill the
// remaining slots as "<modifier> <query>".
func relatedSearches(query string, results []Result) []string {
	queryLower := strings.ToLower(query)
	queryTokens := make(map[string]bool)
	for _, tok := range strings.Fields(queryLower) {
		queryTokens[tok] = true
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		text := strings.ToLower(r.Title + " " + r.Snippet)
		for _, tok := range strings.Fields(text) {
			if len(tok) < minTermLength || queryTokens[tok] {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	// Frequency descending, first-encountered order breaking ties
	position := make(map[string]int, len(order))
	for i, tok := range order {
		position[tok] = i
	}
	var terms []string
	for _, tok := range order {
		if counts[tok] > 1 {
			terms = append(terms, tok)
		}
	}
	sort.SliceStable(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return position[terms[i]] < position[terms[j]]
	})
	if len(terms) > maxFrequencyTerms {
		terms = terms[:maxFrequencyTerms]
	}

	suggestions := make([]string, 0, maxRelatedSearches)
	for _, term := range terms {
		suggestions = append(suggestions, query+" "+term)
	}

	added := 0
	for _, mod := range relatedModifiers {
		if added >= maxModifierTerms || len(suggestions) >= maxRelatedSearches {
			break
		}
		if strings.Contains(queryLower, mod) {
			continue
		}
		suggestions = append(suggestions, mod+" "+query)
		added++
	}

	return suggestions
}
