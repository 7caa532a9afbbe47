package websearch

import (
	"fmt"
	"strings"
)

// FormatForContext renders results as a numbered plain-text block suitable
// for injection into an LLM prompt.
func FormatForContext(results []Result) string {
	if len(results) == 0 {
		return "No search results available."
	}

	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "Source: %s\n", r.Source)
		fmt.Fprintf(&b, "Snippet: %s\n", r.Snippet)
		fmt.Fprintf(&b, "URL: %s\n", r.URL)
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
