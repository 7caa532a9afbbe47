package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DuckDuckGoConfig holds configuration for the Instant Answer client
type DuckDuckGoConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DuckDuckGoProvider queries the DuckDuckGo Instant Answer API. It needs no
// API key, which makes it the last network-backed fallback in the chain.
type DuckDuckGoProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewDuckDuckGoProvider creates a new Instant Answer provider
func NewDuckDuckGoProvider(cfg DuckDuckGoConfig) *DuckDuckGoProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.duckduckgo.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &DuckDuckGoProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
	}
}

func (p *DuckDuckGoProvider) Name() string { return "duckduckgo" }

type duckduckgoTopic struct {
	Text     string `json:"Text"`
	FirstURL string `json:"FirstURL"`
	Icon     struct {
		URL string `json:"URL"`
	} `json:"Icon"`
}

type duckduckgoResponse struct {
	Heading       string            `json:"Heading"`
	AbstractText  string            `json:"AbstractText"`
	AbstractURL   string            `json:"AbstractURL"`
	RelatedTopics []duckduckgoTopic `json:"RelatedTopics"`
}

// Search maps the instant-answer abstract plus related topics into results.
func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, limit int, filters Filters) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	endpoint := fmt.Sprintf("%s/?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	var iaResp duckduckgoResponse
	if err := json.NewDecoder(resp.Body).Decode(&iaResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	var results []Result

	if iaResp.AbstractText != "" && iaResp.AbstractURL != "" {
		title := iaResp.Heading
		if title == "" {
			title = topicTitle(iaResp.AbstractText)
		}
		results = append(results, Result{
			Title:   title,
			URL:     iaResp.AbstractURL,
			Snippet: iaResp.AbstractText,
			Source:  sourceFromURL(iaResp.AbstractURL),
			Type:    TypeWeb,
		})
	}

	for _, topic := range iaResp.RelatedTopics {
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		results = append(results, Result{
			Title:   topicTitle(topic.Text),
			URL:     topic.FirstURL,
			Snippet: topic.Text,
			Source:  sourceFromURL(topic.FirstURL),
			Favicon: topic.Icon.URL,
			Type:    TypeWeb,
		})
	}

	return sanitize(results, limit), nil
}

// topicTitle derives a title from topic text: the segment before " - " when
// present, otherwise the text truncated to 100 chars.
func topicTitle(text string) string {
	if before, _, found := strings.Cut(text, " - "); found && before != "" {
		return before
	}
	if len(text) > 100 {
		return text[:100]
	}
	return text
}
