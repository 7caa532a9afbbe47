package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// braveFreshness translates internal date ranges into Brave's freshness values
var braveFreshness = map[string]string{
	"day":   "pd",
	"week":  "pw",
	"month": "pm",
	"year":  "py",
}

// BraveConfig holds configuration for the Brave Search client
type BraveConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// BraveProvider queries the Brave Search API.
type BraveProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewBraveProvider creates a new Brave Search provider
func NewBraveProvider(cfg BraveConfig) *BraveProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.search.brave.com/res/v1/web/search"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &BraveProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

func (p *BraveProvider) Name() string { return "brave" }

// braveResult carries both description and snippet because the API is
// inconsistent about which field it populates between response variants.
type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Snippet     string `json:"snippet"`
	Age         string `json:"age"`
	PageAge     string `json:"page_age"`
	Profile     struct {
		Img string `json:"img"`
	} `json:"profile"`
	MetaURL struct {
		Hostname string `json:"hostname"`
		Favicon  string `json:"favicon"`
	} `json:"meta_url"`
}

type braveResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

// Search queries the Brave Search API.
func (p *BraveProvider) Search(ctx context.Context, query string, limit int, filters Filters) ([]Result, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("brave: %w", ErrNotConfigured)
	}

	count := limit
	if count <= 0 || count > 20 {
		count = 20
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", fmt.Sprintf("%d", count))
	if f, ok := braveFreshness[filters.DateRange]; ok {
		params.Set("freshness", f)
	}

	endpoint := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave search returned status %d", resp.StatusCode)
	}

	var searchResp braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	results := make([]Result, 0, len(searchResp.Web.Results))
	for _, item := range searchResp.Web.Results {
		snippet := item.Description
		if snippet == "" {
			snippet = item.Snippet
		}
		source := normalizeSource(item.MetaURL.Hostname)
		if source == "" {
			source = sourceFromURL(item.URL)
		}
		date := item.PageAge
		if date == "" {
			date = item.Age
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: snippet,
			Source:  source,
			Date:    date,
			Favicon: item.MetaURL.Favicon,
			Type:    resultTypeForFilter(filters.Type),
		})
	}

	return sanitize(results, limit), nil
}
