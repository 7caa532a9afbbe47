package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// searxngCategories translates internal content types into SearXNG categories
var searxngCategories = map[string]string{
	"news":     "news",
	"academic": "science",
	"videos":   "videos",
	"images":   "images",
}

// searxngTimeRanges translates internal date ranges into SearXNG time_range values
var searxngTimeRanges = map[string]string{
	"day":   "day",
	"week":  "week",
	"month": "month",
	"year":  "year",
}

// SearxNGConfig holds configuration for the SearXNG meta-search client
type SearxNGConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// SearxNGProvider queries a self-hosted or third-party SearXNG instance.
// SearXNG aggregates multiple underlying engines and reports which engine
// produced each result.
type SearxNGProvider struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewSearxNGProvider creates a new SearXNG meta-search provider
func NewSearxNGProvider(cfg SearxNGConfig) *SearxNGProvider {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "WebSearchAPI/1.0"
	}
	return &SearxNGProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

func (p *SearxNGProvider) Name() string { return "searxng" }

type searxngResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Engine        string  `json:"engine"`
	PublishedDate string  `json:"publishedDate"`
	Thumbnail     string  `json:"thumbnail"`
	Score         float64 `json:"score"`
}

type searxngResponse struct {
	Query   string          `json:"query"`
	Results []searxngResult `json:"results"`
}

// Search queries the SearXNG JSON API and maps its per-engine results.
func (p *SearxNGProvider) Search(ctx context.Context, query string, limit int, filters Filters) ([]Result, error) {
	if p.baseURL == "" {
		return nil, fmt.Errorf("searxng: %w", ErrNotConfigured)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	if cat, ok := searxngCategories[filters.Type]; ok {
		params.Set("categories", cat)
	}
	if tr, ok := searxngTimeRanges[filters.DateRange]; ok {
		params.Set("time_range", tr)
	}

	endpoint := fmt.Sprintf("%s/search?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("searxng returned status %d", resp.StatusCode)
	}

	var searchResp searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	results := make([]Result, 0, len(searchResp.Results))
	for _, item := range searchResp.Results {
		source := item.Engine
		if source == "" {
			source = sourceFromURL(item.URL)
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Content,
			Source:  source,
			Date:    item.PublishedDate,
			Favicon: item.Thumbnail,
			Type:    resultTypeForFilter(filters.Type),
		})
	}

	return sanitize(results, limit), nil
}

// resultTypeForFilter maps a requested filter type onto the result type tag
func resultTypeForFilter(filterType string) string {
	switch filterType {
	case "news":
		return TypeNews
	case "academic":
		return TypeAcademic
	case "videos":
		return TypeVideo
	case "images":
		return TypeImage
	default:
		return TypeWeb
	}
}
