package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// googleDateRestricts translates internal date ranges into the Custom Search
// dateRestrict vocabulary
var googleDateRestricts = map[string]string{
	"day":   "d1",
	"week":  "w1",
	"month": "m1",
	"year":  "y1",
}

// googleMaxNum is the hard cap the Custom Search API enforces per call
const googleMaxNum = 10

// GoogleConfig holds configuration for the Google Custom Search client
type GoogleConfig struct {
	APIKey         string
	SearchEngineID string
	BaseURL        string
	Timeout        time.Duration
}

// GoogleProvider queries the Google Custom Search JSON API.
type GoogleProvider struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	searchEngineID string
}

// NewGoogleProvider creates a new Google Custom Search provider
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/customsearch/v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &GoogleProvider{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		searchEngineID: cfg.SearchEngineID,
	}
}

func (p *GoogleProvider) Name() string { return "google" }

type googleItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Pagemap struct {
		CSEThumbnail []struct {
			Src string `json:"src"`
		} `json:"cse_thumbnail"`
		Metatags []map[string]string `json:"metatags"`
	} `json:"pagemap"`
}

type googleResponse struct {
	Items []googleItem `json:"items"`
}

// Search queries the Custom Search API, translating filters into its own
// parameter vocabulary.
func (p *GoogleProvider) Search(ctx context.Context, query string, limit int, filters Filters) ([]Result, error) {
	if p.apiKey == "" || p.searchEngineID == "" {
		return nil, fmt.Errorf("google: %w", ErrNotConfigured)
	}

	num := limit
	if num <= 0 || num > googleMaxNum {
		num = googleMaxNum
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("cx", p.searchEngineID)
	params.Set("q", query)
	params.Set("num", fmt.Sprintf("%d", num))
	if dr, ok := googleDateRestricts[filters.DateRange]; ok {
		params.Set("dateRestrict", dr)
	}
	if filters.Type == "images" {
		params.Set("searchType", "image")
	}

	endpoint := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())

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
		return nil, fmt.Errorf("google search returned status %d", resp.StatusCode)
	}

	var searchResp googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	results := make([]Result, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		favicon := ""
		if len(item.Pagemap.CSEThumbnail) > 0 {
			favicon = item.Pagemap.CSEThumbnail[0].Src
		}
		if favicon == "" {
			if host := sourceFromURL(item.Link); host != "" {
				favicon = fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s", host)
			}
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
			Source:  sourceFromURL(item.Link),
			Favicon: favicon,
			Type:    resultTypeForFilter(filters.Type),
		})
	}

	return sanitize(results, limit), nil
}
