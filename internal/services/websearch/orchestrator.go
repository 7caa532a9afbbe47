package websearch

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	maxQueryLength = 500
	defaultLimit   = 10
	maxLimit       = 10
	maxDeepLimit   = 20
)

// Config holds credentials and endpoints for the provider chain. It is
// injected at construction time so adapters stay testable without
// process-wide state.
type Config struct {
	SearxNG    SearxNGConfig
	Google     GoogleConfig
	Brave      BraveConfig
	DuckDuckGo DuckDuckGoConfig
}

// DefaultProviders builds the standard priority-ordered provider chain.
// Unconfigured providers stay in the chain; they fail fast and the
// orchestrator falls through to the next one.
func DefaultProviders(cfg Config) []Provider {
	return []Provider{
		NewSearxNGProvider(cfg.SearxNG),
		NewGoogleProvider(cfg.Google),
		NewBraveProvider(cfg.Brave),
		NewDuckDuckGoProvider(cfg.DuckDuckGo),
		NewMockProvider(),
	}
}

// Orchestrator runs a query through the provider chain, stopping at the
// first provider that returns at least one result.
type Orchestrator struct {
	providers []Provider
	log       *logrus.Logger
}

// NewOrchestrator creates a search orchestrator over the given providers
func NewOrchestrator(providers []Provider, log *logrus.Logger) *Orchestrator {
	if log == nil {
		log = logrus.New()
	}
	return &Orchestrator{
		providers: providers,
		log:       log,
	}
}

// Search validates the query, tries providers in order, and finalizes the
// outcome. After validation it cannot fail: the mock provider is
// unconditional, so the worst case is synthetic results with a disclosure.
func (o *Orchestrator) Search(ctx context.Context, query string, limit int, filters Filters, deepSearch bool) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if runes := []rune(query); len(runes) > maxQueryLength {
		query = string(runes[:maxQueryLength])
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	effectiveLimit := limit
	if deepSearch {
		effectiveLimit = limit * 2
		if effectiveLimit > maxDeepLimit {
			effectiveLimit = maxDeepLimit
		}
	} else if effectiveLimit > maxLimit {
		effectiveLimit = maxLimit
	}

	var (
		results  []Result
		provider string
	)
	for _, p := range o.providers {
		found, err := p.Search(ctx, query, effectiveLimit, filters)
		if err != nil {
			o.log.WithError(err).WithField("provider", p.Name()).Warn("Search provider failed, trying next")
			continue
		}
		if len(found) == 0 {
			o.log.WithField("provider", p.Name()).Debug("Search provider returned no results, trying next")
			continue
		}
		results = found
		provider = p.Name()
		break
	}

	if len(results) > effectiveLimit {
		results = results[:effectiveLimit]
	}

	resp := &Response{
		Results:         results,
		Provider:        provider,
		RelatedSearches: relatedSearches(query, results),
	}
	if provider == "mock" {
		resp.Message = MockWarning
	}

	o.log.WithFields(logrus.Fields{
		"provider": provider,
		"count":    len(results),
	}).Info("Search completed")

	return resp, nil
}
