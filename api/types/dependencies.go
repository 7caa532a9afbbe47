package types

import (
	"context"

	"github.com/killallgit/websearch-api/internal/database"
	"github.com/killallgit/websearch-api/internal/services/quota"
	"github.com/killallgit/websearch-api/internal/services/websearch"
	"github.com/sirupsen/logrus"
)

// Searcher defines the interface handlers use to run searches
type Searcher interface {
	Search(ctx context.Context, query string, limit int, filters websearch.Filters, deepSearch bool) (*websearch.Response, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB           *database.DB
	QuotaService quota.Service
	Searcher     Searcher
	Log          *logrus.Logger
}
