package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/websearch-api/api/types"
	"github.com/killallgit/websearch-api/internal/services/websearch"
)

const searchTimeout = 30 * time.Second

// Post handles web search requests
// @Summary      Search the web
// @Description  Run a query through the provider chain with optional filters, deep search, and per-user quota enforcement
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.SearchRequest true "Search parameters"
// @Success      200 {object} types.SearchResponse "Search results"
// @Failure      400 {object} types.ValidationErrorResponse "Bad request - invalid query"
// @Failure      429 {object} types.SearchFailureResponse "Monthly search quota exhausted"
// @Failure      500 {object} types.SearchFailureResponse "Internal server error"
// @Router       /api/v1/search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, types.SearchFailureResponse{
				Success: false,
				Results: []websearch.Result{},
				Message: "Web search failed.",
			})
			return
		}

		if req.Query == nil {
			c.JSON(http.StatusBadRequest, types.ValidationErrorResponse{
				Error: "Query parameter is required",
			})
			return
		}
		query := *req.Query
		if strings.TrimSpace(query) == "" {
			c.JSON(http.StatusBadRequest, types.ValidationErrorResponse{
				Error: "Query cannot be empty",
			})
			return
		}

		limit := req.Limit
		if limit <= 0 {
			limit = 10
		}
		if limit > 20 {
			limit = 20
		}

		// Quota gate before any provider is invoked
		if req.UserID != "" && deps.QuotaService != nil {
			if !deps.QuotaService.CanSearch(c.Request.Context(), req.UserID) {
				allowance := deps.QuotaService.GetRemaining(c.Request.Context(), req.UserID)
				resetDate := ""
				if allowance.ResetAt != nil {
					resetDate = allowance.ResetAt.Format("January 2, 2006")
				}
				remaining := 0
				total := allowance.Total
				c.JSON(http.StatusTooManyRequests, types.SearchFailureResponse{
					Success:   false,
					Results:   []websearch.Result{},
					Message:   quotaExhaustedMessage(total, resetDate),
					Remaining: &remaining,
					Total:     &total,
					ResetDate: resetDate,
				})
				return
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), searchTimeout)
		defer cancel()

		resp, err := deps.Searcher.Search(ctx, query, limit, req.Filters, req.DeepSearch)
		if err != nil {
			if err == websearch.ErrEmptyQuery {
				c.JSON(http.StatusBadRequest, types.ValidationErrorResponse{
					Error: "Query cannot be empty",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.SearchFailureResponse{
				Success: false,
				Results: []websearch.Result{},
				Message: "Web search failed.",
			})
			return
		}

		// Consume a quota unit only when the search actually produced
		// results. Fire-and-forget: an increment failure never fails the
		// request.
		if req.UserID != "" && deps.QuotaService != nil && len(resp.Results) > 0 {
			userID := req.UserID
			go func() {
				incCtx, incCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer incCancel()
				if _, err := deps.QuotaService.Increment(incCtx, userID); err != nil && deps.Log != nil {
					deps.Log.WithError(err).WithField("user_id", userID).Warn("Quota increment failed")
				}
			}()
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			Success:         true,
			Results:         resp.Results,
			Query:           query,
			Count:           len(resp.Results),
			RelatedSearches: resp.RelatedSearches,
			Provider:        resp.Provider,
			Message:         resp.Message,
		})
	}
}

// quotaExhaustedMessage formats the 429 body message
func quotaExhaustedMessage(total int, resetDate string) string {
	msg := fmt.Sprintf("You have reached your monthly search limit (%d searches used).", total)
	if resetDate != "" {
		msg += fmt.Sprintf(" Resets %s.", resetDate)
	}
	return msg
}
