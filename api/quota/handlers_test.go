package quota

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/websearch-api/api/types"
	quotasvc "github.com/killallgit/websearch-api/internal/services/quota"
	apperrors "github.com/killallgit/websearch-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock quota service for handler tests
type mockQuotaService struct {
	allowance  *quotasvc.Allowance
	setPlanErr error
	plans      map[string]string
}

func (m *mockQuotaService) GetRemaining(ctx context.Context, userID string) *quotasvc.Allowance {
	return m.allowance
}

func (m *mockQuotaService) CanSearch(ctx context.Context, userID string) bool {
	return m.allowance != nil && m.allowance.Remaining > 0
}

func (m *mockQuotaService) Increment(ctx context.Context, userID string) (bool, error) {
	return true, nil
}

func (m *mockQuotaService) SetPlan(ctx context.Context, userID string, plan string) error {
	if m.setPlanErr != nil {
		return m.setPlanErr
	}
	if m.plans == nil {
		m.plans = make(map[string]string)
	}
	m.plans[userID] = plan
	return nil
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resetAt := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)
	deps := &types.Dependencies{
		QuotaService: &mockQuotaService{
			allowance: &quotasvc.Allowance{Remaining: 3, Total: 5, ResetAt: &resetAt, Plan: "free"},
		},
	}

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/api/v1/quota/:userId", Get(deps))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quota/user-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.QuotaStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, 3, resp.Remaining)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, "free", resp.Plan)
	assert.Equal(t, "2026-09-15T08:30:00Z", resp.ResetAt)
}

func TestGet_NoResetDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deps := &types.Dependencies{
		QuotaService: &mockQuotaService{
			allowance: &quotasvc.Allowance{Remaining: 5, Total: 5, Plan: "free"},
		},
	}

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/api/v1/quota/:userId", Get(deps))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quota/new-user", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, hasResetAt := resp["resetAt"]
	assert.False(t, hasResetAt)
}

func TestPutPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           interface{}
		service        *mockQuotaService
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid plan change",
			body:           types.SetPlanRequest{Plan: "pro"},
			service:        &mockQuotaService{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing plan",
			body:           map[string]interface{}{},
			service:        &mockQuotaService{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Plan is required",
		},
		{
			name:           "unknown plan rejected by service",
			body:           types.SetPlanRequest{Plan: "enterprise"},
			service:        &mockQuotaService{setPlanErr: apperrors.NewInvalidInput("unknown plan: enterprise")},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "unknown plan: enterprise",
		},
		{
			name:           "storage failure",
			body:           types.SetPlanRequest{Plan: "pro"},
			service:        &mockQuotaService{setPlanErr: apperrors.New(apperrors.ErrCodeDatabaseQuery, "failed to update plan", 0)},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to update plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := &types.Dependencies{QuotaService: tt.service}

			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			router.PUT("/api/v1/quota/:userId/plan", PutPlan(deps))

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/quota/user-1/plan", bytes.NewBuffer(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
			} else {
				assert.Equal(t, "user-1", resp["userId"])
				assert.Equal(t, "pro", tt.service.plans["user-1"])
			}
		})
	}
}
