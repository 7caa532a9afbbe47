package quota

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/websearch-api/api/types"
	apperrors "github.com/killallgit/websearch-api/pkg/errors"
)

// Get handles quota status requests
// @Summary      Get a user's search allowance
// @Description  Report remaining searches, plan ceiling, and period reset date for a user. Reading never mutates the counter.
// @Tags         quota
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} types.QuotaStatusResponse "Current allowance"
// @Router       /api/v1/quota/{userId} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		allowance := deps.QuotaService.GetRemaining(c.Request.Context(), userID)

		resetAt := ""
		if allowance.ResetAt != nil {
			resetAt = allowance.ResetAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}

		c.JSON(http.StatusOK, types.QuotaStatusResponse{
			UserID:    userID,
			Remaining: allowance.Remaining,
			Total:     allowance.Total,
			ResetAt:   resetAt,
			Plan:      allowance.Plan,
		})
	}
}

// PutPlan handles subscription plan changes
// @Summary      Change a user's plan
// @Description  Move a user between free, pro, and plus plans. Called by the billing collaborator on subscription changes.
// @Tags         quota
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        request body types.SetPlanRequest true "Target plan"
// @Success      200 {object} map[string]string "Plan updated"
// @Failure      400 {object} types.ValidationErrorResponse "Unknown plan"
// @Router       /api/v1/quota/{userId}/plan [put]
func PutPlan(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var req types.SetPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ValidationErrorResponse{
				Error: "Plan is required",
			})
			return
		}

		if err := deps.QuotaService.SetPlan(c.Request.Context(), userID, req.Plan); err != nil {
			message := "Failed to update plan"
			if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode == http.StatusBadRequest {
				message = appErr.Message
			}
			c.JSON(apperrors.HTTPStatus(err), types.ValidationErrorResponse{
				Error: message,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"userId": userID, "plan": req.Plan})
	}
}
