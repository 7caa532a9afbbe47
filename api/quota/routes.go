package quota

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/websearch-api/api/types"
)

// RegisterRoutes registers quota routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:userId", Get(deps))
	router.PUT("/:userId/plan", PutPlan(deps))
}
