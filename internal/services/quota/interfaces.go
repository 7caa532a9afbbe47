package quota

import (
	"context"
	"time"

	"github.com/killallgit/websearch-api/internal/models"
)

// Allowance describes how much search capacity a user has left in the
// current period
type Allowance struct {
	Remaining int        `json:"remaining"`
	Total     int        `json:"total"`
	ResetAt   *time.Time `json:"resetAt"`
	Plan      string     `json:"plan"`
}

// Service defines quota ledger operations
type Service interface {
	// GetRemaining reports the user's current allowance. It never writes:
	// an elapsed period is reported as a full allowance, and the actual
	// rollover happens inside Increment. Persistence errors degrade to a
	// free-tier default instead of propagating.
	GetRemaining(ctx context.Context, userID string) *Allowance

	// CanSearch reports whether the user has at least one search left
	CanSearch(ctx context.Context, userID string) bool

	// Increment consumes one search unit, rolling the period over first if
	// its boundary has passed. Returns false when the user is already at
	// the plan ceiling.
	Increment(ctx context.Context, userID string) (bool, error)

	// SetPlan moves a user to a different subscription plan
	SetPlan(ctx context.Context, userID string, plan string) error
}

// Repository defines quota persistence operations
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*models.QuotaRecord, error)
	Create(ctx context.Context, record *models.QuotaRecord) error
	ResetPeriod(ctx context.Context, userID string, resetAt time.Time) error

	// ConditionalIncrement atomically increments the period counter only
	// while it is below the ceiling, reporting whether a unit was consumed
	ConditionalIncrement(ctx context.Context, userID string, ceiling int) (bool, error)

	SetPlan(ctx context.Context, userID string, plan string) error
}
