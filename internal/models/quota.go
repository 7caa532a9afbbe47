package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription plan identifiers
const (
	PlanFree = "free"
	PlanPro  = "pro"
	PlanPlus = "plus"
)

// Period search ceilings per plan. Plus is effectively unlimited rather than
// literal infinity so quota arithmetic stays total.
const (
	FreePlanLimit = 5
	ProPlanLimit  = 50
	PlusPlanLimit = 1_000_000
)

// QuotaPeriod is the rolling window over which searches accumulate
const QuotaPeriod = 30 * 24 * time.Hour

// QuotaRecord tracks one user's search count within the current period
type QuotaRecord struct {
	gorm.Model
	UUID          string     `json:"uuid" gorm:"uniqueIndex"`
	UserID        string     `json:"user_id" gorm:"uniqueIndex;not null"`
	Plan          string     `json:"plan" gorm:"default:free"`
	PeriodCount   int        `json:"period_count" gorm:"default:0"`
	PeriodResetAt *time.Time `json:"period_reset_at"`
}

// BeforeCreate generates a UUID before creating a new quota record
func (q *QuotaRecord) BeforeCreate(tx *gorm.DB) error {
	if q.UUID == "" {
		q.UUID = uuid.New().String()
	}
	if q.Plan == "" {
		q.Plan = PlanFree
	}
	return nil
}

// TableName returns the table name for the QuotaRecord model
func (QuotaRecord) TableName() string {
	return "quota_records"
}

// PlanLimit returns the period search ceiling for a plan name. Unknown plans
// fall back to the free tier.
func PlanLimit(plan string) int {
	switch plan {
	case PlanPro:
		return ProPlanLimit
	case PlanPlus:
		return PlusPlanLimit
	default:
		return FreePlanLimit
	}
}
