package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/websearch-api/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound indicates no quota record exists for the user yet
var ErrRecordNotFound = errors.New("quota record not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new quota repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetByUserID retrieves a user's quota record
func (r *RepositoryImpl) GetByUserID(ctx context.Context, userID string) (*models.QuotaRecord, error) {
	var record models.QuotaRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting quota record: %w", err)
	}
	return &record, nil
}

// Create creates a new quota record
func (r *RepositoryImpl) Create(ctx context.Context, record *models.QuotaRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("creating quota record: %w", err)
	}
	return nil
}

// ResetPeriod zeroes the counter and starts a new period for the user
func (r *RepositoryImpl) ResetPeriod(ctx context.Context, userID string, resetAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.QuotaRecord{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"period_count":    0,
			"period_reset_at": resetAt,
		})
	if result.Error != nil {
		return fmt.Errorf("resetting quota period: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ConditionalIncrement bumps the counter in a single guarded UPDATE so two
// racing increments for the same user cannot exceed the ceiling.
func (r *RepositoryImpl) ConditionalIncrement(ctx context.Context, userID string, ceiling int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.QuotaRecord{}).
		Where("user_id = ? AND period_count < ?", userID, ceiling).
		UpdateColumn("period_count", gorm.Expr("period_count + 1"))
	if result.Error != nil {
		return false, fmt.Errorf("incrementing quota: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// SetPlan updates the user's subscription plan
func (r *RepositoryImpl) SetPlan(ctx context.Context, userID string, plan string) error {
	result := r.db.WithContext(ctx).Model(&models.QuotaRecord{}).
		Where("user_id = ?", userID).
		Update("plan", plan)
	if result.Error != nil {
		return fmt.Errorf("updating plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
