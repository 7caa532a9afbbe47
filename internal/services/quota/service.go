package quota

import (
	"context"
	"errors"
	"time"

	"github.com/killallgit/websearch-api/internal/models"
	apperrors "github.com/killallgit/websearch-api/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	log        *logrus.Logger
	now        func() time.Time
}

// NewService creates a new quota ledger service
func NewService(repository Repository, log *logrus.Logger) Service {
	if log == nil {
		log = logrus.New()
	}
	return &ServiceImpl{
		repository: repository,
		log:        log,
		now:        time.Now,
	}
}

// GetRemaining reports the user's allowance without mutating anything.
// An elapsed or unset reset boundary is reported as a full upcoming period;
// the rollover write happens only in Increment so this stays safe to call
// from any code path.
func (s *ServiceImpl) GetRemaining(ctx context.Context, userID string) *Allowance {
	record, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return &Allowance{
				Remaining: models.FreePlanLimit,
				Total:     models.FreePlanLimit,
				Plan:      models.PlanFree,
			}
		}
		// Availability over strict accuracy for this advisory read
		s.log.WithError(err).WithField("user_id", userID).Warn("Quota read failed, degrading to free-tier default")
		return &Allowance{
			Remaining: models.FreePlanLimit,
			Total:     models.FreePlanLimit,
			Plan:      models.PlanFree,
		}
	}

	total := models.PlanLimit(record.Plan)
	if record.PeriodResetAt == nil || !s.now().Before(*record.PeriodResetAt) {
		return &Allowance{
			Remaining: total,
			Total:     total,
			ResetAt:   record.PeriodResetAt,
			Plan:      record.Plan,
		}
	}

	remaining := total - record.PeriodCount
	if remaining < 0 {
		remaining = 0
	}
	return &Allowance{
		Remaining: remaining,
		Total:     total,
		ResetAt:   record.PeriodResetAt,
		Plan:      record.Plan,
	}
}

// CanSearch reports whether the user has searches left this period
func (s *ServiceImpl) CanSearch(ctx context.Context, userID string) bool {
	return s.GetRemaining(ctx, userID).Remaining > 0
}

// Increment consumes one search unit. A missing record is created
// implicitly on the free plan; an elapsed period is rolled over before the
// counter is bumped.
func (s *ServiceImpl) Increment(ctx context.Context, userID string) (bool, error) {
	now := s.now()
	record, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			return false, err
		}
		resetAt := now.Add(models.QuotaPeriod)
		record = &models.QuotaRecord{
			UserID:        userID,
			Plan:          models.PlanFree,
			PeriodCount:   1,
			PeriodResetAt: &resetAt,
		}
		return true, s.repository.Create(ctx, record)
	}

	if record.PeriodResetAt == nil || !now.Before(*record.PeriodResetAt) {
		if err := s.repository.ResetPeriod(ctx, userID, now.Add(models.QuotaPeriod)); err != nil {
			return false, err
		}
	}

	return s.repository.ConditionalIncrement(ctx, userID, models.PlanLimit(record.Plan))
}

// SetPlan moves a user to a different subscription plan, creating the
// record when the user has never searched.
func (s *ServiceImpl) SetPlan(ctx context.Context, userID string, plan string) error {
	switch plan {
	case models.PlanFree, models.PlanPro, models.PlanPlus:
	default:
		return apperrors.NewInvalidInput("unknown plan: " + plan)
	}

	err := s.repository.SetPlan(ctx, userID, plan)
	if errors.Is(err, ErrRecordNotFound) {
		err = s.repository.Create(ctx, &models.QuotaRecord{
			UserID: userID,
			Plan:   plan,
		})
	}
	if err != nil {
		return apperrors.New(apperrors.ErrCodeDatabaseQuery, "failed to update plan", 0).WithCause(err)
	}
	return nil
}
