package quota

import (
	"context"
	"testing"
	"time"

	"github.com/killallgit/websearch-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&models.QuotaRecord{}))
	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	resetAt := time.Now().Add(models.QuotaPeriod)
	record := &models.QuotaRecord{
		UserID:        "user-1",
		Plan:          models.PlanFree,
		PeriodCount:   2,
		PeriodResetAt: &resetAt,
	}
	require.NoError(t, repo.Create(ctx, record))
	assert.NotEmpty(t, record.UUID, "UUID should be assigned on create")

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.PlanFree, got.Plan)
	assert.Equal(t, 2, got.PeriodCount)
	require.NotNil(t, got.PeriodResetAt)
}

func TestRepository_GetByUserID_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_ConditionalIncrement(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.QuotaRecord{
		UserID:      "user-1",
		Plan:        models.PlanFree,
		PeriodCount: 0,
	}))

	// Consume the full free allowance
	for i := 0; i < models.FreePlanLimit; i++ {
		ok, err := repo.ConditionalIncrement(ctx, "user-1", models.FreePlanLimit)
		require.NoError(t, err)
		assert.True(t, ok, "increment %d should succeed", i+1)
	}

	// The guarded update refuses once the ceiling is reached
	ok, err := repo.ConditionalIncrement(ctx, "user-1", models.FreePlanLimit)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.FreePlanLimit, got.PeriodCount)
}

func TestRepository_ConditionalIncrement_MissingUser(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	ok, err := repo.ConditionalIncrement(context.Background(), "nobody", 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_ResetPeriod(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	old := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, &models.QuotaRecord{
		UserID:        "user-1",
		Plan:          models.PlanPro,
		PeriodCount:   17,
		PeriodResetAt: &old,
	}))

	next := time.Now().Add(models.QuotaPeriod)
	require.NoError(t, repo.ResetPeriod(ctx, "user-1", next))

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.PeriodCount)
	require.NotNil(t, got.PeriodResetAt)
	assert.WithinDuration(t, next, *got.PeriodResetAt, time.Second)
}

func TestRepository_ResetPeriod_MissingUser(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	err := repo.ResetPeriod(context.Background(), "nobody", time.Now())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_SetPlan(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.QuotaRecord{
		UserID: "user-1",
		Plan:   models.PlanFree,
	}))

	require.NoError(t, repo.SetPlan(ctx, "user-1", models.PlanPro))

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.PlanPro, got.Plan)
}

func TestRepository_SetPlan_MissingUser(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	err := repo.SetPlan(context.Background(), "nobody", models.PlanPro)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
