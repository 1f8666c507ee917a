package repository

import (
	"context"
	"testing"
	"time"

	"food-delivery-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database. A single connection is
// forced because every sqlite :memory: connection gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.PromoCode{},
		&model.Food{},
		&model.User{},
		&model.Order{},
	))
	return db
}

func seedPromo(t *testing.T, db *gorm.DB, promo *model.PromoCode) *model.PromoCode {
	t.Helper()
	require.NoError(t, db.Create(promo).Error)
	return promo
}

func activePromo(code string) *model.PromoCode {
	return &model.PromoCode{
		Code:          code,
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(20),
		MinPurchase:   decimal.NewFromInt(30),
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func TestPromoFindActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)
	ctx := context.Background()
	now := time.Now()

	seedPromo(t, db, activePromo("SAVE20"))

	t.Run("finds active promo in window", func(t *testing.T) {
		promo, err := repo.FindActive(ctx, "SAVE20", now)
		require.NoError(t, err)
		assert.Equal(t, "SAVE20", promo.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := repo.FindActive(ctx, "NOPE", now)
		assert.ErrorIs(t, err, model.ErrPromoNotFound)
	})

	t.Run("inactive promo is invisible", func(t *testing.T) {
		inactive := activePromo("DISABLED")
		inactive.IsActive = false
		seedPromo(t, db, inactive)

		_, err := repo.FindActive(ctx, "DISABLED", now)
		assert.ErrorIs(t, err, model.ErrPromoNotFound)
	})

	t.Run("expired promo is invisible", func(t *testing.T) {
		expired := activePromo("EXPIRED")
		expired.StartDate = now.Add(-48 * time.Hour)
		expired.EndDate = now.Add(-24 * time.Hour)
		seedPromo(t, db, expired)

		_, err := repo.FindActive(ctx, "EXPIRED", now)
		assert.ErrorIs(t, err, model.ErrPromoNotFound)
	})

	t.Run("not-yet-started promo is invisible", func(t *testing.T) {
		future := activePromo("SOON")
		future.StartDate = now.Add(24 * time.Hour)
		future.EndDate = now.Add(48 * time.Hour)
		seedPromo(t, db, future)

		_, err := repo.FindActive(ctx, "SOON", now)
		assert.ErrorIs(t, err, model.ErrPromoNotFound)
	})
}

func TestPromoCreateDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, activePromo("SAVE20")))
	err := repo.Create(ctx, activePromo("SAVE20"))
	assert.ErrorIs(t, err, model.ErrPromoExists)
}

func TestPromoConsumeUsageRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)
	ctx := context.Background()

	limit := 3
	promo := activePromo("LIMITED")
	promo.UsageLimit = &limit
	seedPromo(t, db, promo)

	for i := 0; i < limit; i++ {
		require.NoError(t, repo.ConsumeUsage(ctx, promo.ID))
	}

	err := repo.ConsumeUsage(ctx, promo.ID)
	assert.ErrorIs(t, err, model.ErrPromoExhausted)

	var reloaded model.PromoCode
	require.NoError(t, db.First(&reloaded, promo.ID).Error)
	assert.Equal(t, limit, reloaded.UsedCount, "used_count never passes the limit")
}

func TestPromoConsumeUsageConcurrent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)

	limit := 5
	promo := activePromo("RACE")
	promo.UsageLimit = &limit
	seedPromo(t, db, promo)

	const redeemers = 20
	errs := make(chan error, redeemers)
	for i := 0; i < redeemers; i++ {
		go func() {
			errs <- repo.ConsumeUsage(context.Background(), promo.ID)
		}()
	}

	succeeded := 0
	for i := 0; i < redeemers; i++ {
		if err := <-errs; err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, model.ErrPromoExhausted)
		}
	}
	assert.Equal(t, limit, succeeded)

	var reloaded model.PromoCode
	require.NoError(t, db.First(&reloaded, promo.ID).Error)
	assert.Equal(t, limit, reloaded.UsedCount)
}

func TestPromoConsumeUsageUnlimited(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)
	ctx := context.Background()

	promo := seedPromo(t, db, activePromo("UNLIMITED"))

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.ConsumeUsage(ctx, promo.ID))
	}

	var reloaded model.PromoCode
	require.NoError(t, db.First(&reloaded, promo.ID).Error)
	assert.Equal(t, 10, reloaded.UsedCount)
}

func TestPromoConsumeUsageUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)

	err := repo.ConsumeUsage(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrPromoExhausted)
}

func TestPromoListActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoRepository(db)
	ctx := context.Background()
	now := time.Now()

	seedPromo(t, db, activePromo("SAVE20"))
	inactive := activePromo("DISABLED")
	inactive.IsActive = false
	seedPromo(t, db, inactive)

	promos, err := repo.ListActive(ctx, now)
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "SAVE20", promos[0].Code)
}
