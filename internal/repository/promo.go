package repository

import (
	"context"
	"errors"
	"time"

	"food-delivery-api/internal/model"

	"gorm.io/gorm"
)

type PromoRepository interface {
	Create(ctx context.Context, promo *model.PromoCode) error
	// FindActive returns the promo for code only if it is active and now is
	// inside its validity window; model.ErrPromoNotFound otherwise.
	FindActive(ctx context.Context, code string, now time.Time) (*model.PromoCode, error)
	// ConsumeUsage is the atomic check-and-increment: it bumps used_count only
	// while used_count < usage_limit and reports model.ErrPromoExhausted when
	// the limit race is lost.
	ConsumeUsage(ctx context.Context, promoID uint) error
	ListActive(ctx context.Context, now time.Time) ([]*model.PromoCode, error)
}

type promoRepoImpl struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepoImpl{
		db: db,
	}
}

func (r *promoRepoImpl) Create(ctx context.Context, promo *model.PromoCode) error {
	err := r.db.WithContext(ctx).Create(promo).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrPromoExists
	}
	return err
}

func (r *promoRepoImpl) FindActive(ctx context.Context, code string, now time.Time) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", now, now).
		First(&promo).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}

	return &promo, nil
}

func (r *promoRepoImpl) ConsumeUsage(ctx context.Context, promoID uint) error {
	result := r.db.WithContext(ctx).Model(&model.PromoCode{}).
		Where("id = ?", promoID).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrPromoExhausted
	}
	return nil
}

func (r *promoRepoImpl) ListActive(ctx context.Context, now time.Time) ([]*model.PromoCode, error) {
	var promos []*model.PromoCode
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Find(&promos).Error

	if err != nil {
		return nil, err
	}

	return promos, nil
}
