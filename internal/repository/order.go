package repository

import (
	"context"
	"errors"

	"food-delivery-api/internal/model"

	"gorm.io/gorm"
)

var ErrDuplicateOrder = errors.New("order already recorded for this payment intent")

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByPaymentIntentID(ctx context.Context, intentID string) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateOrder
	}
	return err
}

func (r *orderRepoImpl) FindByPaymentIntentID(ctx context.Context, intentID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("payment_intent_id = ?", intentID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}
