package repository

import (
	"context"

	"food-delivery-api/internal/model"

	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(ctx context.Context, food *model.Food) error
	List(ctx context.Context) ([]*model.Food, error)
	Delete(ctx context.Context, foodID uint) error
}

type foodRepoImpl struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepoImpl{
		db: db,
	}
}

func (r *foodRepoImpl) Create(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepoImpl) List(ctx context.Context) ([]*model.Food, error) {
	var foods []*model.Food
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&foods).Error

	if err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepoImpl) Delete(ctx context.Context, foodID uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Food{}, foodID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrFoodNotFound
	}
	return nil
}
