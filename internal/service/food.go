package service

import (
	"context"

	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/model"
	"food-delivery-api/internal/repository"
)

type FoodService interface {
	List(ctx context.Context) ([]*model.Food, error)
	Add(ctx context.Context, req *dto.AddFoodRequest) (*model.Food, error)
	Delete(ctx context.Context, foodID uint) error
}

type foodServiceImpl struct {
	foodRepo repository.FoodRepository
}

func NewFoodService(foodRepo repository.FoodRepository) FoodService {
	return &foodServiceImpl{
		foodRepo: foodRepo,
	}
}

func (s *foodServiceImpl) List(ctx context.Context) ([]*model.Food, error) {
	return s.foodRepo.List(ctx)
}

func (s *foodServiceImpl) Add(ctx context.Context, req *dto.AddFoodRequest) (*model.Food, error) {
	if req.Name == "" || req.Description == "" || req.Category == "" {
		return nil, model.ErrMissingFields
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		return nil, model.ErrInvalidAmount
	}

	food := &model.Food{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
	}
	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}

	return food, nil
}

func (s *foodServiceImpl) Delete(ctx context.Context, foodID uint) error {
	return s.foodRepo.Delete(ctx, foodID)
}
