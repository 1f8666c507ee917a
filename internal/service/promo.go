package service

import (
	"context"
	"strings"
	"time"

	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/model"
	"food-delivery-api/internal/repository"

	"github.com/shopspring/decimal"
)

// AppliedPromo is a priced-out promo quote; usage is not consumed until
// Redeem.
type AppliedPromo struct {
	PromoID       uint
	Code          string
	Discount      decimal.Decimal
	DiscountType  model.DiscountType
	DiscountValue decimal.Decimal
}

type PromoService interface {
	// Quote checks eligibility of code against cartTotal and computes the
	// discount without consuming usage.
	Quote(ctx context.Context, code string, cartTotal decimal.Decimal) (*AppliedPromo, error)
	// Redeem consumes one usage of the promo; model.ErrPromoExhausted if the
	// limit was reached in the meantime.
	Redeem(ctx context.Context, promoID uint) error
	Create(ctx context.Context, req *dto.CreatePromoRequest) (*model.PromoCode, error)
	Validate(ctx context.Context, req *dto.ValidatePromoRequest) (*dto.ValidatePromoResponse, error)
	ListActive(ctx context.Context) ([]*model.PromoCode, error)
}

type promoServiceImpl struct {
	promoRepo repository.PromoRepository
}

func NewPromoService(promoRepo repository.PromoRepository) PromoService {
	return &promoServiceImpl{
		promoRepo: promoRepo,
	}
}

func (s *promoServiceImpl) Quote(ctx context.Context, code string, cartTotal decimal.Decimal) (*AppliedPromo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	promo, err := s.promoRepo.FindActive(ctx, code, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if cartTotal.LessThan(promo.MinPurchase) {
		return nil, model.ErrPromoMinPurchase
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return nil, model.ErrPromoExhausted
	}

	return &AppliedPromo{
		PromoID:       promo.ID,
		Code:          promo.Code,
		Discount:      computeDiscount(promo, cartTotal),
		DiscountType:  promo.DiscountType,
		DiscountValue: promo.DiscountValue,
	}, nil
}

func (s *promoServiceImpl) Redeem(ctx context.Context, promoID uint) error {
	return s.promoRepo.ConsumeUsage(ctx, promoID)
}

func computeDiscount(promo *model.PromoCode, cartTotal decimal.Decimal) decimal.Decimal {
	if promo.DiscountType == model.DiscountPercentage {
		discount := cartTotal.Mul(promo.DiscountValue).Div(decimal.NewFromInt(100))
		if promo.MaxDiscount != nil && discount.GreaterThan(*promo.MaxDiscount) {
			discount = *promo.MaxDiscount
		}
		return discount
	}
	// fixed: never discount more than the cart itself
	return decimal.Min(promo.DiscountValue, cartTotal)
}

func (s *promoServiceImpl) Create(ctx context.Context, req *dto.CreatePromoRequest) (*model.PromoCode, error) {
	if !req.StartDate.Before(req.EndDate) {
		return nil, model.ErrPromoDates
	}
	discountType := model.DiscountType(req.DiscountType)
	if discountType != model.DiscountPercentage && discountType != model.DiscountFixed {
		return nil, model.ErrPromoDiscountType
	}
	if req.DiscountValue.IsNegative() {
		return nil, model.ErrPromoDiscountValue
	}

	promo := &model.PromoCode{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		MinPurchase:   req.MinPurchase,
		MaxDiscount:   req.MaxDiscount,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		UsageLimit:    req.UsageLimit,
		IsActive:      true,
	}

	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, err
	}

	return promo, nil
}

func (s *promoServiceImpl) Validate(ctx context.Context, req *dto.ValidatePromoRequest) (*dto.ValidatePromoResponse, error) {
	applied, err := s.Quote(ctx, req.Code, req.CartTotal)
	if err != nil {
		return nil, err
	}

	return &dto.ValidatePromoResponse{
		Success:     true,
		Discount:    applied.Discount,
		FinalAmount: req.CartTotal.Sub(applied.Discount),
		PromoCode: dto.PromoSummary{
			Code:          applied.Code,
			DiscountType:  string(applied.DiscountType),
			DiscountValue: applied.DiscountValue,
		},
	}, nil
}

func (s *promoServiceImpl) ListActive(ctx context.Context) ([]*model.PromoCode, error) {
	return s.promoRepo.ListActive(ctx, time.Now().UTC())
}
