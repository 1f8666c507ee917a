package model

import "errors"

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrPromoNotFound        = errors.New("invalid or expired promo code")
	ErrPromoMinPurchase     = errors.New("minimum purchase amount not met")
	ErrPromoExhausted       = errors.New("promo code usage limit reached")
	ErrPromoExists          = errors.New("promo code already exists")
	ErrPromoDates           = errors.New("end date must be after start date")
	ErrPromoDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrPromoDiscountValue   = errors.New("discount value must be non-negative")
	ErrIntentIDRequired     = errors.New("payment intent ID is required")
	ErrIntentNotFound       = errors.New("payment intent not found")
	ErrPaymentNotSuccessful = errors.New("payment not successful")
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user doesn't exist")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidEmail         = errors.New("please enter a valid email")
	ErrWeakPassword         = errors.New("password must be at least 8 characters long")
	ErrMissingFields        = errors.New("please provide all required fields")
	ErrFoodNotFound         = errors.New("food not found")
)
