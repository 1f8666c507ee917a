package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type CreateIntentRequest struct {
	Amount          decimal.Decimal  `json:"amount"`
	PromoCode       string           `json:"promoCode,omitempty"`
	CustomerDetails *CustomerDetails `json:"customerDetails"`
}

type CreateIntentResponse struct {
	Success        bool            `json:"success"`
	ClientSecret   string          `json:"clientSecret"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	Discount       decimal.Decimal `json:"discount"`
	PromoCode      string          `json:"promoCode,omitempty"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type OrderDetails struct {
	Items []OrderItem `json:"items,omitempty"`
}

type PaymentSuccessRequest struct {
	PaymentIntentID string        `json:"paymentIntentId"`
	OrderDetails    *OrderDetails `json:"orderDetails,omitempty"`
}

type PaymentSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type CreatePromoRequest struct {
	Code          string           `json:"code"`
	DiscountType  string           `json:"discountType"`
	DiscountValue decimal.Decimal  `json:"discountValue"`
	MinPurchase   decimal.Decimal  `json:"minPurchase"`
	MaxDiscount   *decimal.Decimal `json:"maxDiscount,omitempty"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
	UsageLimit    *int             `json:"usageLimit,omitempty"`
}

type ValidatePromoRequest struct {
	Code      string          `json:"code"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

type PromoSummary struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
}

type ValidatePromoResponse struct {
	Success     bool            `json:"success"`
	Discount    decimal.Decimal `json:"discount"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
	PromoCode   PromoSummary    `json:"promoCode"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *UserSummary `json:"user,omitempty"`
}

type AddFoodRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Error carries diagnostic detail; only populated in development.
	Error string `json:"error,omitempty"`
}
