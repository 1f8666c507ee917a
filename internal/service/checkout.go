package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"food-delivery-api/internal/client"
	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/model"
	"food-delivery-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	// CreatePaymentIntent runs the checkout pipeline: validate the amount,
	// apply the promo code if one is given, create a gateway intent for the
	// final amount and return the client credentials.
	CreatePaymentIntent(ctx context.Context, req *dto.CreateIntentRequest) (*dto.CreateIntentResponse, error)
	// ConfirmSuccess verifies an intent reached the gateway's terminal-success
	// status and records the order. Idempotent per intent id.
	ConfirmSuccess(ctx context.Context, req *dto.PaymentSuccessRequest) (*dto.PaymentSuccessResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	promoService PromoService
	orderRepo    repository.OrderRepository
	deliveryFee  decimal.Decimal
	currency     string
	timeout      time.Duration
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	promoService PromoService,
	orderRepo repository.OrderRepository,
	deliveryFee decimal.Decimal,
	currency string,
	timeout time.Duration,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		promoService: promoService,
		orderRepo:    orderRepo,
		deliveryFee:  deliveryFee,
		currency:     currency,
		timeout:      timeout,
	}
}

func (s *checkoutServiceImpl) CreatePaymentIntent(ctx context.Context, req *dto.CreateIntentRequest) (*dto.CreateIntentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	subtotal := req.Amount
	if !subtotal.IsPositive() {
		return nil, model.ErrInvalidAmount
	}

	discount := decimal.Zero
	appliedCode := ""

	if req.PromoCode != "" {
		applied, err := s.applyPromo(ctx, req.PromoCode, subtotal)
		if err != nil {
			// Promo failures never abort a checkout; it proceeds undiscounted.
			slog.Warn("promo not applied, continuing without discount",
				"code", req.PromoCode, "error", err)
		} else {
			discount = applied.Discount
			appliedCode = applied.Code
		}
	}

	finalAmount := FinalAmount(subtotal, s.deliveryFee, discount)

	intent, err := s.stripeClient.CreateIntent(ctx, &client.CreateIntentParams{
		Amount:         finalAmount,
		Currency:       s.currency,
		OriginalAmount: subtotal,
		PromoCode:      appliedCode,
		Discount:       discount,
		Customer:       toCustomer(req.CustomerDetails),
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payment intent created",
		"intent_id", intent.ID, "amount", finalAmount, "promo", appliedCode)

	return &dto.CreateIntentResponse{
		Success:        true,
		ClientSecret:   intent.ClientSecret,
		Amount:         finalAmount,
		OriginalAmount: subtotal,
		Discount:       discount,
		PromoCode:      appliedCode,
	}, nil
}

// applyPromo quotes and then consumes one usage. The consume is a single
// conditional update, so two racing checkouts cannot push used_count past the
// limit; the loser is treated as ineligible.
func (s *checkoutServiceImpl) applyPromo(ctx context.Context, code string, cartTotal decimal.Decimal) (*AppliedPromo, error) {
	applied, err := s.promoService.Quote(ctx, code, cartTotal)
	if err != nil {
		return nil, err
	}
	if err := s.promoService.Redeem(ctx, applied.PromoID); err != nil {
		return nil, err
	}
	return applied, nil
}

func (s *checkoutServiceImpl) ConfirmSuccess(ctx context.Context, req *dto.PaymentSuccessRequest) (*dto.PaymentSuccessResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if req.PaymentIntentID == "" {
		return nil, model.ErrIntentIDRequired
	}

	intent, err := s.stripeClient.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	if intent.Status != client.IntentStatusSucceeded {
		slog.Warn("payment confirmation rejected",
			"intent_id", intent.ID, "status", intent.Status)
		return nil, model.ErrPaymentNotSuccessful
	}

	order := &model.Order{
		ID:              uuid.New().String(),
		PaymentIntentID: intent.ID,
		CustomerEmail:   intent.Metadata["customer_email"],
		Amount:          decimal.NewFromInt(intent.Amount).Div(decimal.NewFromInt(100)),
		Currency:        s.currency,
		Status:          model.OrderPaid,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			// Confirmation replay: return the order recorded the first time.
			existing, findErr := s.orderRepo.FindByPaymentIntentID(ctx, intent.ID)
			if findErr != nil {
				return nil, fmt.Errorf("load existing order: %w", findErr)
			}
			return successResponse(existing.ID), nil
		}
		return nil, fmt.Errorf("store order: %w", err)
	}

	slog.Info("order recorded", "order_id", order.ID, "intent_id", intent.ID)

	return successResponse(order.ID), nil
}

func successResponse(orderID string) *dto.PaymentSuccessResponse {
	return &dto.PaymentSuccessResponse{
		Success: true,
		Message: "Payment successful",
		OrderID: orderID,
	}
}

func toCustomer(details *dto.CustomerDetails) *client.Customer {
	if details == nil {
		return nil
	}
	return &client.Customer{
		FirstName: details.FirstName,
		LastName:  details.LastName,
		Email:     details.Email,
		Phone:     details.Phone,
		Street:    details.Street,
		City:      details.City,
		State:     details.State,
		ZipCode:   details.ZipCode,
		Country:   details.Country,
	}
}
