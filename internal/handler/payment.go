package handler

import (
	"net/http"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	checkoutService service.CheckoutService
	cfg             *config.Config
}

func NewPaymentHandler(checkoutService service.CheckoutService, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		checkoutService: checkoutService,
		cfg:             cfg,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	resp, err := h.checkoutService.CreatePaymentIntent(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentSuccessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	resp, err := h.checkoutService.ConfirmSuccess(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusOK, resp)
}

// TestConfig reports whether the gateway keys are present without leaking
// them.
func (h *PaymentHandler) TestConfig(c echo.Context) error {
	if h.cfg.Stripe.SecretKey == "" {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: "Stripe secret key is not configured",
		})
	}

	publishable := "Not configured"
	if h.cfg.Stripe.PublishableKey != "" {
		publishable = "Configured"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"message":        "Stripe is properly configured",
		"publishableKey": publishable,
	})
}
