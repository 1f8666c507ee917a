package handler

import (
	"errors"
	"net/http"

	"food-delivery-api/internal/client"
	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/model"

	"github.com/labstack/echo/v4"
)

func statusFor(err error) int {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, model.ErrPromoNotFound),
		errors.Is(err, model.ErrIntentNotFound),
		errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrFoodNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrUserExists),
		errors.Is(err, model.ErrPromoExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrPromoMinPurchase),
		errors.Is(err, model.ErrPromoExhausted),
		errors.Is(err, model.ErrPromoDates),
		errors.Is(err, model.ErrPromoDiscountType),
		errors.Is(err, model.ErrPromoDiscountValue),
		errors.Is(err, model.ErrIntentIDRequired),
		errors.Is(err, model.ErrPaymentNotSuccessful),
		errors.Is(err, model.ErrInvalidEmail),
		errors.Is(err, model.ErrWeakPassword),
		errors.Is(err, model.ErrMissingFields):
		return http.StatusBadRequest
	case errors.As(err, &apiErr), client.IsConnectionError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders the stable {success:false, message} error body.
// Diagnostic detail is attached only in development.
func respondError(c echo.Context, dev bool, err error) error {
	status := statusFor(err)

	resp := dto.ErrorResponse{
		Success: false,
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError && !dev {
		resp.Message = "Internal server error"
	}
	if dev {
		resp.Error = err.Error()
	}

	return c.JSON(status, resp)
}
