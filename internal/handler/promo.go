package handler

import (
	"net/http"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/model"
	"food-delivery-api/internal/service"

	"github.com/labstack/echo/v4"
)

type PromoHandler struct {
	promoService service.PromoService
	cfg          *config.Config
}

func NewPromoHandler(promoService service.PromoService, cfg *config.Config) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
		cfg:          cfg,
	}
}

func (h *PromoHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePromoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}
	if req.Code == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "promo code is required",
		})
	}

	promo, err := h.promoService.Create(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":   true,
		"message":   "Promo code created successfully",
		"promoCode": promo,
	})
}

func (h *PromoHandler) Validate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ValidatePromoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	resp, err := h.promoService.Validate(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PromoHandler) ListActive(c echo.Context) error {
	ctx := c.Request().Context()

	promos, err := h.promoService.ListActive(ctx)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	summaries := make([]map[string]any, 0, len(promos))
	for _, p := range promos {
		summaries = append(summaries, promoView(p))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"promoCodes": summaries,
	})
}

func promoView(p *model.PromoCode) map[string]any {
	return map[string]any{
		"code":          p.Code,
		"discountType":  p.DiscountType,
		"discountValue": p.DiscountValue,
		"minPurchase":   p.MinPurchase,
		"maxDiscount":   p.MaxDiscount,
	}
}
