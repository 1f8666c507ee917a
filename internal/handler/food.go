package handler

import (
	"net/http"
	"strconv"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/service"

	"github.com/labstack/echo/v4"
)

type FoodHandler struct {
	foodService service.FoodService
	cfg         *config.Config
}

func NewFoodHandler(foodService service.FoodService, cfg *config.Config) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		cfg:         cfg,
	}
}

func (h *FoodHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	foods, err := h.foodService.List(ctx)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    foods,
	})
}

func (h *FoodHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddFoodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	food, err := h.foodService.Add(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Food added successfully",
		"data":    food,
	})
}

func (h *FoodHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid food id",
		})
	}

	if err := h.foodService.Delete(ctx, uint(id)); err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Food removed successfully",
	})
}
