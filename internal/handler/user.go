package handler

import (
	"net/http"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/dto"
	"food-delivery-api/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
	cfg         *config.Config
}

func NewUserHandler(userService service.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		cfg:         cfg,
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	resp, err := h.userService.Register(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	resp, err := h.userService.Login(ctx, &req)
	if err != nil {
		return respondError(c, h.cfg.IsDevelopment(), err)
	}

	return c.JSON(http.StatusOK, resp)
}
