package server

import (
	"log/slog"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/handler"
	appmw "food-delivery-api/internal/middleware"
	"food-delivery-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	cfg            *config.Config
	paymentHandler *handler.PaymentHandler
	promoHandler   *handler.PromoHandler
	userHandler    *handler.UserHandler
	foodHandler    *handler.FoodHandler
}

func NewServer(
	cfg *config.Config,
	checkoutService service.CheckoutService,
	promoService service.PromoService,
	userService service.UserService,
	foodService service.FoodService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
				slog.Error("request", attrs...)
			} else {
				slog.Info("request", attrs...)
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		cfg:            cfg,
		paymentHandler: handler.NewPaymentHandler(checkoutService, cfg),
		promoHandler:   handler.NewPromoHandler(promoService, cfg),
		userHandler:    handler.NewUserHandler(userService, cfg),
		foodHandler:    handler.NewFoodHandler(foodService, cfg),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth := appmw.AuthMiddleware(s.cfg.JWTSecret)

	// -------- checkout --------
	payment := api.Group("/payment")
	payment.POST("/create-payment-intent", s.paymentHandler.CreatePaymentIntent, auth)
	payment.POST("/payment-success", s.paymentHandler.PaymentSuccess, auth)
	payment.GET("/test-config", s.paymentHandler.TestConfig)

	// -------- promo codes --------
	promo := api.Group("/promo")
	promo.POST("/create", s.promoHandler.Create, auth)
	promo.POST("/validate", s.promoHandler.Validate)
	promo.GET("/active", s.promoHandler.ListActive)

	// -------- users --------
	user := api.Group("/user")
	user.POST("/register", s.userHandler.Register)
	user.POST("/login", s.userHandler.Login)

	// -------- foods --------
	food := api.Group("/food")
	food.GET("/list", s.foodHandler.List)
	food.POST("", s.foodHandler.Add, auth)
	food.DELETE("/:id", s.foodHandler.Delete, auth)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
