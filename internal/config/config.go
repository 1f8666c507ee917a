package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"food.db"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	Stripe   Stripe   `envPrefix:"STRIPE_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
}

type Stripe struct {
	BaseApiURL     string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey      string `env:"SECRET_KEY,required"`
	PublishableKey string `env:"PUBLISHABLE_KEY"`
}

type Checkout struct {
	Currency string `env:"CURRENCY" envDefault:"usd"`
	// DeliveryFee is a decimal string in major currency units.
	DeliveryFee string        `env:"DELIVERY_FEE" envDefault:"2"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"12s"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment.Name == "development"
}
