package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type PromoCode struct {
	ID            uint            `gorm:"primaryKey"`
	Code          string          `gorm:"size:32;uniqueIndex;not null"` // stored upper-cased
	DiscountType  DiscountType    `gorm:"size:16;not null"`
	DiscountValue decimal.Decimal `gorm:"type:numeric;not null"`
	MinPurchase   decimal.Decimal `gorm:"type:numeric;not null"`
	// MaxDiscount caps percentage-derived discounts; nil means no cap.
	MaxDiscount *decimal.Decimal `gorm:"type:numeric"`
	StartDate   time.Time        `gorm:"not null"`
	EndDate     time.Time        `gorm:"not null"`
	// UsageLimit caps total redemptions; nil means unlimited.
	UsageLimit *int
	UsedCount  int  `gorm:"not null;default:0"`
	IsActive   bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Food struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:128;not null"`
	Description string          `gorm:"not null"`
	Category    string          `gorm:"size:64;index;not null"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"`
	// Image is a filename reference; upload/hosting is handled elsewhere.
	Image     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:128;not null"`
	Email     string `gorm:"size:128;uniqueIndex;not null"`
	Password  string `gorm:"size:128;not null"` // bcrypt hash
	CreatedAt time.Time
}

type OrderStatus string

const (
	OrderPaid OrderStatus = "PAID"
)

type Order struct {
	ID string `gorm:"primaryKey;size:64"`
	// PaymentIntentID is the gateway-side intent id; unique so a confirmation
	// replay cannot produce a second order.
	PaymentIntentID string          `gorm:"size:64;uniqueIndex;not null"`
	CustomerEmail   string          `gorm:"size:128;index"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null"` // major units
	Currency        string          `gorm:"size:8;not null"`
	Status          OrderStatus     `gorm:"size:32;index;not null"`
	CreatedAt       time.Time
}
