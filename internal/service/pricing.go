package service

import "github.com/shopspring/decimal"

// FinalAmount combines the cart subtotal, delivery fee and discount into the
// amount actually charged, in major currency units. Never negative.
func FinalAmount(subtotal, deliveryFee, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(deliveryFee).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
