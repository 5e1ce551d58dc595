package pricing

import (
	"github.com/shopspring/decimal"

	"printworks/internal/domain"
)

// DefaultTaxPercent is used when tax is enabled without a usable percentage.
const DefaultTaxPercent = 11.0

var hundred = decimal.NewFromInt(100)

// ApplyDiscount never returns a negative amount.
func ApplyDiscount(subtotal float64, discountType domain.DiscountType, value float64) float64 {
	return applyDiscount(decimal.NewFromFloat(subtotal), discountType, decimal.NewFromFloat(value)).InexactFloat64()
}

func applyDiscount(subtotal decimal.Decimal, discountType domain.DiscountType, value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		value = decimal.Zero
	}

	result := subtotal
	switch discountType {
	case domain.DiscountFixed:
		result = subtotal.Sub(value)
	case domain.DiscountPercentage:
		result = subtotal.Sub(subtotal.Mul(value).Div(hundred))
	}

	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// ApplyTax multiplies by 1 + percent/100 when enabled. Negative percentages
// are treated as zero.
func ApplyTax(amount float64, enabled bool, percent float64) float64 {
	return applyTax(decimal.NewFromFloat(amount), enabled, decimal.NewFromFloat(percent)).InexactFloat64()
}

func applyTax(amount decimal.Decimal, enabled bool, percent decimal.Decimal) decimal.Decimal {
	if !enabled || !percent.IsPositive() {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(1).Add(percent.Div(hundred)))
}

// RoundTotal rounds to the nearest whole currency unit, halves away from zero.
func RoundTotal(x float64) float64 {
	return decimal.NewFromFloat(x).Round(0).InexactFloat64()
}
