package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"printworks/internal/domain"
)

// CalculateItemTotal is round(price × qty).
func CalculateItemTotal(price, qty float64) float64 {
	return itemTotal(decimal.NewFromFloat(price), decimal.NewFromFloat(qty)).InexactFloat64()
}

func itemTotal(price, qty decimal.Decimal) decimal.Decimal {
	return price.Mul(qty).Round(0)
}

// ItemTotalString recomputes the display total of a cost item, or "" when
// price or quantity is missing.
func ItemTotalString(item domain.CostItem) string {
	if !IsNumeric(item.Price) || !IsNumeric(item.Quantity) {
		return ""
	}
	return itemTotal(amount(item.Price), amount(item.Quantity)).String()
}

// CountsTowardTotal reports whether an item has a description, a numeric
// price and a numeric quantity. Only such items contribute to the order total.
func CountsTowardTotal(item domain.CostItem) bool {
	return strings.TrimSpace(item.Description) != "" && IsNumeric(item.Price) && IsNumeric(item.Quantity)
}

func itemContribution(item domain.CostItem) decimal.Decimal {
	if !CountsTowardTotal(item) {
		return decimal.Zero
	}
	if total := amount(item.Total); total.IsPositive() {
		return total
	}
	price, qty := amount(item.Price), amount(item.Quantity)
	if price.IsPositive() && qty.IsPositive() {
		return price.Mul(qty)
	}
	return decimal.Zero
}

// AggregateCostItems sums the contributions of the given cost items.
func AggregateCostItems(items []domain.CostItem) float64 {
	return aggregate(items).InexactFloat64()
}

func aggregate(items []domain.CostItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(itemContribution(item))
	}
	return sum
}
