package pricing

import (
	"github.com/shopspring/decimal"

	"printworks/internal/domain"
)

type Input struct {
	Quantity      string
	Unit          domain.Unit
	UnitPrice     string
	CostItems     []domain.CostItem
	DiscountType  domain.DiscountType
	DiscountValue string
	TaxEnabled    bool
	// TaxPercent falls back to the calculator default when empty or not numeric.
	TaxPercent string
}

type Breakdown struct {
	Meters        decimal.Decimal `json:"meters"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	ItemsAmount   decimal.Decimal `json:"itemsAmount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	AfterDiscount decimal.Decimal `json:"afterDiscount"`
	TaxPercent    decimal.Decimal `json:"taxPercent"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
}

type Calculator struct {
	defaultTaxPercent decimal.Decimal
}

func NewCalculator(defaultTaxPercent float64) Calculator {
	return Calculator{defaultTaxPercent: decimal.NewFromFloat(defaultTaxPercent)}
}

func (c Calculator) Calculate(in Input) Breakdown {
	meters := normalize(amount(in.Quantity), in.Unit)
	base := meters.Mul(amount(in.UnitPrice))
	items := aggregate(in.CostItems)
	subtotal := base.Add(items)

	afterDiscount := applyDiscount(subtotal, in.DiscountType, amount(in.DiscountValue))

	taxPercent := decimal.Zero
	if in.TaxEnabled {
		taxPercent = c.defaultTaxPercent
		if p, ok := parseDecimal(in.TaxPercent); ok {
			taxPercent = p
		}
		if taxPercent.IsNegative() {
			taxPercent = decimal.Zero
		}
	}
	taxed := applyTax(afterDiscount, in.TaxEnabled, taxPercent)

	return Breakdown{
		Meters:        meters,
		BaseAmount:    base,
		ItemsAmount:   items,
		Subtotal:      subtotal,
		Discount:      subtotal.Sub(afterDiscount),
		AfterDiscount: afterDiscount,
		TaxPercent:    taxPercent,
		Tax:           taxed.Sub(afterDiscount),
		Total:         taxed.Round(0),
	}
}

var defaultCalculator = NewCalculator(DefaultTaxPercent)

func Calculate(in Input) Breakdown {
	return defaultCalculator.Calculate(in)
}

// CalculateTotalPrice runs the full pipeline and returns the rounded total as
// a decimal string. Tax uses DefaultTaxPercent.
func CalculateTotalPrice(
	qty string,
	price string,
	items []domain.CostItem,
	discountType domain.DiscountType,
	discountValue string,
	taxEnabled bool,
	unit domain.Unit,
) string {
	return Calculate(Input{
		Quantity:      qty,
		Unit:          unit,
		UnitPrice:     price,
		CostItems:     items,
		DiscountType:  discountType,
		DiscountValue: discountValue,
		TaxEnabled:    taxEnabled,
	}).Total.String()
}
