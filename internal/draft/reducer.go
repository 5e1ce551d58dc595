package draft

import (
	"fmt"
	"strconv"
	"time"

	"printworks/internal/domain"
	"printworks/internal/pricing"
	"printworks/internal/producttype"
	"printworks/internal/schedule"
)

type Reducer struct {
	calc              pricing.Calculator
	defaultTaxPercent float64
	leadDays          int
}

func NewReducer(defaultTaxPercent float64, leadDays int) Reducer {
	return Reducer{
		calc:              pricing.NewCalculator(defaultTaxPercent),
		defaultTaxPercent: defaultTaxPercent,
		leadDays:          leadDays,
	}
}

// New returns the state of a freshly opened order form.
func (r Reducer) New(now time.Time) State {
	s := State{
		Unit:         domain.UnitMeter,
		DiscountType: domain.DiscountNone,
		TaxPercent:   strconv.FormatFloat(r.defaultTaxPercent, 'f', -1, 64),
		OrderDate:    now,
		TargetDate:   schedule.TargetDate(now, r.leadDays),
	}
	return r.derive(s)
}

// Reduce applies the commands in order and recomputes the derived fields
// once at the end.
func (r Reducer) Reduce(s State, cmds ...Command) State {
	for _, cmd := range cmds {
		s = cmd.apply(s, r)
	}
	return r.derive(s)
}

func (r Reducer) derive(s State) State {
	for i, item := range s.CostItems {
		s.CostItems[i].Total = pricing.ItemTotalString(item)
	}

	s.DtfPass = producttype.EffectivePass(s.ProductTypes, s.DtfPass)
	s.ProductType = producttype.FormatProductTypes(s.ProductTypes, s.DtfPass)
	s.Notes = s.Notes.WithProductTypes(s.ProductTypes, s.DtfPass)

	breakdown := r.calc.Calculate(r.pricingInput(s))
	s.Total = breakdown.Total.String()
	s.StockWarning = pricing.StockWarning(s.Quantity, s.Unit, s.Fabric)
	return s
}

func (r Reducer) pricingInput(s State) pricing.Input {
	return pricing.Input{
		Quantity:      s.Quantity,
		Unit:          s.Unit,
		UnitPrice:     s.UnitPrice,
		CostItems:     s.CostItems[:],
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		TaxEnabled:    s.TaxEnabled,
		TaxPercent:    s.TaxPercent,
	}
}

// Breakdown exposes the pricing details behind State.Total.
func (r Reducer) Breakdown(s State) pricing.Breakdown {
	return r.calc.Calculate(r.pricingInput(s))
}

// ErrCostItemIndex is returned by ValidateIndex for slots outside the array.
type ErrCostItemIndex int

func (e ErrCostItemIndex) Error() string {
	return fmt.Sprintf("cost item index %d out of range [0,%d)", int(e), domain.MaxCostItems)
}

func ValidateIndex(i int) error {
	if i < 0 || i >= domain.MaxCostItems {
		return ErrCostItemIndex(i)
	}
	return nil
}
