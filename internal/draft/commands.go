package draft

import (
	"time"

	"printworks/internal/domain"
	"printworks/internal/producttype"
	"printworks/internal/schedule"
)

// Command is one form change.
type Command interface {
	apply(s State, r Reducer) State
}

type SetCustomer struct{ CustomerID int }

func (c SetCustomer) apply(s State, _ Reducer) State {
	if c.CustomerID != s.CustomerID {
		s.Fabric = nil
	}
	s.CustomerID = c.CustomerID
	return s
}

type SetSpk struct {
	Number        string
	Authoritative bool
}

func (c SetSpk) apply(s State, _ Reducer) State {
	s.SpkNumber = c.Number
	s.SpkAuthoritative = c.Authoritative
	return s
}

type SetQuantity struct{ Quantity string }

func (c SetQuantity) apply(s State, _ Reducer) State {
	s.Quantity = c.Quantity
	return s
}

type SetUnit struct{ Unit domain.Unit }

func (c SetUnit) apply(s State, _ Reducer) State {
	if c.Unit.Valid() {
		s.Unit = c.Unit
	}
	return s
}

type SetUnitPrice struct{ Price string }

func (c SetUnitPrice) apply(s State, _ Reducer) State {
	s.UnitPrice = c.Price
	return s
}

type SetDiscount struct {
	Type  domain.DiscountType
	Value string
}

func (c SetDiscount) apply(s State, _ Reducer) State {
	if !c.Type.Valid() {
		c.Type = domain.DiscountNone
	}
	s.DiscountType = c.Type
	s.DiscountValue = c.Value
	if c.Type == domain.DiscountNone {
		s.DiscountValue = ""
	}
	return s
}

type SetTax struct {
	Enabled bool
	Percent string
}

func (c SetTax) apply(s State, _ Reducer) State {
	s.TaxEnabled = c.Enabled
	if c.Percent != "" {
		s.TaxPercent = c.Percent
	}
	return s
}

// SetCostItem writes one slot. Out-of-range indexes are ignored; callers
// that take indexes from outside check them with ValidateIndex first.
type SetCostItem struct {
	Index int
	Item  domain.CostItem
}

func (c SetCostItem) apply(s State, _ Reducer) State {
	if ValidateIndex(c.Index) != nil {
		return s
	}
	s.CostItems[c.Index] = c.Item
	return s
}

type ClearCostItem struct{ Index int }

func (c ClearCostItem) apply(s State, _ Reducer) State {
	if ValidateIndex(c.Index) != nil {
		return s
	}
	s.CostItems[c.Index] = domain.CostItem{}
	return s
}

type ToggleProductType struct{ Type producttype.ProductType }

func (c ToggleProductType) apply(s State, _ Reducer) State {
	s.ProductTypes = s.ProductTypes.Toggle(c.Type)
	return s
}

type SetProductType struct {
	Type     producttype.ProductType
	Selected bool
}

func (c SetProductType) apply(s State, _ Reducer) State {
	s.ProductTypes = s.ProductTypes.Set(c.Type, c.Selected)
	return s
}

type SetDtfPass struct{ Pass domain.DtfPass }

func (c SetDtfPass) apply(s State, _ Reducer) State {
	if c.Pass.Valid() {
		s.DtfPass = c.Pass
	}
	return s
}

// SetNotes replaces the user-written part of the notes only.
type SetNotes struct{ Text string }

func (c SetNotes) apply(s State, _ Reducer) State {
	s.Notes.Text = c.Text
	return s
}

type ApplyRepeatOrder struct{ Order domain.RepeatOrder }

func (c ApplyRepeatOrder) apply(s State, _ Reducer) State {
	s.Notes = producttype.PrependRepeatOrder(s.Notes, c.Order)
	return s
}

// SetOrderDate moves the order date and resets the target date to the
// default lead time.
type SetOrderDate struct{ Date time.Time }

func (c SetOrderDate) apply(s State, r Reducer) State {
	s.OrderDate = c.Date
	s.TargetDate = schedule.TargetDate(c.Date, r.leadDays)
	return s
}

type SetTargetDate struct{ Date time.Time }

func (c SetTargetDate) apply(s State, _ Reducer) State {
	if !c.Date.IsZero() {
		s.TargetDate = c.Date
	}
	return s
}

type SetPriority struct{ Priority bool }

func (c SetPriority) apply(s State, _ Reducer) State {
	s.Priority = c.Priority
	return s
}

type SetFabric struct{ Fabric *domain.FabricInfo }

func (c SetFabric) apply(s State, _ Reducer) State {
	s.Fabric = c.Fabric
	return s
}

type SetPaper struct {
	GSM   *int
	Width *int
}

func (c SetPaper) apply(s State, _ Reducer) State {
	if c.GSM == nil || (s.PaperGSM != nil && *c.GSM != *s.PaperGSM) {
		s.PaperWidth = nil
	}
	s.PaperGSM = c.GSM
	if c.GSM != nil && c.Width != nil {
		s.PaperWidth = c.Width
	}
	return s
}
