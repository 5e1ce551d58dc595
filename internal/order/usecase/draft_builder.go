package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"printworks/internal/domain"
	"printworks/internal/draft"
	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/pricing"
	"printworks/internal/producttype"
	"printworks/internal/schedule"
)

// DraftBuilder replays a submitted payload through the draft reducer so the
// server derives the same product type, notes and total as the form.
type DraftBuilder struct {
	reducer    draft.Reducer
	fabricRepo FabricRepository
	orderRepo  OrderRepository
	now        func() time.Time
}

func NewDraftBuilder(reducer draft.Reducer, fabricRepo FabricRepository, orderRepo OrderRepository) *DraftBuilder {
	return &DraftBuilder{
		reducer:    reducer,
		fabricRepo: fabricRepo,
		orderRepo:  orderRepo,
		now:        time.Now,
	}
}

func (b *DraftBuilder) Reducer() draft.Reducer {
	return b.reducer
}

// Build returns the reduced state and the field problems found on the way.
// Only lookup failures other than not-found are returned as errors.
func (b *DraftBuilder) Build(ctx context.Context, p dto.OrderPayload) (draft.State, []apperrors.ValidationDetail, error) {
	var details []apperrors.ValidationDetail
	invalid := func(field, format string, args ...interface{}) {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	cmds := []draft.Command{
		draft.SetCustomer{CustomerID: p.CustomerID},
		draft.SetSpk{Number: p.SpkNumber, Authoritative: p.SpkAuthoritative},
		draft.SetQuantity{Quantity: p.Quantity},
		draft.SetUnitPrice{Price: p.UnitPrice},
		draft.SetTax{Enabled: p.TaxEnabled, Percent: p.TaxPercent},
		draft.SetPriority{Priority: p.Priority},
	}

	if p.Unit != "" {
		unit := domain.Unit(p.Unit)
		if !unit.Valid() {
			invalid("unit", "unknown unit %q", p.Unit)
		}
		cmds = append(cmds, draft.SetUnit{Unit: unit})
	}

	discountType := domain.DiscountType(p.DiscountType)
	if p.DiscountType == "" {
		discountType = domain.DiscountNone
	} else if !discountType.Valid() {
		invalid("discountType", "unknown discount type %q", p.DiscountType)
	}
	cmds = append(cmds, draft.SetDiscount{Type: discountType, Value: p.DiscountValue})

	for i, item := range p.CostItems {
		cmds = append(cmds, draft.SetCostItem{Index: i, Item: item})
	}

	checkRange(p, invalid)

	selectionCmds, pass := b.productTypeCommands(p, invalid)
	cmds = append(cmds, selectionCmds...)
	if pass != "" {
		cmds = append(cmds, draft.SetDtfPass{Pass: pass})
	}

	cmds = append(cmds, draft.SetNotes{Text: producttype.SplitNotes(p.Notes).Text})

	if p.RepeatOrderSpk != "" {
		repeat, err := b.orderRepo.FindRepeatOrder(ctx, p.RepeatOrderSpk)
		if _, ok := apperrors.IsNotFoundError(err); ok {
			invalid("repeatOrderSpk", "order %s not found", p.RepeatOrderSpk)
		} else if err != nil {
			return draft.State{}, nil, err
		} else {
			cmds = append(cmds, draft.ApplyRepeatOrder{Order: *repeat})
		}
	}

	orderDate := b.now()
	if p.OrderDate != "" {
		d, err := dto.ParseISODate(p.OrderDate)
		if err != nil {
			invalid("orderDate", "%v", err)
		} else {
			orderDate = d
		}
	}
	cmds = append(cmds, draft.SetOrderDate{Date: orderDate})

	if p.TargetDate != "" {
		d, err := dto.ParseISODate(p.TargetDate)
		if err != nil {
			invalid("targetDate", "%v", err)
		} else if schedule.BeforeDay(d, orderDate) {
			invalid("targetDate", "target date is before the order date")
		} else {
			cmds = append(cmds, draft.SetTargetDate{Date: d})
		}
	}

	if p.FabricID != nil {
		fabric, err := b.fabricRepo.FindByID(ctx, *p.FabricID)
		if _, ok := apperrors.IsNotFoundError(err); ok {
			invalid("fabricId", "fabric %d not found", *p.FabricID)
		} else if err != nil {
			return draft.State{}, nil, err
		} else if p.CustomerID != 0 && fabric.CustomerID != p.CustomerID {
			invalid("fabricId", "fabric %d does not belong to customer %d", fabric.ID, p.CustomerID)
		} else {
			cmds = append(cmds, draft.SetFabric{Fabric: fabric})
		}
	}

	if p.PaperGSM != nil {
		cmds = append(cmds, draft.SetPaper{GSM: p.PaperGSM, Width: p.PaperWidth})
	}

	return b.reducer.Reduce(b.reducer.New(orderDate), cmds...), details, nil
}

func (b *DraftBuilder) productTypeCommands(
	p dto.OrderPayload,
	invalid func(field, format string, args ...interface{}),
) ([]draft.Command, domain.DtfPass) {
	pass := domain.DtfPass(p.DtfPass)
	if !pass.Valid() {
		invalid("dtfPass", "unknown dtf pass %q", p.DtfPass)
		pass = ""
	}

	var types []producttype.ProductType
	if len(p.ProductTypes) > 0 {
		for _, raw := range p.ProductTypes {
			t, ok := producttype.Parse(raw)
			if !ok {
				invalid("productTypes", "unknown product type %q", raw)
				continue
			}
			types = append(types, t)
		}
	} else if p.ProductType != "" {
		selection, parsedPass := producttype.ParseFormatted(p.ProductType)
		types = selection.Selected()
		if pass == "" {
			pass = parsedPass
		}
	}

	if withOthers(types, producttype.DTF) {
		invalid("productTypes", "DTF cannot be combined with other product types")
	}

	cmds := make([]draft.Command, 0, len(types))
	for _, t := range types {
		cmds = append(cmds, draft.SetProductType{Type: t, Selected: true})
	}
	return cmds, pass
}

// withOthers reports whether t appears in types next to a different type.
func withOthers(types []producttype.ProductType, t producttype.ProductType) bool {
	found, other := false, false
	for _, v := range types {
		if v == t {
			found = true
		} else {
			other = true
		}
	}
	return found && other
}

type amountField struct {
	name  string
	value string
}

// checkRange rejects numbers too large to price. Unparseable values are
// left alone; they price as zero.
func checkRange(p dto.OrderPayload, invalid func(field, format string, args ...interface{})) {
	fields := []amountField{
		{"quantity", p.Quantity},
		{"unitPrice", p.UnitPrice},
		{"discountValue", p.DiscountValue},
		{"taxPercent", p.TaxPercent},
	}
	for i, item := range p.CostItems {
		fields = append(fields,
			amountField{fmt.Sprintf("costItems[%d].price", i), item.Price},
			amountField{fmt.Sprintf("costItems[%d].quantity", i), item.Quantity},
			amountField{fmt.Sprintf("costItems[%d].total", i), item.Total},
		)
	}

	for _, f := range fields {
		if pricing.OutOfRange(f.value) {
			invalid(f.name, "must be a number of at most %s", strconv.FormatFloat(pricing.MaxAmount, 'f', -1, 64))
		}
	}
}
