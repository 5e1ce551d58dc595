package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"printworks/internal/domain"
	"printworks/internal/draft"
	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/order/service"
	"printworks/internal/pricing"
)

type SubmitOrderUseCase struct {
	builder      *DraftBuilder
	customerRepo CustomerRepository
	creator      OrderCreator
	retry        retrier
	logger       *zap.Logger
}

func NewSubmitOrderUseCase(
	builder *DraftBuilder,
	customerRepo CustomerRepository,
	creator OrderCreator,
	logger *zap.Logger,
	maxRetryAttempts int,
) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		builder:      builder,
		customerRepo: customerRepo,
		creator:      creator,
		retry:        newRetrier(maxRetryAttempts, logger),
		logger:       logger,
	}
}

// Submit validates the payload, recomputes every derived value and stores
// the order. Totals sent by the client are ignored.
func (uc *SubmitOrderUseCase) Submit(ctx context.Context, p dto.OrderPayload) (*dto.SubmitOrderResponse, error) {
	uc.logger.Info("order submission started", zap.String("spk", p.SpkNumber), zap.Int("customerId", p.CustomerID))

	state, details, err := uc.builder.Build(ctx, p)
	if err != nil {
		return nil, err
	}

	required, err := uc.checkRequired(ctx, state)
	if err != nil {
		return nil, err
	}
	details = append(details, required...)

	if len(details) > 0 {
		uc.logger.Warn("order submission rejected", zap.String("spk", p.SpkNumber), zap.Int("detailCount", len(details)))
		return nil, apperrors.NewValidationError("invalid order", details...)
	}

	order := uc.toOrder(state)

	var result *service.CreateOrderResult
	err = uc.retry.do(ctx, "create order", func() error {
		var err error
		result, err = uc.creator.CreateOrder(ctx, order, state.CostItems, state.SpkAuthoritative)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.SubmitOrderResponse{
		ID:           result.ID,
		PublicID:     result.PublicID,
		Spk:          result.SpkNumber,
		SpkReissued:  result.SpkReissued,
		ProductType:  order.ProductType,
		Total:        state.Total,
		Notes:        order.Notes,
		TargetDate:   order.TargetDate.Format(dto.DateLayout),
		StockWarning: state.StockWarning,
		Timestamp:    time.Now().UTC(),
	}, nil
}

func (uc *SubmitOrderUseCase) checkRequired(ctx context.Context, s draft.State) ([]apperrors.ValidationDetail, error) {
	var details []apperrors.ValidationDetail
	add := func(field, message string) {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: message})
	}

	if s.CustomerID <= 0 {
		add("customerId", "customer is required")
	} else {
		customer, err := uc.customerRepo.FindByID(ctx, s.CustomerID)
		if _, ok := apperrors.IsNotFoundError(err); ok {
			add("customerId", "customer not found")
		} else if err != nil {
			return nil, err
		} else if !customer.IsActive {
			add("customerId", "customer is inactive")
		}
	}

	if !pricing.IsNumeric(s.Quantity) || pricing.ParseAmount(s.Quantity) <= 0 {
		add("quantity", "quantity must be a positive number")
	}
	if !pricing.IsNumeric(s.UnitPrice) || pricing.ParseAmount(s.UnitPrice) < 0 {
		add("unitPrice", "unit price must be a number")
	}
	if s.ProductTypes.IsEmpty() {
		add("productTypes", "select at least one product type")
	}

	return details, nil
}

func (uc *SubmitOrderUseCase) toOrder(s draft.State) domain.Order {
	breakdown := uc.builder.Reducer().Breakdown(s)
	return domain.Order{
		SpkNumber:     s.SpkNumber,
		CustomerID:    s.CustomerID,
		ProductType:   s.ProductType,
		Quantity:      pricing.ParseAmount(s.Quantity),
		Unit:          s.Unit,
		FabricID:      s.FabricID(),
		PaperGSM:      s.PaperGSM,
		PaperWidth:    s.PaperWidth,
		UnitPrice:     pricing.ParseAmount(s.UnitPrice),
		DiscountType:  s.DiscountType,
		DiscountValue: pricing.ParseAmount(s.DiscountValue),
		TaxEnabled:    s.TaxEnabled,
		TaxPercent:    breakdown.TaxPercent.InexactFloat64(),
		TotalPrice:    breakdown.Total.InexactFloat64(),
		Notes:         s.RenderedNotes(),
		Priority:      s.Priority,
		OrderDate:     s.OrderDate,
		TargetDate:    s.TargetDate,
		Status:        domain.OrderStatusPending,
		CostItems:     s.CostItems.Filled(),
	}
}
