package usecase

import (
	"context"

	"go.uber.org/zap"

	"printworks/internal/draft"
	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/pricing"
)

type QuoteOrderUseCase struct {
	builder *DraftBuilder
	logger  *zap.Logger
}

func NewQuoteOrderUseCase(builder *DraftBuilder, logger *zap.Logger) *QuoteOrderUseCase {
	return &QuoteOrderUseCase{builder: builder, logger: logger}
}

// Quote prices a draft without storing anything. Missing fields are allowed
// and simply price as zero.
func (uc *QuoteOrderUseCase) Quote(ctx context.Context, p dto.OrderPayload) (*dto.QuoteResponse, error) {
	state, details, err := uc.builder.Build(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		uc.logger.Warn("quote rejected", zap.Int("detailCount", len(details)))
		return nil, apperrors.NewValidationError("invalid quote request", details...)
	}

	return &dto.QuoteResponse{
		ProductType:  state.ProductType,
		Notes:        state.RenderedNotes(),
		Total:        state.Total,
		Breakdown:    uc.builder.Reducer().Breakdown(state),
		CostItems:    costItemDTOs(state),
		TargetDate:   state.TargetDate.Format(dto.DateLayout),
		StockWarning: state.StockWarning,
	}, nil
}

func costItemDTOs(state draft.State) []dto.CostItemDTO {
	out := []dto.CostItemDTO{}
	for i, item := range state.CostItems {
		if item.IsEmpty() {
			continue
		}
		out = append(out, dto.CostItemDTO{
			Index:       i,
			Description: item.Description,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Total:       item.Total,
			Counted:     pricing.CountsTowardTotal(item),
		})
	}
	return out
}
