package usecase

import (
	"context"

	"go.uber.org/zap"

	apperrors "printworks/internal/errors"
	"printworks/internal/worksheet"
)

type WorksheetUseCase struct {
	orderRepo    OrderRepository
	costItemRepo CostItemRepository
	customerRepo CustomerRepository
	fabricRepo   FabricRepository
	logger       *zap.Logger
}

func NewWorksheetUseCase(
	orderRepo OrderRepository,
	costItemRepo CostItemRepository,
	customerRepo CustomerRepository,
	fabricRepo FabricRepository,
	logger *zap.Logger,
) *WorksheetUseCase {
	return &WorksheetUseCase{
		orderRepo:    orderRepo,
		costItemRepo: costItemRepo,
		customerRepo: customerRepo,
		fabricRepo:   fabricRepo,
		logger:       logger,
	}
}

// Render builds the printable SPK sheet for a stored order. Customer and
// fabric names are best effort.
func (uc *WorksheetUseCase) Render(ctx context.Context, spkNumber string) ([]byte, error) {
	order, err := uc.orderRepo.FindBySpk(ctx, spkNumber)
	if err != nil {
		return nil, err
	}

	items, err := uc.costItemRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	sheet := worksheet.Sheet{Order: *order, CostItems: items}

	if customer, err := uc.customerRepo.FindByID(ctx, order.CustomerID); err == nil {
		sheet.CustomerName = customer.Name
	} else {
		uc.logger.Warn("worksheet without customer name", zap.String("spk", spkNumber), zap.Error(err))
	}

	if order.FabricID != nil {
		if fabric, err := uc.fabricRepo.FindByID(ctx, *order.FabricID); err == nil {
			sheet.Fabric = fabric
		} else {
			uc.logger.Warn("worksheet without fabric", zap.String("spk", spkNumber), zap.Error(err))
		}
	}

	data, err := worksheet.Render(sheet)
	if err != nil {
		uc.logger.Error("failed to render worksheet", zap.String("spk", spkNumber), zap.Error(err))
		return nil, apperrors.NewInternalError("worksheet rendering failed", err)
	}
	return data, nil
}
