package inventory

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// inventoryUseCase feeds the form dropdowns. Lookup failures are logged and
// answered with empty lists so the form stays usable.
type inventoryUseCase struct {
	service Service
	logger  *zap.Logger
}

func NewUseCase(service Service, logger *zap.Logger) UseCase {
	return &inventoryUseCase{service: service, logger: logger}
}

func (uc *inventoryUseCase) Fabrics(ctx context.Context, customerID int) FabricsResponse {
	found, err := uc.service.GetFabrics(ctx, customerID)
	if err != nil {
		uc.logger.Warn("fabric lookup failed", zap.Int("customerId", customerID), zap.Error(err))
	}

	fabrics := make([]FabricDTO, 0, len(found))
	for _, f := range found {
		fabrics = append(fabrics, FabricDTO{
			ID:              f.ID,
			Name:            f.Name,
			Composition:     f.Composition,
			Width:           f.Width,
			AvailableLength: f.Available(),
			Label:           fmt.Sprintf("%s - %s (%s m)", f.Name, f.Composition, strconv.FormatFloat(f.Available(), 'f', -1, 64)),
		})
	}

	return FabricsResponse{Fabrics: fabrics}
}

func (uc *inventoryUseCase) PaperGSMs(ctx context.Context) []int {
	gsms, err := uc.service.GetPaperGSMs(ctx)
	if err != nil {
		uc.logger.Warn("paper gsm lookup failed", zap.Error(err))
	}
	return nonNil(gsms)
}

func (uc *inventoryUseCase) PaperWidths(ctx context.Context, gsm int) []int {
	widths, err := uc.service.GetPaperWidths(ctx, gsm)
	if err != nil {
		uc.logger.Warn("paper width lookup failed", zap.Int("gsm", gsm), zap.Error(err))
	}
	return nonNil(widths)
}

func nonNil(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}
