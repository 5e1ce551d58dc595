package inventory

import (
	"context"

	"printworks/internal/domain"
)

type inventoryService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &inventoryService{repo: repo}
}

// GetFabrics drops rolls that have nothing left to cut.
func (s *inventoryService) GetFabrics(ctx context.Context, customerID int) ([]domain.FabricInfo, error) {
	all, err := s.repo.FindFabricsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	fabrics := make([]domain.FabricInfo, 0, len(all))
	for _, f := range all {
		if f.Available() > 0 {
			fabrics = append(fabrics, f)
		}
	}
	return fabrics, nil
}

func (s *inventoryService) GetPaperGSMs(ctx context.Context) ([]int, error) {
	return s.repo.ListPaperGSM(ctx)
}

func (s *inventoryService) GetPaperWidths(ctx context.Context, gsm int) ([]int, error) {
	return s.repo.ListPaperWidths(ctx, gsm)
}
