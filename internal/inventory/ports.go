package inventory

import (
	"context"

	"printworks/internal/domain"
)

type UseCase interface {
	Fabrics(ctx context.Context, customerID int) FabricsResponse
	PaperGSMs(ctx context.Context) []int
	PaperWidths(ctx context.Context, gsm int) []int
}

type Service interface {
	GetFabrics(ctx context.Context, customerID int) ([]domain.FabricInfo, error)
	GetPaperGSMs(ctx context.Context) ([]int, error)
	GetPaperWidths(ctx context.Context, gsm int) ([]int, error)
}

type Repository interface {
	FindFabricsByCustomer(ctx context.Context, customerID int) ([]domain.FabricInfo, error)
	ListPaperGSM(ctx context.Context) ([]int, error)
	ListPaperWidths(ctx context.Context, gsm int) ([]int, error)
}
