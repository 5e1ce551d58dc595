package usecase

import (
	"context"

	"printworks/internal/domain"
	"printworks/internal/order/service"
	"printworks/internal/spk"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
}

type FabricRepository interface {
	FindByID(ctx context.Context, id int) (*domain.FabricInfo, error)
}

type OrderRepository interface {
	FindBySpk(ctx context.Context, spkNumber string) (*domain.Order, error)
	FindRepeatOrder(ctx context.Context, spkNumber string) (*domain.RepeatOrder, error)
	ListRepeatOrders(ctx context.Context, customerID int, limit int) ([]domain.RepeatOrder, error)
	ListSpks(ctx context.Context) ([]string, error)
}

type CostItemRepository interface {
	FindByOrderID(ctx context.Context, orderID uint) (domain.CostItems, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error)
}

type SpkGenerator interface {
	Generate(ctx context.Context) (spk.Number, error)
	Remember(spks []string)
}
