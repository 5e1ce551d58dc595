package usecase

import (
	"context"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"printworks/internal/domain"
	"printworks/internal/draft"
	"printworks/internal/order/service"
	"printworks/internal/spk"
)

// createDeadlockError builds the driver error MySQL returns on deadlock.
func createDeadlockError() error {
	return &mysql.MySQLError{Number: 1213}
}

func noSleep(ctx context.Context, d time.Duration) error {
	return nil
}

var testNow = time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)

func newTestDraftBuilder(fabricRepo FabricRepository, orderRepo OrderRepository) *DraftBuilder {
	b := NewDraftBuilder(draft.NewReducer(11, 3), fabricRepo, orderRepo)
	b.now = func() time.Time { return testNow }
	return b
}

type mockCustomerRepository struct {
	FindByIDFunc func(ctx context.Context, id int) (*domain.Customer, error)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	return m.FindByIDFunc(ctx, id)
}

func activeCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	return &domain.Customer{ID: id, Name: "Toko Sinar", IsActive: true}, nil
}

type mockFabricRepository struct {
	FindByIDFunc func(ctx context.Context, id int) (*domain.FabricInfo, error)
}

func (m *mockFabricRepository) FindByID(ctx context.Context, id int) (*domain.FabricInfo, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockOrderRepository struct {
	FindBySpkFunc        func(ctx context.Context, spkNumber string) (*domain.Order, error)
	FindRepeatOrderFunc  func(ctx context.Context, spkNumber string) (*domain.RepeatOrder, error)
	ListRepeatOrdersFunc func(ctx context.Context, customerID int, limit int) ([]domain.RepeatOrder, error)
	ListSpksFunc         func(ctx context.Context) ([]string, error)
}

func (m *mockOrderRepository) FindBySpk(ctx context.Context, spkNumber string) (*domain.Order, error) {
	return m.FindBySpkFunc(ctx, spkNumber)
}

func (m *mockOrderRepository) FindRepeatOrder(ctx context.Context, spkNumber string) (*domain.RepeatOrder, error) {
	return m.FindRepeatOrderFunc(ctx, spkNumber)
}

func (m *mockOrderRepository) ListRepeatOrders(ctx context.Context, customerID int, limit int) ([]domain.RepeatOrder, error) {
	return m.ListRepeatOrdersFunc(ctx, customerID, limit)
}

func (m *mockOrderRepository) ListSpks(ctx context.Context) ([]string, error) {
	return m.ListSpksFunc(ctx)
}

type mockCostItemRepository struct {
	FindByOrderIDFunc func(ctx context.Context, orderID uint) (domain.CostItems, error)
}

func (m *mockCostItemRepository) FindByOrderID(ctx context.Context, orderID uint) (domain.CostItems, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

type mockOrderCreator struct {
	CreateOrderFunc func(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error)
}

func (m *mockOrderCreator) CreateOrder(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error) {
	return m.CreateOrderFunc(ctx, order, items, spkAuthoritative)
}

type mockSpkGenerator struct {
	GenerateFunc func(ctx context.Context) (spk.Number, error)
	remembered   []string
}

func (m *mockSpkGenerator) Generate(ctx context.Context) (spk.Number, error) {
	return m.GenerateFunc(ctx)
}

func (m *mockSpkGenerator) Remember(spks []string) {
	m.remembered = spks
}

type mockIssuer struct {
	IssueFunc func(ctx context.Context, prefix string) (spk.Number, error)
}

func (m *mockIssuer) Issue(ctx context.Context, prefix string) (spk.Number, error) {
	return m.IssueFunc(ctx, prefix)
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
