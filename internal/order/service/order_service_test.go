package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"printworks/internal/domain"
	apperrors "printworks/internal/errors"
	"printworks/internal/order/repository"
	"printworks/internal/testutil"
)

func testOrder() domain.Order {
	orderDate := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	return domain.Order{
		SpkNumber:    "0125001",
		CustomerID:   1,
		ProductType:  "PRINT ONLY",
		Quantity:     10,
		Unit:         domain.UnitMeter,
		UnitPrice:    100,
		DiscountType: domain.DiscountNone,
		TotalPrice:   1000,
		Notes:        "[PRINT ONLY] navy",
		OrderDate:    orderDate,
		TargetDate:   orderDate.AddDate(0, 0, 3),
	}
}

func TestCreateOrder_BeginTxError(t *testing.T) {
	beginErr := errors.New("too many connections")
	txMgr := &mockTransactionManager{
		BeginTxFunc: func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
			return nil, beginErr
		},
	}

	svc := NewOrderService(txMgr, &mockOrderRepository{}, nil, nil, nil, zap.NewNop(), 5*time.Second)
	result, err := svc.CreateOrder(context.Background(), testOrder(), domain.CostItems{}, true)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, beginErr)
}

// Integration Tests

func newIntegrationService(t *testing.T, db *sql.DB, publisher EventPublisher) *OrderService {
	t.Helper()
	orderRepo := repository.NewMySQLOrderRepository(db)
	allocator := NewSpkAllocator(db, repository.NewMySQLSpkSequenceRepository(db), orderRepo, zap.NewNop(), 5*time.Second)
	svc := NewOrderService(
		db,
		orderRepo,
		repository.NewMySQLCostItemRepository(db),
		allocator,
		NewEventEmitter(publisher, zap.NewNop()),
		zap.NewNop(),
		5*time.Second,
	)
	svc.now = func() time.Time { return time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateOrder_KeepsFreeAuthoritativeSpk(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	var published []byte
	publisher := &mockPublisher{
		PublishFunc: func(ctx context.Context, routingKey string, body []byte) error {
			assert.Equal(t, RoutingKeyOrderCreated, routingKey)
			published = body
			return nil
		},
	}
	svc := newIntegrationService(t, db, publisher)

	issued, err := svc.allocator.Issue(context.Background(), "0125")
	require.NoError(t, err)
	require.Equal(t, "0125001", issued.Value)

	var items domain.CostItems
	items[2] = domain.CostItem{Description: "Hem", Price: "500", Quantity: "2", Total: "1000"}

	result, err := svc.CreateOrder(context.Background(), testOrder(), items, true)
	require.NoError(t, err)
	assert.Equal(t, "0125001", result.SpkNumber)
	assert.False(t, result.SpkReissued)
	assert.NotEmpty(t, result.PublicID)

	stored, err := repository.NewMySQLCostItemRepository(db).FindByOrderID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, items, stored)

	var event OrderCreatedEvent
	require.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, "0125001", event.Spk)
	assert.Len(t, event.CostItems, 1)
}

func TestCreateOrder_ReissuesFallbackAndTakenSpk(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	svc := newIntegrationService(t, db, nil)

	_, err := svc.allocator.Issue(context.Background(), "0125")
	require.NoError(t, err)

	first, err := svc.CreateOrder(context.Background(), testOrder(), domain.CostItems{}, true)
	require.NoError(t, err)
	assert.False(t, first.SpkReissued)

	second, err := svc.CreateOrder(context.Background(), testOrder(), domain.CostItems{}, true)
	require.NoError(t, err)
	assert.True(t, second.SpkReissued)
	assert.Equal(t, "0125002", second.SpkNumber)

	fallback := testOrder()
	fallback.SpkNumber = "0125555"
	third, err := svc.CreateOrder(context.Background(), fallback, domain.CostItems{}, false)
	require.NoError(t, err)
	assert.True(t, third.SpkReissued)
	assert.Equal(t, "0125003", third.SpkNumber)
}

func TestCreateOrder_ReissuesNumberNeverIssued(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	svc := newIntegrationService(t, db, nil)

	issued, err := svc.allocator.Issue(context.Background(), "0125")
	require.NoError(t, err)
	require.Equal(t, "0125001", issued.Value)

	forged := testOrder()
	forged.SpkNumber = "0125900"
	result, err := svc.CreateOrder(context.Background(), forged, domain.CostItems{}, true)
	require.NoError(t, err)
	assert.True(t, result.SpkReissued)
	assert.Equal(t, "0125002", result.SpkNumber)

	unknownPrefix := testOrder()
	unknownPrefix.SpkNumber = "1224005"
	result, err = svc.CreateOrder(context.Background(), unknownPrefix, domain.CostItems{}, true)
	require.NoError(t, err)
	assert.True(t, result.SpkReissued)
	assert.Equal(t, "0125003", result.SpkNumber)

	_, err = repository.NewMySQLOrderRepository(db).FindBySpk(context.Background(), "0125900")
	_, notFound := apperrors.IsNotFoundError(err)
	assert.True(t, notFound)
}
