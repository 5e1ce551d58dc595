package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printworks/internal/domain"
	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/order/service"
)

func newTestSubmitOrderUseCase(customerRepo CustomerRepository, creator OrderCreator) *SubmitOrderUseCase {
	uc := NewSubmitOrderUseCase(newTestDraftBuilder(nil, nil), customerRepo, creator, nopLogger(), 3)
	uc.retry.sleep = noSleep
	return uc
}

func validPayload() dto.OrderPayload {
	p := dto.OrderPayload{
		SpkNumber:        "0125007",
		SpkAuthoritative: true,
		CustomerID:       4,
		ProductTypes:     []string{"PRINT"},
		Quantity:         "10",
		Unit:             "yard",
		UnitPrice:        "1000",
		DiscountType:     "fixed",
		DiscountValue:    "144",
		Notes:            "navy",
		OrderDate:        "2025-01-13",
		Priority:         true,
	}
	p.CostItems[0] = domain.CostItem{Description: "Hem", Price: "500", Quantity: "2", Total: "999999"}
	return p
}

func TestSubmit_Success(t *testing.T) {
	var (
		stored        domain.Order
		storedItems   domain.CostItems
		authoritative bool
	)
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error) {
			stored = order
			storedItems = items
			authoritative = spkAuthoritative
			return &service.CreateOrderResult{ID: 12, PublicID: "pub-12", SpkNumber: order.SpkNumber}, nil
		},
	}

	uc := newTestSubmitOrderUseCase(&mockCustomerRepository{FindByIDFunc: activeCustomer}, creator)
	resp, err := uc.Submit(context.Background(), validPayload())
	require.NoError(t, err)

	// 10 yd = 9.144 m * 1000 + 1000 - 144
	assert.Equal(t, "10000", resp.Total)
	assert.Equal(t, uint(12), resp.ID)
	assert.Equal(t, "0125007", resp.Spk)
	assert.False(t, resp.SpkReissued)
	assert.Equal(t, "PRINT ONLY", resp.ProductType)
	assert.Equal(t, "[PRINT ONLY] navy", resp.Notes)
	assert.Equal(t, "2025-01-16", resp.TargetDate)

	assert.True(t, authoritative)
	assert.Equal(t, 10000.0, stored.TotalPrice)
	assert.Equal(t, 10.0, stored.Quantity)
	assert.Equal(t, domain.UnitYard, stored.Unit)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)
	assert.True(t, stored.Priority)
	assert.Equal(t, "1000", storedItems[0].Total)
	assert.Len(t, stored.CostItems, 1)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error) {
			t.Fatal("CreateOrder should not be called")
			return nil, nil
		},
	}
	customerRepo := &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Customer, error) {
			return nil, apperrors.NewNotFoundError("customer not found")
		},
	}

	uc := newTestSubmitOrderUseCase(customerRepo, creator)

	p := validPayload()
	p.Quantity = "abc"
	p.UnitPrice = ""
	p.ProductTypes = nil

	_, err := uc.Submit(context.Background(), p)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"customerId", "quantity", "unitPrice", "productTypes"}, fieldsOf(ve.Details))
}

func TestSubmit_InactiveCustomer(t *testing.T) {
	customerRepo := &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Customer, error) {
			return &domain.Customer{ID: id, IsActive: false}, nil
		},
	}

	uc := newTestSubmitOrderUseCase(customerRepo, &mockOrderCreator{})
	_, err := uc.Submit(context.Background(), validPayload())

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"customerId"}, fieldsOf(ve.Details))
}

func TestSubmit_CustomerLookupError(t *testing.T) {
	dbErr := errors.New("connection reset")
	customerRepo := &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Customer, error) {
			return nil, dbErr
		},
	}

	uc := newTestSubmitOrderUseCase(customerRepo, &mockOrderCreator{})
	_, err := uc.Submit(context.Background(), validPayload())

	assert.ErrorIs(t, err, dbErr)
}

func TestSubmit_DeadlockRetrySuccess(t *testing.T) {
	calls := 0
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error) {
			calls++
			if calls < 3 {
				return nil, createDeadlockError()
			}
			return &service.CreateOrderResult{ID: 1, SpkNumber: "0125008", SpkReissued: true}, nil
		},
	}

	uc := newTestSubmitOrderUseCase(&mockCustomerRepository{FindByIDFunc: activeCustomer}, creator)
	resp, err := uc.Submit(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, resp.SpkReissued)
	assert.Equal(t, "0125008", resp.Spk)
}

func TestSubmit_MaxRetriesExceeded(t *testing.T) {
	calls := 0
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error) {
			calls++
			return nil, createDeadlockError()
		},
	}

	uc := newTestSubmitOrderUseCase(&mockCustomerRepository{FindByIDFunc: activeCustomer}, creator)
	_, err := uc.Submit(context.Background(), validPayload())

	assert.Equal(t, 3, calls)
	_, ok := apperrors.IsUnavailableError(err)
	assert.True(t, ok)
}

func TestSubmit_OversizedQuantityNeverReachesStore(t *testing.T) {
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, items domain.CostItems, spkAuthoritative bool) (*service.CreateOrderResult, error) {
			t.Fatal("CreateOrder must not be called")
			return nil, nil
		},
	}
	uc := newTestSubmitOrderUseCase(&mockCustomerRepository{FindByIDFunc: activeCustomer}, creator)

	p := validPayload()
	p.Quantity = "1e99999"
	p.CostItems[0].Quantity = "1e40"

	_, err := uc.Submit(context.Background(), p)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"quantity", "costItems[0].quantity", "quantity"}, fieldsOf(ve.Details))
}
