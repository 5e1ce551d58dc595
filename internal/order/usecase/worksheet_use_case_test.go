package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printworks/internal/domain"
	apperrors "printworks/internal/errors"
)

func TestWorksheetRender(t *testing.T) {
	fabricID := 2
	orderRepo := &mockOrderRepository{
		FindBySpkFunc: func(ctx context.Context, spkNumber string) (*domain.Order, error) {
			return &domain.Order{
				ID:         5,
				SpkNumber:  spkNumber,
				CustomerID: 4,
				FabricID:   &fabricID,
				Unit:       domain.UnitMeter,
				OrderDate:  time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	costItemRepo := &mockCostItemRepository{
		FindByOrderIDFunc: func(ctx context.Context, orderID uint) (domain.CostItems, error) {
			assert.Equal(t, uint(5), orderID)
			return domain.CostItems{}, nil
		},
	}
	fabricRepo := &mockFabricRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.FabricInfo, error) {
			return nil, errors.New("fabric table unavailable")
		},
	}

	uc := NewWorksheetUseCase(orderRepo, costItemRepo, &mockCustomerRepository{FindByIDFunc: activeCustomer}, fabricRepo, nopLogger())

	data, err := uc.Render(context.Background(), "0125001")
	require.NoError(t, err)
	// xlsx files are zip archives
	assert.Equal(t, []byte("PK"), data[:2])
}

func TestWorksheetRender_OrderNotFound(t *testing.T) {
	orderRepo := &mockOrderRepository{
		FindBySpkFunc: func(ctx context.Context, spkNumber string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}

	uc := NewWorksheetUseCase(orderRepo, &mockCostItemRepository{}, &mockCustomerRepository{}, &mockFabricRepository{}, nopLogger())

	_, err := uc.Render(context.Background(), "0125999")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
