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

func TestRepeatOrdersList(t *testing.T) {
	orderRepo := &mockOrderRepository{
		ListRepeatOrdersFunc: func(ctx context.Context, customerID int, limit int) ([]domain.RepeatOrder, error) {
			assert.Equal(t, 4, customerID)
			assert.Equal(t, RepeatOrderLimit, limit)
			return []domain.RepeatOrder{{SpkNumber: "1224010", OrderDate: time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)}}, nil
		},
	}
	uc := NewRepeatOrdersUseCase(orderRepo, nopLogger())

	orders, err := uc.List(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1224010", orders[0].SpkNumber)
}

func TestRepeatOrdersList_InvalidCustomer(t *testing.T) {
	uc := NewRepeatOrdersUseCase(&mockOrderRepository{}, nopLogger())

	_, err := uc.List(context.Background(), 0)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestRepeatOrdersList_DegradesToEmpty(t *testing.T) {
	orderRepo := &mockOrderRepository{
		ListRepeatOrdersFunc: func(ctx context.Context, customerID int, limit int) ([]domain.RepeatOrder, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewRepeatOrdersUseCase(orderRepo, nopLogger())

	orders, err := uc.List(context.Background(), 4)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
