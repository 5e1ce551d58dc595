package usecase

import (
	"context"

	"go.uber.org/zap"

	"printworks/internal/domain"
	apperrors "printworks/internal/errors"
)

// RepeatOrderLimit caps how many earlier orders the picker shows.
const RepeatOrderLimit = 20

type RepeatOrdersUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewRepeatOrdersUseCase(orderRepo OrderRepository, logger *zap.Logger) *RepeatOrdersUseCase {
	return &RepeatOrdersUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *RepeatOrdersUseCase) List(ctx context.Context, customerID int) ([]domain.RepeatOrder, error) {
	if customerID <= 0 {
		return nil, apperrors.NewValidationError("invalid customer", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId must be a positive integer",
		})
	}

	orders, err := uc.orderRepo.ListRepeatOrders(ctx, customerID, RepeatOrderLimit)
	if err != nil {
		uc.logger.Warn("failed to list repeat orders", zap.Int("customerId", customerID), zap.Error(err))
		return []domain.RepeatOrder{}, nil
	}
	return orders, nil
}
