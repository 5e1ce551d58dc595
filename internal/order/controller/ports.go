package controller

import (
	"context"

	"printworks/internal/domain"
	"printworks/internal/dto"
)

type SubmitOrderUseCase interface {
	Submit(ctx context.Context, p dto.OrderPayload) (*dto.SubmitOrderResponse, error)
}

type QuoteOrderUseCase interface {
	Quote(ctx context.Context, p dto.OrderPayload) (*dto.QuoteResponse, error)
}

type SpkUseCase interface {
	Generate(ctx context.Context) (*dto.SpkResponse, error)
	ListSpks(ctx context.Context) ([]string, error)
}

type RepeatOrdersUseCase interface {
	List(ctx context.Context, customerID int) ([]domain.RepeatOrder, error)
}

type WorksheetUseCase interface {
	Render(ctx context.Context, spkNumber string) ([]byte, error)
}
