package usecase

import (
	"context"

	"go.uber.org/zap"

	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/spk"
)

type SpkUseCase struct {
	generator SpkGenerator
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewSpkUseCase(generator SpkGenerator, orderRepo OrderRepository, logger *zap.Logger) *SpkUseCase {
	return &SpkUseCase{generator: generator, orderRepo: orderRepo, logger: logger}
}

func (uc *SpkUseCase) Generate(ctx context.Context) (*dto.SpkResponse, error) {
	n, err := uc.generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("spk generated", zap.String("spk", n.Value), zap.String("source", string(n.Source)))
	return &dto.SpkResponse{
		Spk:           n.Value,
		Authoritative: n.Authoritative,
		Fallback:      n.Source == spk.SourceFallback,
		Recovered:     n.Source == spk.SourceRecovered,
	}, nil
}

// ListSpks also refreshes the generator's cache used when the database is
// unreachable.
func (uc *SpkUseCase) ListSpks(ctx context.Context) ([]string, error) {
	spks, err := uc.orderRepo.ListSpks(ctx)
	if err != nil {
		uc.logger.Error("failed to list spks", zap.Error(err))
		return nil, apperrors.NewUnavailableError("spk list unavailable", err)
	}

	uc.generator.Remember(spks)
	return spks, nil
}
