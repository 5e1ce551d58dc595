package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	apperrors "printworks/internal/errors"
	"printworks/internal/infrastructure/mysql"
	"printworks/internal/spk"
)

// retryBackoffStep is the base wait added per failed attempt: 0, 100ms,
// 200ms and so on, each with ±20% jitter.
const retryBackoffStep = 100 * time.Millisecond

type retrier struct {
	maxAttempts int
	logger      *zap.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

func newRetrier(maxAttempts int, logger *zap.Logger) retrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return retrier{maxAttempts: maxAttempts, logger: logger, sleep: sleepContext}
}

// do runs fn until it succeeds, fails with an error that a fresh transaction
// cannot fix, or maxAttempts is used up.
func (r retrier) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		if attempt < r.maxAttempts {
			r.logger.Warn("transaction conflict, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", r.maxAttempts),
				zap.Error(err),
			)
			if err := r.sleep(ctx, backoff(attempt)); err != nil {
				return err
			}
		}
	}

	return apperrors.NewUnavailableError(op+": max retries exceeded", lastErr)
}

func isRetryable(err error) bool {
	return mysql.IsDeadlock(err) || mysql.IsDuplicateEntry(err)
}

func backoff(attempt int) time.Duration {
	base := time.Duration(attempt-1) * retryBackoffStep
	if base == 0 {
		return 0
	}
	jitter := time.Duration(float64(base) * (rand.Float64()*0.4 - 0.2))
	return base + jitter
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type Issuer interface {
	Issue(ctx context.Context, prefix string) (spk.Number, error)
}

// RetryingIssuer retries an issuer on lock conflicts before the generator
// counts the attempt as failed.
type RetryingIssuer struct {
	issuer Issuer
	retry  retrier
}

func NewRetryingIssuer(issuer Issuer, logger *zap.Logger, maxAttempts int) *RetryingIssuer {
	return &RetryingIssuer{issuer: issuer, retry: newRetrier(maxAttempts, logger)}
}

func (i *RetryingIssuer) Issue(ctx context.Context, prefix string) (spk.Number, error) {
	var n spk.Number
	err := i.retry.do(ctx, "issue spk", func() error {
		var err error
		n, err = i.issuer.Issue(ctx, prefix)
		return err
	})
	return n, err
}
