package spk

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Source string

const (
	SourceServer    Source = "server"
	SourceRecovered Source = "recovered"
	SourceFallback  Source = "fallback"
)

type Number struct {
	Value  string
	Source Source
	// Authoritative is false for locally guessed numbers, which must be
	// re-issued before an order is stored.
	Authoritative bool
}

type Issuer interface {
	Issue(ctx context.Context, prefix string) (Number, error)
}

type Lister interface {
	ListSpks(ctx context.Context) ([]string, error)
}

type Generator struct {
	issuer     Issuer
	lister     Lister
	logger     *zap.Logger
	maxRetries int
	retryDelay time.Duration
	now        func() time.Time
	intN       func(n int) int

	mu     sync.Mutex
	cached []string
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithRandom(intN func(n int) int) Option {
	return func(g *Generator) { g.intN = intN }
}

func NewGenerator(
	issuer Issuer,
	lister Lister,
	logger *zap.Logger,
	maxRetries int,
	retryDelay time.Duration,
	opts ...Option,
) *Generator {
	g := &Generator{
		issuer:     issuer,
		lister:     lister,
		logger:     logger,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the issuer for the next number, retrying maxRetries times.
// When every attempt fails it falls back to a guess from the known numbers.
func (g *Generator) Generate(ctx context.Context) (Number, error) {
	prefix := Prefix(g.now())

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("spk issue failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("maxRetries", g.maxRetries),
				zap.Error(lastErr),
			)
			if err := wait(ctx, g.retryDelay); err != nil {
				return Number{}, err
			}
		}

		n, err := g.issuer.Issue(ctx, prefix)
		if err == nil {
			return n, nil
		}
		lastErr = err
	}

	g.logger.Warn("spk issuer unavailable, using fallback", zap.String("prefix", prefix), zap.Error(lastErr))

	value := Fallback(g.knownNumbers(ctx), prefix, g.intN)
	return Number{Value: value, Source: SourceFallback, Authoritative: false}, nil
}

// Remember replaces the cached list used when the lister is also down.
func (g *Generator) Remember(spks []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cached = append(g.cached[:0:0], spks...)
}

func (g *Generator) knownNumbers(ctx context.Context) []string {
	if g.lister != nil {
		spks, err := g.lister.ListSpks(ctx)
		if err == nil {
			g.Remember(spks)
			return spks
		}
		g.logger.Warn("listing spks failed, using cached list", zap.Error(err))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.cached...)
}

func wait(ctx context.Context, d time.Duration) error {
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
