package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"printworks/internal/errors"
	"printworks/internal/spk"
)

// maxSequenceSkips bounds how far AllocateTx walks past numbers that were
// stored without going through the sequence table.
const maxSequenceSkips = 50

type SpkAllocator struct {
	db        TransactionManager
	seqRepo   SpkSequenceRepository
	orderRepo OrderRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewSpkAllocator(
	db TransactionManager,
	seqRepo SpkSequenceRepository,
	orderRepo OrderRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *SpkAllocator {
	return &SpkAllocator{
		db:        db,
		seqRepo:   seqRepo,
		orderRepo: orderRepo,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// Issue reserves the next number for prefix in its own transaction.
func (a *SpkAllocator) Issue(ctx context.Context, prefix string) (spk.Number, error) {
	txCtx, cancel := context.WithTimeout(ctx, a.txTimeout)
	defer cancel()

	tx, err := a.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		a.logger.Error("failed to begin transaction", zap.Error(err))
		return spk.Number{}, err
	}
	defer tx.Rollback()

	n, err := a.AllocateTx(txCtx, tx, prefix)
	if err != nil {
		return spk.Number{}, err
	}

	if err := tx.Commit(); err != nil {
		a.logger.Error("failed to commit spk allocation", zap.String("prefix", prefix), zap.Error(err))
		return spk.Number{}, err
	}

	a.logger.Info("spk issued", zap.String("spk", n.Value), zap.String("source", string(n.Source)))
	return n, nil
}

// AllocateTx reserves the next number for prefix inside tx. The sequence
// row stays locked until tx ends. A missing row is rebuilt from the highest
// order number already stored for the prefix.
func (a *SpkAllocator) AllocateTx(ctx context.Context, tx *sql.Tx, prefix string) (spk.Number, error) {
	source := spk.SourceServer
	exists := true

	last, err := a.seqRepo.FindForUpdate(ctx, tx, prefix)
	if _, ok := errors.IsNotFoundError(err); ok {
		exists = false
		source = spk.SourceRecovered
		last, err = a.orderRepo.MaxSequence(ctx, tx, prefix)
		if err != nil {
			return spk.Number{}, err
		}
		a.logger.Warn("spk sequence missing, recovered from orders", zap.String("prefix", prefix), zap.Int("lastSequence", last))
	} else if err != nil {
		return spk.Number{}, err
	}

	next := last + 1
	value := spk.Format(prefix, next)
	for skips := 0; ; skips++ {
		taken, err := a.orderRepo.ExistsBySpk(ctx, tx, value)
		if err != nil {
			return spk.Number{}, err
		}
		if !taken {
			break
		}
		if skips == maxSequenceSkips {
			return spk.Number{}, errors.NewConflictError(fmt.Sprintf("no free spk after %s", value))
		}
		next++
		value = spk.Format(prefix, next)
	}

	if exists {
		err = a.seqRepo.Update(ctx, tx, prefix, next)
	} else {
		err = a.seqRepo.Insert(ctx, tx, prefix, next)
	}
	if err != nil {
		return spk.Number{}, err
	}

	return spk.Number{Value: value, Source: source, Authoritative: true}, nil
}

// IssuedTx reports whether number was handed out by the sequence table: its
// prefix has a row and the sequence does not exceed the last one issued.
// The row stays locked until tx ends.
func (a *SpkAllocator) IssuedTx(ctx context.Context, tx *sql.Tx, number string) (bool, error) {
	if !spk.IsValid(number) {
		return false, nil
	}
	prefix := number[:4]
	seq, ok := spk.ParseSequence(number, prefix)
	if !ok {
		return false, nil
	}

	last, err := a.seqRepo.FindForUpdate(ctx, tx, prefix)
	if _, notFound := errors.IsNotFoundError(err); notFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return seq > 0 && seq <= last, nil
}
