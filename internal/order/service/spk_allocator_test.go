package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "printworks/internal/errors"
	"printworks/internal/spk"
)

func newTestAllocator(txMgr TransactionManager, seqRepo SpkSequenceRepository, orderRepo OrderRepository) *SpkAllocator {
	return NewSpkAllocator(txMgr, seqRepo, orderRepo, zap.NewNop(), 5*time.Second)
}

func TestAllocateTx_AdvancesExistingSequence(t *testing.T) {
	var updated int
	seqRepo := &mockSpkSequenceRepository{
		FindForUpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			assert.Equal(t, "0125", prefix)
			return 41, nil
		},
		InsertFunc: func(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error {
			return errors.New("should not be called")
		},
		UpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error {
			updated = lastSequence
			return nil
		},
	}
	orderRepo := &mockOrderRepository{ExistsBySpkFunc: noTakenSpks}

	a := newTestAllocator(nil, seqRepo, orderRepo)
	n, err := a.AllocateTx(context.Background(), nil, "0125")

	require.NoError(t, err)
	assert.Equal(t, spk.Number{Value: "0125042", Source: spk.SourceServer, Authoritative: true}, n)
	assert.Equal(t, 42, updated)
}

func TestAllocateTx_RecoversMissingSequence(t *testing.T) {
	var inserted int
	seqRepo := &mockSpkSequenceRepository{
		FindForUpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			return 0, apperrors.NewNotFoundError("no sequence")
		},
		InsertFunc: func(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error {
			inserted = lastSequence
			return nil
		},
	}
	orderRepo := &mockOrderRepository{
		ExistsBySpkFunc: noTakenSpks,
		MaxSequenceFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			return 7, nil
		},
	}

	a := newTestAllocator(nil, seqRepo, orderRepo)
	n, err := a.AllocateTx(context.Background(), nil, "0125")

	require.NoError(t, err)
	assert.Equal(t, "0125008", n.Value)
	assert.Equal(t, spk.SourceRecovered, n.Source)
	assert.True(t, n.Authoritative)
	assert.Equal(t, 8, inserted)
}

func TestAllocateTx_SkipsTakenNumbers(t *testing.T) {
	seqRepo := &mockSpkSequenceRepository{
		FindForUpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			return 1, nil
		},
		UpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error {
			assert.Equal(t, 4, lastSequence)
			return nil
		},
	}
	orderRepo := &mockOrderRepository{
		ExistsBySpkFunc: func(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error) {
			return spkNumber == "0125002" || spkNumber == "0125003", nil
		},
	}

	a := newTestAllocator(nil, seqRepo, orderRepo)
	n, err := a.AllocateTx(context.Background(), nil, "0125")

	require.NoError(t, err)
	assert.Equal(t, "0125004", n.Value)
}

func TestAllocateTx_GivesUpAfterTooManyTakenNumbers(t *testing.T) {
	seqRepo := &mockSpkSequenceRepository{
		FindForUpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			return 0, nil
		},
	}
	orderRepo := &mockOrderRepository{
		ExistsBySpkFunc: func(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error) {
			return true, nil
		},
	}

	a := newTestAllocator(nil, seqRepo, orderRepo)
	_, err := a.AllocateTx(context.Background(), nil, "0125")

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
}

func TestAllocateTx_LockError(t *testing.T) {
	lockErr := errors.New("lock wait timeout")
	seqRepo := &mockSpkSequenceRepository{
		FindForUpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			return 0, lockErr
		},
	}

	a := newTestAllocator(nil, seqRepo, &mockOrderRepository{})
	_, err := a.AllocateTx(context.Background(), nil, "0125")

	assert.ErrorIs(t, err, lockErr)
}

func TestIssue_BeginTxError(t *testing.T) {
	beginErr := errors.New("connection refused")
	txMgr := &mockTransactionManager{
		BeginTxFunc: func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
			assert.Equal(t, sql.LevelRepeatableRead, opts.Isolation)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil, beginErr
		},
	}

	a := newTestAllocator(txMgr, &mockSpkSequenceRepository{}, &mockOrderRepository{})
	_, err := a.Issue(context.Background(), "0125")

	assert.ErrorIs(t, err, beginErr)
}

func TestIssuedTx(t *testing.T) {
	seqRepo := &mockSpkSequenceRepository{
		FindForUpdateFunc: func(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
			switch prefix {
			case "0125":
				return 7, nil
			case "0225":
				return 0, apperrors.NewNotFoundError("no sequence")
			}
			return 0, errors.New("lock wait timeout")
		},
	}
	a := newTestAllocator(nil, seqRepo, &mockOrderRepository{})

	tests := []struct {
		name    string
		number  string
		want    bool
		wantErr bool
	}{
		{name: "issued", number: "0125007", want: true},
		{name: "earlier sequence", number: "0125001", want: true},
		{name: "beyond last issued", number: "0125900", want: false},
		{name: "prefix never used", number: "0225001", want: false},
		{name: "zero sequence", number: "0125000", want: false},
		{name: "malformed", number: "01A5001", want: false},
		{name: "empty", number: "", want: false},
		{name: "lookup failure", number: "0325001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.IssuedTx(context.Background(), nil, tt.number)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
