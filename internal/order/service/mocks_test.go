package service

import (
	"context"
	"database/sql"

	"printworks/internal/domain"
)

type mockTransactionManager struct {
	BeginTxFunc func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

func (m *mockTransactionManager) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return m.BeginTxFunc(ctx, opts)
}

type mockOrderRepository struct {
	InsertFunc      func(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	ExistsBySpkFunc func(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error)
	MaxSequenceFunc func(ctx context.Context, tx *sql.Tx, prefix string) (int, error)
}

func (m *mockOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	return m.InsertFunc(ctx, tx, order)
}

func (m *mockOrderRepository) ExistsBySpk(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error) {
	return m.ExistsBySpkFunc(ctx, tx, spkNumber)
}

func (m *mockOrderRepository) MaxSequence(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
	return m.MaxSequenceFunc(ctx, tx, prefix)
}

type mockSpkSequenceRepository struct {
	FindForUpdateFunc func(ctx context.Context, tx *sql.Tx, prefix string) (int, error)
	InsertFunc        func(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error
	UpdateFunc        func(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error
}

func (m *mockSpkSequenceRepository) FindForUpdate(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
	return m.FindForUpdateFunc(ctx, tx, prefix)
}

func (m *mockSpkSequenceRepository) Insert(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error {
	return m.InsertFunc(ctx, tx, prefix, lastSequence)
}

func (m *mockSpkSequenceRepository) Update(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error {
	return m.UpdateFunc(ctx, tx, prefix, lastSequence)
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, routingKey string, body []byte) error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	return m.PublishFunc(ctx, routingKey, body)
}

// noTakenSpks reports every number as free.
func noTakenSpks(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error) {
	return false, nil
}
