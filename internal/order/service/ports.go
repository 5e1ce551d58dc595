package service

import (
	"context"
	"database/sql"

	"printworks/internal/domain"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	ExistsBySpk(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error)
	MaxSequence(ctx context.Context, tx *sql.Tx, prefix string) (int, error)
}

type CostItemRepository interface {
	InsertAll(ctx context.Context, tx *sql.Tx, orderID uint, items domain.CostItems) error
}

type SpkSequenceRepository interface {
	FindForUpdate(ctx context.Context, tx *sql.Tx, prefix string) (int, error)
	Insert(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error
	Update(ctx context.Context, tx *sql.Tx, prefix string, lastSequence int) error
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
