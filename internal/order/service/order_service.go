package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"printworks/internal/domain"
	"printworks/internal/spk"
)

type CreateOrderResult struct {
	ID          uint
	PublicID    string
	SpkNumber   string
	SpkReissued bool
}

type OrderService struct {
	db           TransactionManager
	orderRepo    OrderRepository
	costItemRepo CostItemRepository
	allocator    *SpkAllocator
	events       *EventEmitter
	logger       *zap.Logger
	txTimeout    time.Duration
	now          func() time.Time
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	costItemRepo CostItemRepository,
	allocator *SpkAllocator,
	events *EventEmitter,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderService {
	return &OrderService{
		db:           db,
		orderRepo:    orderRepo,
		costItemRepo: costItemRepo,
		allocator:    allocator,
		events:       events,
		logger:       logger,
		txTimeout:    txTimeout,
		now:          time.Now,
	}
}

// CreateOrder stores the order with its cost items in one transaction. The
// submitted SPK is kept only when it was issued by the server and is still
// free; otherwise a new one is allocated in the same transaction.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	order domain.Order,
	items domain.CostItems,
	spkAuthoritative bool,
) (*CreateOrderResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	reissued, err := s.resolveSpk(txCtx, tx, &order, spkAuthoritative)
	if err != nil {
		s.logger.Error("failed to resolve spk", zap.String("spk", order.SpkNumber), zap.Error(err))
		return nil, err
	}

	if order.PublicID == "" {
		order.PublicID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.String("spk", order.SpkNumber), zap.Error(err))
		return nil, err
	}

	if err := s.costItemRepo.InsertAll(txCtx, tx, orderID, items); err != nil {
		s.logger.Error("failed to insert cost items", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	order.ID = orderID
	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.String("spk", order.SpkNumber),
		zap.Bool("spkReissued", reissued),
		zap.Float64("totalPrice", order.TotalPrice),
	)

	s.events.OrderCreated(ctx, order, items)

	return &CreateOrderResult{
		ID:          orderID,
		PublicID:    order.PublicID,
		SpkNumber:   order.SpkNumber,
		SpkReissued: reissued,
	}, nil
}

// resolveSpk keeps the submitted number only when the client marks it as
// issued, the sequence table confirms it and no order uses it yet.
func (s *OrderService) resolveSpk(ctx context.Context, tx *sql.Tx, order *domain.Order, authoritative bool) (bool, error) {
	if authoritative {
		keep, err := s.canKeepSpk(ctx, tx, order.SpkNumber)
		if err != nil {
			return false, err
		}
		if keep {
			return false, nil
		}
	}

	n, err := s.allocator.AllocateTx(ctx, tx, spk.Prefix(s.now()))
	if err != nil {
		return false, err
	}

	if order.SpkNumber != "" {
		s.logger.Warn("spk reissued", zap.String("submitted", order.SpkNumber), zap.String("issued", n.Value))
	}
	order.SpkNumber = n.Value
	return true, nil
}

func (s *OrderService) canKeepSpk(ctx context.Context, tx *sql.Tx, number string) (bool, error) {
	issued, err := s.allocator.IssuedTx(ctx, tx, number)
	if err != nil {
		return false, err
	}
	if !issued {
		s.logger.Warn("submitted spk was never issued", zap.String("spk", number))
		return false, nil
	}
	taken, err := s.orderRepo.ExistsBySpk(ctx, tx, number)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
