package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"printworks/internal/domain"
)

const RoutingKeyOrderCreated = "order.created"

type OrderCreatedEvent struct {
	EventID     string            `json:"eventId"`
	OccurredAt  time.Time         `json:"occurredAt"`
	OrderID     uint              `json:"orderId"`
	PublicID    string            `json:"publicId"`
	Spk         string            `json:"spk"`
	CustomerID  int               `json:"customerId"`
	ProductType string            `json:"productType"`
	Quantity    float64           `json:"quantity"`
	Unit        domain.Unit       `json:"unit"`
	TotalPrice  float64           `json:"totalPrice"`
	Priority    bool              `json:"priority"`
	OrderDate   string            `json:"orderDate"`
	TargetDate  string            `json:"targetDate"`
	CostItems   []domain.CostItem `json:"costItems"`
}

// EventEmitter publishes order lifecycle events. A nil publisher turns it
// into a no-op. Publish failures are logged and never returned.
type EventEmitter struct {
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewEventEmitter(publisher EventPublisher, logger *zap.Logger) *EventEmitter {
	return &EventEmitter{publisher: publisher, logger: logger, now: time.Now}
}

func (e *EventEmitter) OrderCreated(ctx context.Context, order domain.Order, items domain.CostItems) {
	if e == nil || e.publisher == nil {
		return
	}

	event := OrderCreatedEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  e.now().UTC(),
		OrderID:     order.ID,
		PublicID:    order.PublicID,
		Spk:         order.SpkNumber,
		CustomerID:  order.CustomerID,
		ProductType: order.ProductType,
		Quantity:    order.Quantity,
		Unit:        order.Unit,
		TotalPrice:  order.TotalPrice,
		Priority:    order.Priority,
		OrderDate:   order.OrderDate.Format("2006-01-02"),
		TargetDate:  order.TargetDate.Format("2006-01-02"),
		CostItems:   append([]domain.CostItem{}, items.Filled()...),
	}

	body, err := json.Marshal(event)
	if err != nil {
		e.logger.Error("failed to encode order event", zap.String("spk", order.SpkNumber), zap.Error(err))
		return
	}

	if err := e.publisher.Publish(ctx, RoutingKeyOrderCreated, body); err != nil {
		e.logger.Warn("failed to publish order event", zap.String("spk", order.SpkNumber), zap.Error(err))
		return
	}

	e.logger.Debug("order event published", zap.String("eventId", event.EventID), zap.String("spk", order.SpkNumber))
}
