package order

import (
	"database/sql"

	"go.uber.org/zap"

	"printworks/internal/config"
	customerrepo "printworks/internal/customer/repository"
	"printworks/internal/draft"
	"printworks/internal/order/controller"
	orderrepo "printworks/internal/order/repository"
	"printworks/internal/order/service"
	"printworks/internal/order/usecase"
	"printworks/internal/spk"
)

// NewModule wires the order feature. publisher may be nil, in which case no
// events are sent.
func NewModule(
	db *sql.DB,
	cfg *config.Config,
	fabrics usecase.FabricRepository,
	publisher service.EventPublisher,
	logger *zap.Logger,
) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	costItemRepo := orderrepo.NewMySQLCostItemRepository(db)
	sequenceRepo := orderrepo.NewMySQLSpkSequenceRepository(db)
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)

	allocator := service.NewSpkAllocator(db, sequenceRepo, orderRepo, logger, cfg.Order.TxTimeout)
	orderSvc := service.NewOrderService(
		db,
		orderRepo,
		costItemRepo,
		allocator,
		service.NewEventEmitter(publisher, logger),
		logger,
		cfg.Order.TxTimeout,
	)

	generator := spk.NewGenerator(
		usecase.NewRetryingIssuer(allocator, logger, cfg.Order.MaxRetryAttempts),
		orderRepo,
		logger,
		cfg.Spk.MaxRetries,
		cfg.Spk.RetryDelay,
	)

	builder := usecase.NewDraftBuilder(
		draft.NewReducer(cfg.Order.TaxPercent, cfg.Order.DefaultLeadDays),
		fabrics,
		orderRepo,
	)

	return controller.NewOrderController(
		usecase.NewSubmitOrderUseCase(builder, customerRepo, orderSvc, logger, cfg.Order.MaxRetryAttempts),
		usecase.NewQuoteOrderUseCase(builder, logger),
		usecase.NewSpkUseCase(generator, orderRepo, logger),
		usecase.NewRepeatOrdersUseCase(orderRepo, logger),
		usecase.NewWorksheetUseCase(orderRepo, costItemRepo, customerRepo, fabrics, logger),
		logger,
	)
}
