package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"printworks/internal/config"
	"printworks/internal/infrastructure/logger"
	"printworks/internal/infrastructure/mysql"
	"printworks/internal/infrastructure/rabbitmq"
	"printworks/internal/inventory"
	"printworks/internal/order"
	"printworks/internal/order/service"
	"printworks/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, "printworks")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	var publisher service.EventPublisher
	if cfg.AMQP.URL != "" {
		p, err := rabbitmq.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			zapLogger.Fatal("connecting to rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
		zapLogger.Info("rabbitmq connected", zap.String("exchange", cfg.AMQP.Exchange))
	} else {
		zapLogger.Info("AMQP_URL not set, order events disabled")
	}

	inventoryModule := inventory.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg, inventoryModule.Fabrics, publisher, zapLogger)

	router := server.NewRouter(orderCtrl, inventoryModule.Controller, db, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	if err := srv.Shutdown(context.Background()); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
