package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"printworks/internal/infrastructure/logger"
	"printworks/internal/inventory"
	ordercontroller "printworks/internal/order/controller"
)

const TraceHeader = "X-Trace-Id"

type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewRouter(
	orders *ordercontroller.OrderController,
	stock *inventory.Controller,
	db Pinger,
	log *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthz(db, log))

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/spk/generate", orders.GenerateSpk)
		r.Get("/spks", orders.ListSpks)
		r.Get("/repeat", orders.RepeatOrders)
		r.Post("/quote", orders.QuoteOrder)
		r.Post("/", orders.SubmitOrder)
		r.Get("/{spk}/worksheet", orders.Worksheet)
	})

	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/fabrics", stock.HandleFabrics)
		r.Get("/paper-stock/gsm", stock.HandlePaperGSM)
		r.Get("/paper-stock/width", stock.HandlePaperWidths)
	})

	return r
}

// requestLogger tags every request with a trace id, shared with handlers
// through the context and echoed in the response headers.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}
			reqLog := log.With(zap.String("traceId", traceID))

			ctx := logger.WithTraceID(r.Context(), traceID)
			ctx = logger.WithContext(ctx, reqLog)

			w.Header().Set(TraceHeader, traceID)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLog.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func healthz(db Pinger, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, body := http.StatusOK, map[string]string{"status": "ok"}
		if err := db.PingContext(ctx); err != nil {
			log.Warn("health check failed", zap.Error(err))
			status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
