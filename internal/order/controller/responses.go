package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/infrastructure/logger"
)

type responder struct {
	logger *zap.Logger
}

// trace returns the request's trace id and a logger tagged with it. The
// router middleware normally sets both.
func (c responder) trace(r *http.Request) (string, *zap.Logger) {
	if traceID := logger.TraceID(r.Context()); traceID != "" {
		return traceID, logger.FromContext(r.Context(), c.logger)
	}
	traceID := uuid.New().String()
	return traceID, c.logger.With(zap.String("traceId", traceID))
}

func (c responder) handleUseCaseError(w http.ResponseWriter, traceID string, err error, log *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		log.Warn("validation failed", zap.Int("detailCount", len(ve.Details)))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	if _, ok := apperrors.IsUnavailableError(err); ok {
		log.Warn("dependency unavailable", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusServiceUnavailable, "UNAVAILABLE", err.Error())
		return
	}

	log.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c responder) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c responder) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c responder) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
