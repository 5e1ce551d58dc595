package inventory

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	apperrors "printworks/internal/errors"
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleFabrics(w http.ResponseWriter, r *http.Request) {
	customerID, ok := c.positiveQueryInt(w, r, "customerId")
	if !ok {
		return
	}

	c.writeJSON(w, http.StatusOK, c.useCase.Fabrics(r.Context(), customerID))
}

func (c *Controller) HandlePaperGSM(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, c.useCase.PaperGSMs(r.Context()))
}

func (c *Controller) HandlePaperWidths(w http.ResponseWriter, r *http.Request) {
	gsm, ok := c.positiveQueryInt(w, r, "gsm")
	if !ok {
		return
	}

	c.writeJSON(w, http.StatusOK, c.useCase.PaperWidths(r.Context(), gsm))
}

func (c *Controller) positiveQueryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		msg := name + " must be a positive integer"
		if raw == "" {
			msg = name + " is required"
		}
		c.writeValidationError(w, msg, apperrors.ValidationDetail{
			Field:   name,
			Message: msg,
		})
		return 0, false
	}
	return v, true
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
