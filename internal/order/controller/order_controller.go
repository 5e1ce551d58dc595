package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"printworks/internal/dto"
	apperrors "printworks/internal/errors"
	"printworks/internal/spk"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrderController struct {
	responder
	submit    SubmitOrderUseCase
	quote     QuoteOrderUseCase
	spks      SpkUseCase
	repeats   RepeatOrdersUseCase
	worksheet WorksheetUseCase
}

func NewOrderController(
	submit SubmitOrderUseCase,
	quote QuoteOrderUseCase,
	spks SpkUseCase,
	repeats RepeatOrdersUseCase,
	worksheet WorksheetUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		responder: responder{logger: logger},
		submit:    submit,
		quote:     quote,
		spks:      spks,
		repeats:   repeats,
		worksheet: worksheet,
	}
}

func (c *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	traceID, log := c.trace(r)

	payload, ok := c.decodePayload(w, r, log)
	if !ok {
		return
	}

	resp, err := c.submit.Submit(r.Context(), payload)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, log)
		return
	}

	resp.TraceID = traceID
	log.Info("order submitted", zap.String("spk", resp.Spk), zap.Uint("orderId", resp.ID))
	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *OrderController) QuoteOrder(w http.ResponseWriter, r *http.Request) {
	traceID, log := c.trace(r)

	payload, ok := c.decodePayload(w, r, log)
	if !ok {
		return
	}

	resp, err := c.quote.Quote(r.Context(), payload)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, log)
		return
	}

	resp.TraceID = traceID
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) GenerateSpk(w http.ResponseWriter, r *http.Request) {
	traceID, log := c.trace(r)

	resp, err := c.spks.Generate(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err, log)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) ListSpks(w http.ResponseWriter, r *http.Request) {
	traceID, log := c.trace(r)

	spks, err := c.spks.ListSpks(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err, log)
		return
	}

	c.writeJSON(w, http.StatusOK, spks)
}

func (c *OrderController) RepeatOrders(w http.ResponseWriter, r *http.Request) {
	traceID, log := c.trace(r)

	customerID, err := strconv.Atoi(r.URL.Query().Get("customerId"))
	if err != nil {
		log.Warn("invalid customerId in query", zap.Error(err))
		c.writeValidationError(w, "invalid customerId", apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId must be a positive integer",
		})
		return
	}

	orders, err := c.repeats.List(r.Context(), customerID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, log)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.RepeatOrdersResponse{Orders: orders})
}

func (c *OrderController) Worksheet(w http.ResponseWriter, r *http.Request) {
	traceID, log := c.trace(r)

	spkNumber := chi.URLParam(r, "spk")
	if !spk.IsValid(spkNumber) {
		c.writeValidationError(w, "invalid spk", apperrors.ValidationDetail{
			Field:   "spk",
			Message: "spk must be MMYY followed by a sequence number",
		})
		return
	}

	data, err := c.worksheet.Render(r.Context(), spkNumber)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, log)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="SPK-`+spkNumber+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write worksheet", zap.Error(err))
	}
}

func (c *OrderController) decodePayload(w http.ResponseWriter, r *http.Request, log *zap.Logger) (dto.OrderPayload, bool) {
	var payload dto.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return dto.OrderPayload{}, false
	}
	return payload, true
}
