package dto

import (
	"time"

	"printworks/internal/domain"
	apperrors "printworks/internal/errors"
	"printworks/internal/pricing"
)

type SubmitOrderResponse struct {
	TraceID      string    `json:"traceId"`
	ID           uint      `json:"id"`
	PublicID     string    `json:"publicId"`
	Spk          string    `json:"spk"`
	SpkReissued  bool      `json:"spkReissued"`
	ProductType  string    `json:"productType"`
	Total        string    `json:"total"`
	Notes        string    `json:"notes"`
	TargetDate   string    `json:"targetDate"`
	StockWarning string    `json:"stockWarning,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type QuoteResponse struct {
	TraceID      string            `json:"traceId"`
	ProductType  string            `json:"productType"`
	Notes        string            `json:"notes"`
	Total        string            `json:"total"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	CostItems    []CostItemDTO     `json:"costItems"`
	TargetDate   string            `json:"targetDate"`
	StockWarning string            `json:"stockWarning,omitempty"`
}

type CostItemDTO struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Total       string `json:"total"`
	Counted     bool   `json:"counted"`
}

// SpkResponse.Authoritative is echoed back as spkAuthoritative on submit.
// The server still checks the number against its sequence table.
type SpkResponse struct {
	Spk           string `json:"spk"`
	Authoritative bool   `json:"authoritative"`
	Fallback      bool   `json:"fallback,omitempty"`
	Recovered     bool   `json:"recovered,omitempty"`
}

type RepeatOrdersResponse struct {
	Orders []domain.RepeatOrder `json:"orders"`
}

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Message   string                       `json:"message"`
	Code      string                       `json:"code"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}
