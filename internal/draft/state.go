package draft

import (
	"time"

	"printworks/internal/domain"
	"printworks/internal/producttype"
)

// State is the whole order-entry form as a plain value. It is only changed
// through Reducer.Reduce, which also recomputes every derived field.
type State struct {
	CustomerID       int                   `json:"customerId"`
	SpkNumber        string                `json:"spk"`
	SpkAuthoritative bool                  `json:"spkAuthoritative"`
	ProductTypes     producttype.Selection `json:"productTypes"`
	DtfPass          domain.DtfPass        `json:"dtfPass,omitempty"`
	Quantity         string                `json:"quantity"`
	Unit             domain.Unit           `json:"unit"`
	Fabric           *domain.FabricInfo    `json:"fabric,omitempty"`
	PaperGSM         *int                  `json:"paperGsm,omitempty"`
	PaperWidth       *int                  `json:"paperWidth,omitempty"`
	UnitPrice        string                `json:"unitPrice"`
	DiscountType     domain.DiscountType   `json:"discountType"`
	DiscountValue    string                `json:"discountValue"`
	TaxEnabled       bool                  `json:"taxEnabled"`
	TaxPercent       string                `json:"taxPercent"`
	CostItems        domain.CostItems      `json:"costItems"`
	Notes            producttype.Notes     `json:"notes"`
	OrderDate        time.Time             `json:"orderDate"`
	TargetDate       time.Time             `json:"targetDate"`
	Priority         bool                  `json:"priority"`

	ProductType  string `json:"productType"`
	Total        string `json:"total"`
	StockWarning string `json:"stockWarning,omitempty"`
}

// RenderedNotes is the notes text as stored with the order.
func (s State) RenderedNotes() string {
	return s.Notes.String()
}

func (s State) FabricID() *int {
	if s.Fabric == nil {
		return nil
	}
	id := s.Fabric.ID
	return &id
}
