package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"printworks/internal/domain"
)

// Legacy field name prefixes for the six additional cost slots.
const (
	legacyDescription = "tambah_cutting"
	legacyPrice       = "satuan_cutting"
	legacyQuantity    = "qty_cutting"
	legacyTotal       = "total_cutting"
)

// OrderPayload is the body of POST /api/orders and POST /api/orders/quote.
// Cost items travel as flattened legacy fields (tambah_cutting0,
// satuan_cutting0, qty_cutting0, total_cutting0, ...) and are mapped to the
// CostItems array only here.
type OrderPayload struct {
	SpkNumber        string           `json:"spk"`
	SpkAuthoritative bool             `json:"spkAuthoritative"`
	CustomerID       int              `json:"customerId"`
	ProductType      string           `json:"productType"`
	ProductTypes     []string         `json:"productTypes,omitempty"`
	DtfPass          string           `json:"dtfPass,omitempty"`
	Quantity         string           `json:"quantity"`
	Unit             string           `json:"unit"`
	FabricID         *int             `json:"fabricId,omitempty"`
	PaperGSM         *int             `json:"paperGsm,omitempty"`
	PaperWidth       *int             `json:"paperWidth,omitempty"`
	UnitPrice        string           `json:"unitPrice"`
	DiscountType     string           `json:"discountType"`
	DiscountValue    string           `json:"discountValue"`
	TaxEnabled       bool             `json:"taxEnabled"`
	TaxPercent       string           `json:"taxPercent"`
	Notes            string           `json:"notes"`
	RepeatOrderSpk   string           `json:"repeatOrderSpk,omitempty"`
	OrderDate        string           `json:"orderDate"`
	TargetDate       string           `json:"targetDate,omitempty"`
	Priority         bool             `json:"priority"`
	CostItems        domain.CostItems `json:"-"`
}

type orderPayloadFields OrderPayload

func (p OrderPayload) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(orderPayloadFields(p))
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for key, value := range LegacyCostFields(p.CostItems) {
		fields[key] = value
	}

	return json.Marshal(fields)
}

func (p *OrderPayload) UnmarshalJSON(data []byte) error {
	var fields orderPayloadFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	legacy := make(map[string]string)
	for key, value := range raw {
		s, err := rawScalar(value)
		if err != nil {
			continue
		}
		legacy[key] = s
	}

	*p = OrderPayload(fields)
	p.CostItems = CostItemsFromLegacy(legacy)
	return nil
}

// rawScalar reads a JSON string or number as text. Front ends send the
// legacy fields either way.
func rawScalar(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return "", nil
	}
	if value[0] == '"' {
		var s string
		err := json.Unmarshal(value, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(value, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// LegacyCostFields flattens the non-empty cost slots into legacy field names.
func LegacyCostFields(items domain.CostItems) map[string]string {
	out := make(map[string]string)
	for i, item := range items {
		if item.IsEmpty() {
			continue
		}
		out[fmt.Sprintf("%s%d", legacyDescription, i)] = item.Description
		out[fmt.Sprintf("%s%d", legacyPrice, i)] = item.Price
		out[fmt.Sprintf("%s%d", legacyQuantity, i)] = item.Quantity
		out[fmt.Sprintf("%s%d", legacyTotal, i)] = item.Total
	}
	return out
}

func CostItemsFromLegacy(fields map[string]string) domain.CostItems {
	var items domain.CostItems
	for i := range items {
		items[i] = domain.CostItem{
			Description: fields[fmt.Sprintf("%s%d", legacyDescription, i)],
			Price:       fields[fmt.Sprintf("%s%d", legacyPrice, i)],
			Quantity:    fields[fmt.Sprintf("%s%d", legacyQuantity, i)],
			Total:       fields[fmt.Sprintf("%s%d", legacyTotal, i)],
		}
	}
	return items
}
