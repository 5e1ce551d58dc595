package domain

// MaxCostItems is the number of additional cost slots an order carries.
const MaxCostItems = 6

// CostItem is an ad-hoc extra charge on an order. Price, Quantity and Total
// keep the raw form values; numeric interpretation happens in pricing.
type CostItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Total       string `json:"total"`
}

func (c CostItem) IsEmpty() bool {
	return c.Description == "" && c.Price == "" && c.Quantity == "" && c.Total == ""
}

// CostItems is the fixed-size slot array used by drafts and payloads.
type CostItems [MaxCostItems]CostItem

// Filled returns the non-empty slots in index order.
func (c CostItems) Filled() []CostItem {
	var out []CostItem
	for _, item := range c {
		if !item.IsEmpty() {
			out = append(out, item)
		}
	}
	return out
}
