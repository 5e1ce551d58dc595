package domain

type FabricInfo struct {
	ID              int     `json:"id"`
	CustomerID      int     `json:"customerId"`
	Name            string  `json:"name"`
	Composition     string  `json:"composition"`
	Width           float64 `json:"width"`
	AvailableLength float64 `json:"availableLength"`
}

// Available never reports negative stock.
func (f FabricInfo) Available() float64 {
	if f.AvailableLength < 0 {
		return 0
	}
	return f.AvailableLength
}

type PaperStock struct {
	ID    int `json:"id"`
	GSM   int `json:"gsm"`
	Width int `json:"width"`
}
