package inventory

type FabricsResponse struct {
	Fabrics []FabricDTO `json:"fabrics"`
}

type FabricDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Composition     string  `json:"composition"`
	Width           float64 `json:"width"`
	AvailableLength float64 `json:"availableLength"`
	Label           string  `json:"label"`
}
