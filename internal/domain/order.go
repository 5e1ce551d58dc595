package domain

import "time"

type Order struct {
	ID            uint
	PublicID      string
	SpkNumber     string
	CustomerID    int
	ProductType   string
	Quantity      float64
	Unit          Unit
	FabricID      *int
	PaperGSM      *int
	PaperWidth    *int
	UnitPrice     float64
	DiscountType  DiscountType
	DiscountValue float64
	TaxEnabled    bool
	TaxPercent    float64
	TotalPrice    float64
	Notes         string
	Priority      bool
	OrderDate     time.Time
	TargetDate    time.Time
	Status        string
	CostItems     []CostItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	OrderStatusPending    = "PENDING"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusDone       = "DONE"
)
