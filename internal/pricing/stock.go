package pricing

import (
	"fmt"

	"printworks/internal/domain"
)

// StockWarning returns a non-blocking message when the requested length
// exceeds what the fabric has left. Pieces are not checked.
func StockWarning(qty string, unit domain.Unit, fabric *domain.FabricInfo) string {
	if fabric == nil || unit == domain.UnitPiece {
		return ""
	}
	meters := NormalizeQuantity(qty, unit)
	if meters <= fabric.Available() {
		return ""
	}
	return fmt.Sprintf("requested %.2f m exceeds available stock of %s (%.2f m)", meters, fabric.Name, fabric.Available())
}
