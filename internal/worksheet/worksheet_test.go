package worksheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"printworks/internal/domain"
)

func openSheet(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cellValue(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(SheetName, ref)
	require.NoError(t, err)
	return v
}

func TestRender(t *testing.T) {
	orderDate := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	var items domain.CostItems
	items[3] = domain.CostItem{Description: "Hem", Price: "500", Quantity: "2", Total: "1000"}

	data, err := Render(Sheet{
		Order: domain.Order{
			SpkNumber:     "0125042",
			CustomerID:    7,
			ProductType:   "PRINT, PRESS",
			Quantity:      12.5,
			Unit:          domain.UnitYard,
			UnitPrice:     45000,
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: 10,
			TaxEnabled:    true,
			TaxPercent:    11,
			TotalPrice:    515000,
			Notes:         "[PRINT, PRESS] navy jersey",
			Priority:      true,
			OrderDate:     orderDate,
			TargetDate:    orderDate.AddDate(0, 0, 3),
		},
		CustomerName: "Toko Sinar",
		Fabric:       &domain.FabricInfo{Name: "Jersey", Composition: "100% cotton", Width: 150},
		CostItems:    items,
	})
	require.NoError(t, err)

	f := openSheet(t, data)
	assert.Equal(t, "0125042", cellValue(t, f, SpkCell))
	assert.Equal(t, "Toko Sinar", cellValue(t, f, CustomerCell))
	assert.Equal(t, "2025-01-13", cellValue(t, f, OrderDateCell))
	assert.Equal(t, "2025-01-16", cellValue(t, f, TargetDateCell))
	assert.Equal(t, "YES", cellValue(t, f, PriorityCell))
	assert.Equal(t, "PRINT, PRESS", cellValue(t, f, ProductTypeCell))
	assert.Equal(t, "12.5 yard", cellValue(t, f, QuantityCell))
	assert.Equal(t, "Jersey (100% cotton, 150 cm)", cellValue(t, f, MaterialCell))
	assert.Equal(t, "10%", cellValue(t, f, DiscountCell))
	assert.Equal(t, "11%", cellValue(t, f, TaxCell))
	assert.Equal(t, "[PRINT, PRESS] navy jersey", cellValue(t, f, NotesCell))

	assert.Equal(t, "Hem", cellValue(t, f, "A18"))
	assert.Equal(t, "1000", cellValue(t, f, "D18"))
	assert.Equal(t, "", cellValue(t, f, "A19"))
}

func TestRender_Fallbacks(t *testing.T) {
	gsm, width := 90, 160
	data, err := Render(Sheet{
		Order: domain.Order{
			SpkNumber:    "0125001",
			CustomerID:   3,
			Unit:         domain.UnitMeter,
			DiscountType: domain.DiscountNone,
			PaperGSM:     &gsm,
			PaperWidth:   &width,
		},
	})
	require.NoError(t, err)

	f := openSheet(t, data)
	assert.Equal(t, "#3", cellValue(t, f, CustomerCell))
	assert.Equal(t, "Paper 90 gsm, 160 cm", cellValue(t, f, MaterialCell))
	assert.Equal(t, "-", cellValue(t, f, DiscountCell))
	assert.Equal(t, "-", cellValue(t, f, TaxCell))
	assert.Equal(t, "NO", cellValue(t, f, PriorityCell))
}
