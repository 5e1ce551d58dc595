// Package worksheet renders the SPK work order handed to the production
// floor as an xlsx file.
package worksheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"printworks/internal/domain"
)

const (
	SheetName  = "SPK"
	dateLayout = "2006-01-02"

	// first row of the cost item table
	costItemsRow = 18
)

// Header cells, label in column A and value in column B.
const (
	SpkCell         = "B3"
	CustomerCell    = "B4"
	OrderDateCell   = "B5"
	TargetDateCell  = "B6"
	PriorityCell    = "B7"
	ProductTypeCell = "B9"
	QuantityCell    = "B10"
	MaterialCell    = "B11"
	UnitPriceCell   = "B12"
	DiscountCell    = "B13"
	TaxCell         = "B14"
	TotalCell       = "B15"
	NotesCell       = "A27"
)

type Sheet struct {
	Order        domain.Order
	CustomerName string
	Fabric       *domain.FabricInfo
	CostItems    domain.CostItems
}

type cell struct {
	label string
	ref   string
	value interface{}
}

func Render(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	o := s.Order
	if err := f.SetCellValue(SheetName, "A1", "SURAT PERINTAH KERJA"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", title); err != nil {
		return nil, err
	}

	cells := []cell{
		{"SPK", SpkCell, o.SpkNumber},
		{"Customer", CustomerCell, customerLabel(s)},
		{"Order date", OrderDateCell, o.OrderDate.Format(dateLayout)},
		{"Target date", TargetDateCell, o.TargetDate.Format(dateLayout)},
		{"Priority", PriorityCell, yesNo(o.Priority)},
		{"Product type", ProductTypeCell, o.ProductType},
		{"Quantity", QuantityCell, fmt.Sprintf("%s %s", formatNumber(o.Quantity), o.Unit)},
		{"Material", MaterialCell, materialLabel(s)},
		{"Unit price", UnitPriceCell, o.UnitPrice},
		{"Discount", DiscountCell, discountLabel(o)},
		{"Tax", TaxCell, taxLabel(o)},
		{"Total", TotalCell, o.TotalPrice},
	}
	for _, c := range cells {
		labelRef := "A" + c.ref[1:]
		if err := f.SetCellValue(SheetName, labelRef, c.label); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, labelRef, labelRef, bold); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, c.ref, c.value); err != nil {
			return nil, err
		}
	}

	if err := writeCostItems(f, s.CostItems, bold); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(SheetName, "A26", "Notes"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A26", "A26", bold); err != nil {
		return nil, err
	}
	if err := f.MergeCell(SheetName, NotesCell, "E30"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, NotesCell, o.Notes); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(SheetName, "A", "A", 16); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", "E", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCostItems(f *excelize.File, items domain.CostItems, bold int) error {
	headers := []string{"Additional cost", "Price", "Qty", "Total"}
	for i, h := range headers {
		ref, err := excelize.CoordinatesToCellName(i+1, costItemsRow-1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, ref, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, ref, ref, bold); err != nil {
			return err
		}
	}

	row := costItemsRow
	for _, item := range items.Filled() {
		values := []string{item.Description, item.Price, item.Quantity, item.Total}
		for i, v := range values {
			ref, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, ref, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func customerLabel(s Sheet) string {
	if s.CustomerName == "" {
		return "#" + strconv.Itoa(s.Order.CustomerID)
	}
	return s.CustomerName
}

func materialLabel(s Sheet) string {
	o := s.Order
	switch {
	case s.Fabric != nil:
		return fmt.Sprintf("%s (%s, %s cm)", s.Fabric.Name, s.Fabric.Composition, formatNumber(s.Fabric.Width))
	case o.PaperGSM != nil && o.PaperWidth != nil:
		return fmt.Sprintf("Paper %d gsm, %d cm", *o.PaperGSM, *o.PaperWidth)
	case o.PaperGSM != nil:
		return fmt.Sprintf("Paper %d gsm", *o.PaperGSM)
	}
	return "-"
}

func discountLabel(o domain.Order) string {
	switch o.DiscountType {
	case domain.DiscountFixed:
		return formatNumber(o.DiscountValue)
	case domain.DiscountPercentage:
		return formatNumber(o.DiscountValue) + "%"
	}
	return "-"
}

func taxLabel(o domain.Order) string {
	if !o.TaxEnabled {
		return "-"
	}
	return formatNumber(o.TaxPercent) + "%"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
