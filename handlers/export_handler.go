package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nagraajm/bls-exportpro/repository"
)

// ExportHandler streams the product master as a spreadsheet.
type ExportHandler struct {
	Products repository.ProductRepository
}

var productExportHeaders = []string{
	"Product Code", "Brand Name", "Generic Name", "Strength", "Dosage Form",
	"Pack Size", "Manufacturer", "HSN Code", "Unit Price", "Currency",
	"Approval Status",
}

func (h *ExportHandler) ProductsXLSX(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.FindAll()
	if err != nil {
		writeError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range productExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}

	for row, p := range products {
		unitPrice := ""
		if p.UnitPrice != nil {
			unitPrice = p.UnitPrice.String()
		}
		values := []interface{}{
			p.ProductCode, p.BrandName, p.GenericName, p.Strength, p.DosageForm,
			p.PackSize, p.Manufacturer, p.HSNCode, unitPrice, p.Currency,
			string(p.ApprovalStatus),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	// Headers are already sent; a write failure here cannot be reported.
	_ = f.Write(w)
}
