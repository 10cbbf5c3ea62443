package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nagraajm/bls-exportpro/services"
)

// ImportHandler loads products in bulk from an uploaded spreadsheet. The
// expected layout matches what the product export produces: a header row
// naming the columns, one product per row.
type ImportHandler struct {
	Service   *services.ProductService
	UploadDir string
}

const maxImportBytes = 10 << 20 // 10 MB

type importRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type importResult struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []importRowError `json:"errors"`
}

func (h *ImportHandler) ProductsXLSX(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		writeStatusError(w, services.Invalid("File too large or malformed upload (max 10MB)"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeStatusError(w, services.Invalid("No file uploaded; expected multipart field 'file'"))
		return
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx", ".xls":
	default:
		writeStatusError(w, services.Invalid("Unsupported file type; expected .xlsx or .xls"))
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		writeStatusError(w, err)
		return
	}
	tmpPath := filepath.Join(h.UploadDir, time.Now().Format("20060102150405")+"_"+filepath.Base(header.Filename))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeStatusError(w, err)
		return
	}
	tmp.Close()

	f, err := excelize.OpenFile(tmpPath)
	if err != nil {
		writeStatusError(w, services.Invalid("Failed to read workbook: "+err.Error()))
		return
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		writeStatusError(w, services.Invalid("Workbook has no sheets"))
		return
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		writeStatusError(w, err)
		return
	}
	if len(rows) < 2 {
		writeStatusError(w, services.Invalid("Spreadsheet has no data rows"))
		return
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	actor := actorFromRequest(r)
	result := importResult{Errors: []importRowError{}}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if rowEmpty(row) {
			continue
		}

		in := services.CreateProductInput{
			ProductCode:  importCell(columns, row, "product code"),
			BrandName:    importCell(columns, row, "brand name"),
			GenericName:  importCell(columns, row, "generic name"),
			Strength:     importCell(columns, row, "strength"),
			DosageForm:   importCell(columns, row, "dosage form"),
			PackSize:     importCell(columns, row, "pack size"),
			Manufacturer: importCell(columns, row, "manufacturer"),
			HSNCode:      importCell(columns, row, "hsn code"),
			Currency:     importCell(columns, row, "currency"),
		}
		if raw := importCell(columns, row, "unit price"); raw != "" {
			if price, err := decimal.NewFromString(raw); err == nil {
				in.UnitPrice = &price
			}
		}

		if _, err := h.Service.Create(actor, in); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, importRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		result.Created++
	}
	writeStatus(w, http.StatusOK, result)
}

func importCell(columns map[string]int, row []string, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
