package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// StatusRecord is one data row from an uploaded registration-status sheet.
// The recognized fields are normalized copies; Fields keeps every original
// cell keyed by its header so nothing the supplier sent is dropped.
type StatusRecord struct {
	SheetName          string            `json:"sheetName"`
	RowNumber          int               `json:"rowNumber"`
	BrandName          string            `json:"brandName,omitempty"`
	GenericName        string            `json:"genericName,omitempty"`
	Strength           string            `json:"strength,omitempty"`
	DosageForm         string            `json:"dosageForm,omitempty"`
	PackSize           string            `json:"packSize,omitempty"`
	Manufacturer       string            `json:"manufacturer,omitempty"`
	Country            string            `json:"country,omitempty"`
	RegistrationNumber string            `json:"registrationNumber,omitempty"`
	Status             string            `json:"status,omitempty"`
	NormalizedStatus   string            `json:"normalizedStatus"`
	ExpiryDate         string            `json:"expiryDate,omitempty"`
	SubmissionDate     string            `json:"submissionDate,omitempty"`
	ApprovalDate       string            `json:"approvalDate,omitempty"`
	Price              float64           `json:"price"`
	Quantity           int               `json:"quantity"`
	Remarks            string            `json:"remarks,omitempty"`
	Fields             map[string]string `json:"fields"`
}

type SheetInfo struct {
	Name     string   `json:"name"`
	RowCount int      `json:"rowCount"`
	Columns  []string `json:"columns"`
}

// parseWorkbook reads every sheet of an .xlsx/.xls file.
func parseWorkbook(path string) ([]SheetInfo, []StatusRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var sheets []SheetInfo
	var records []StatusRecord
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, nil, err
		}
		info, sheetRecords := parseSheet(name, rows)
		sheets = append(sheets, info)
		records = append(records, sheetRecords...)
	}
	return sheets, records, nil
}

// parseCSV treats a .csv file as a single sheet named after the file.
func parseCSV(path string) ([]SheetInfo, []StatusRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info, records := parseSheet(name, rows)
	return []SheetInfo{info}, records, nil
}

func parseSheet(name string, rows [][]string) (SheetInfo, []StatusRecord) {
	headerIdx, headers := detectHeaderRow(rows)
	info := SheetInfo{Name: name, Columns: headers}

	var records []StatusRecord
	for i := headerIdx + 1; i < len(rows); i++ {
		record, ok := parseRow(name, i+1, headers, rows[i])
		if !ok {
			continue
		}
		records = append(records, record)
	}
	info.RowCount = len(records)
	return info, records
}

// parseRow builds a record from one data row. Rows with no content at all are
// skipped; RowNumber is the 1-based position in the original sheet.
func parseRow(sheetName string, rowNumber int, headers, row []string) (StatusRecord, bool) {
	record := StatusRecord{
		SheetName: sheetName,
		RowNumber: rowNumber,
		Fields:    make(map[string]string),
	}

	empty := true
	for col, header := range headers {
		var value string
		if col < len(row) {
			value = strings.TrimSpace(row[col])
		}
		if value == "" {
			continue
		}
		empty = false
		record.Fields[header] = value

		switch canonicalField(header) {
		case "brandName":
			record.BrandName = value
		case "genericName":
			record.GenericName = value
		case "strength":
			record.Strength = value
		case "dosageForm":
			record.DosageForm = value
		case "packSize":
			record.PackSize = value
		case "manufacturer":
			record.Manufacturer = value
		case "country":
			record.Country = value
		case "registrationNumber":
			record.RegistrationNumber = value
		case "status":
			record.Status = value
		case "expiryDate":
			record.ExpiryDate = value
		case "submissionDate":
			record.SubmissionDate = value
		case "approvalDate":
			record.ApprovalDate = value
		case "price":
			record.Price = parseFloatCell(value)
		case "quantity":
			record.Quantity = parseIntCell(value)
		case "remarks":
			record.Remarks = value
		}
	}
	if empty {
		return StatusRecord{}, false
	}
	record.NormalizedStatus = NormalizeStatus(record.Status)
	return record, true
}

// parseFloatCell reads a numeric cell, tolerating thousands separators and
// currency noise. Unparseable values become 0.
func parseFloatCell(value string) float64 {
	cleaned := strings.TrimFunc(strings.ReplaceAll(value, ",", ""), func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	})
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntCell(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(value, ",", "")))
	if err != nil {
		return int(parseFloatCell(value))
	}
	return n
}
