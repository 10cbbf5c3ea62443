package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Service ingests registration-status spreadsheets and serves the parsed
// rows back. Storage is a single slot: each upload replaces the previous
// dataset wholesale, which matches how the back office works off "the latest
// sheet from the supplier".
type Service struct {
	DataDir string

	mu sync.Mutex
}

func NewService(dataDir string) *Service {
	return &Service{DataDir: dataDir}
}

const (
	dataFile    = "uploaded-status-data.json"
	summaryFile = "upload-summary.json"
)

type UploadSummary struct {
	FileName    string      `json:"fileName"`
	UploadedAt  time.Time   `json:"uploadedAt"`
	TotalSheets int         `json:"totalSheets"`
	TotalRows   int         `json:"totalRows"`
	Sheets      []SheetInfo `json:"sheets"`
}

type statusData struct {
	FileName   string         `json:"fileName"`
	UploadedAt time.Time      `json:"uploadedAt"`
	Records    []StatusRecord `json:"records"`
}

// ProcessFile parses the uploaded file and replaces the stored dataset.
// The extension decides the parser: .xlsx/.xls via the workbook reader,
// .csv as a single sheet.
func (s *Service) ProcessFile(path, originalName string) (*UploadSummary, error) {
	var (
		sheets  []SheetInfo
		records []StatusRecord
		err     error
	)

	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".xlsx", ".xls":
		sheets, records, err = parseWorkbook(path)
	case ".csv":
		sheets, records, err = parseCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(originalName))
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := &UploadSummary{
		FileName:    originalName,
		UploadedAt:  now,
		TotalSheets: len(sheets),
		TotalRows:   len(records),
		Sheets:      sheets,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(dataFile, statusData{FileName: originalName, UploadedAt: now, Records: records}); err != nil {
		return nil, err
	}
	if err := s.writeJSON(summaryFile, summary); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"fileName": originalName,
		"sheets":   summary.TotalSheets,
		"rows":     summary.TotalRows,
	}).Info("status upload processed")
	return summary, nil
}

func (s *Service) writeJSON(name string, v interface{}) error {
	if err := os.MkdirAll(s.DataDir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.DataDir, name), raw, 0o644)
}

func (s *Service) readData() (*statusData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(filepath.Join(s.DataDir, dataFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var data statusData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Summary returns the summary of the most recent upload, or nil when nothing
// has been uploaded yet.
func (s *Service) Summary() (*UploadSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(filepath.Join(s.DataDir, summaryFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary UploadSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

type DataFilter struct {
	Status string
	Search string
}

type DataPage struct {
	Data       []StatusRecord `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// Data returns a filtered page of the stored records. An out-of-range page
// yields an empty page, not an error.
func (s *Service) Data(page, limit int, filter DataFilter) (DataPage, error) {
	data, err := s.readData()
	if err != nil {
		return DataPage{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	matches := []StatusRecord{}
	if data != nil {
		search := strings.ToLower(strings.TrimSpace(filter.Search))
		for _, record := range data.Records {
			if filter.Status != "" && record.NormalizedStatus != filter.Status {
				continue
			}
			if search != "" && !recordMatches(record, search) {
				continue
			}
			matches = append(matches, record)
		}
	}

	total := len(matches)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start >= total {
		return DataPage{Data: []StatusRecord{}, Total: total, Page: page, TotalPages: totalPages}, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return DataPage{Data: matches[start:end], Total: total, Page: page, TotalPages: totalPages}, nil
}

func recordMatches(record StatusRecord, search string) bool {
	for _, value := range record.Fields {
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}

// Sheet returns every record from one sheet of the last upload. A nil slice
// means no such sheet exists in the stored dataset.
func (s *Service) Sheet(name string) ([]StatusRecord, error) {
	data, err := s.readData()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var records []StatusRecord
	for _, record := range data.Records {
		if strings.EqualFold(record.SheetName, name) {
			records = append(records, record)
		}
	}
	return records, nil
}

// SheetStats is the per-sheet slice of the dashboard: how many rows the
// sheet contributed and whether it carries registration or pricing columns.
type SheetStats struct {
	Name                string `json:"name"`
	RowCount            int    `json:"rowCount"`
	HasRegistrationData bool   `json:"hasRegistrationData"`
	HasPriceData        bool   `json:"hasPriceData"`
}

const maxRecentItems = 20

type Dashboard struct {
	FileName    string         `json:"fileName"`
	UploadedAt  *time.Time     `json:"uploadedAt,omitempty"`
	TotalRows   int            `json:"totalRows"`
	ByStatus    map[string]int `json:"byStatus"`
	ByCountry   map[string]int `json:"byCountry"`
	Sheets      []SheetStats   `json:"sheets"`
	RecentItems []StatusRecord `json:"recentItems"`
}

// DashboardStats aggregates the stored records for the status dashboard.
// RecentItems previews the dataset: the first five rows of each sheet,
// capped at twenty overall.
func (s *Service) DashboardStats() (Dashboard, error) {
	dashboard := Dashboard{
		ByStatus:    map[string]int{},
		ByCountry:   map[string]int{},
		RecentItems: []StatusRecord{},
	}

	data, err := s.readData()
	if err != nil {
		return Dashboard{}, err
	}
	if data == nil {
		return dashboard, nil
	}

	dashboard.FileName = data.FileName
	dashboard.UploadedAt = &data.UploadedAt
	dashboard.TotalRows = len(data.Records)

	perSheet := map[string]*SheetStats{}
	var sheetOrder []string
	sheetPreview := map[string]int{}
	for _, record := range data.Records {
		dashboard.ByStatus[record.NormalizedStatus]++
		if record.Country != "" {
			dashboard.ByCountry[record.Country]++
		}

		stats, ok := perSheet[record.SheetName]
		if !ok {
			stats = &SheetStats{Name: record.SheetName}
			perSheet[record.SheetName] = stats
			sheetOrder = append(sheetOrder, record.SheetName)
		}
		stats.RowCount++
		if record.RegistrationNumber != "" {
			stats.HasRegistrationData = true
		}
		if record.Price > 0 {
			stats.HasPriceData = true
		}

		if sheetPreview[record.SheetName] < 5 && len(dashboard.RecentItems) < maxRecentItems {
			sheetPreview[record.SheetName]++
			dashboard.RecentItems = append(dashboard.RecentItems, record)
		}
	}
	for _, name := range sheetOrder {
		dashboard.Sheets = append(dashboard.Sheets, *perSheet[name])
	}
	return dashboard, nil
}
