package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nagraajm/bls-exportpro/ingest"
	"github.com/nagraajm/bls-exportpro/services"
)

type StatusUploadHandler struct {
	Service   *ingest.Service
	UploadDir string
}

const maxUploadBytes = 50 << 20 // 50 MB

// Upload accepts a registration-status spreadsheet as multipart form data
// under the "file" field and replaces the stored dataset with its contents.
func (h *StatusUploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, services.Invalid("File too large or malformed upload (max 50MB)"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, services.Invalid("No file uploaded; expected multipart field 'file'"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".xlsx", ".xls", ".csv":
	default:
		writeError(w, services.Invalid("Unsupported file type; expected .xlsx, .xls or .csv"))
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		writeError(w, err)
		return
	}
	tmpPath := filepath.Join(h.UploadDir, time.Now().Format("20060102150405")+"_"+filepath.Base(header.Filename))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		writeError(w, err)
		return
	}
	// The upload is parsed into the data dir; the raw file never outlives the
	// request.
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, err)
		return
	}
	tmp.Close()

	// Parsing never fails on malformed sheet content; an error here means the
	// file itself is unreadable, which is a server-side failure.
	summary, err := h.Service.ProcessFile(tmpPath, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, summary, "File processed successfully")
}

func (h *StatusUploadHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary()
	if err != nil {
		writeError(w, err)
		return
	}
	if summary == nil {
		writeError(w, services.NotFound("No upload found"))
		return
	}
	writeSuccess(w, http.StatusOK, summary, "")
}

func (h *StatusUploadHandler) Data(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := ingest.DataFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.Service.Data(page, limit, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    result.Data,
		Pagination: &Pagination{
			Page:       result.Page,
			Limit:      limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

func (h *StatusUploadHandler) Sheet(w http.ResponseWriter, r *http.Request, name string) {
	records, err := h.Service.Sheet(name)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		writeError(w, services.NotFound("Sheet not found"))
		return
	}
	writeSuccessCount(w, records, len(records))
}

func (h *StatusUploadHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.DashboardStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, dashboard, "")
}
