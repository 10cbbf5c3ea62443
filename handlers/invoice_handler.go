package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nagraajm/bls-exportpro/services"
	"github.com/nagraajm/bls-exportpro/utils"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
	PDFDir  string
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := services.InvoiceFilter{
		InvoiceType: r.URL.Query().Get("invoiceType"),
		OrderID:     r.URL.Query().Get("orderId"),
	}

	result, err := h.Service.List(page, limit, filter)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatusPage(w, result, limit)
}

func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var in services.GenerateInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	invoice, err := h.Service.Generate(in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	invoice, err := h.Service.Get(id)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var in services.UpdateInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	invoice, err := h.Service.Update(id, in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	invoice, err := h.Service.Get(id)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	if err := h.Service.Delete(id); err != nil {
		writeStatusError(w, err)
		return
	}
	h.cleanupPDFs(invoice.InvoiceNumber)
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Message: "Invoice deleted"})
}

// cleanupPDFs removes rendered copies of a deleted invoice, local and
// archived alike. Failures are only logged; the invoice itself is gone.
func (h *InvoiceHandler) cleanupPDFs(invoiceNumber string) {
	saveDir := h.PDFDir
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	matches, err := filepath.Glob(filepath.Join(saveDir, invoiceNumber+"_*.pdf"))
	if err != nil {
		return
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			logrus.WithError(err).Warn("pdf cleanup failed")
		}
		if utils.ArchiveConfigured() {
			if err := utils.DeleteArchivedPDF(filepath.Base(path)); err != nil {
				logrus.WithError(err).Warn("archived pdf cleanup failed")
			}
		}
	}
}

// PDF renders the invoice to a file on disk and, when an archival bucket is
// configured, uploads a copy and returns its public URL.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request, id string) {
	invoice, err := h.Service.Get(id)
	if err != nil {
		writeStatusError(w, err)
		return
	}

	saveDir := h.PDFDir
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeStatusError(w, err)
		return
	}

	pdfBytes, err := utils.GenerateInvoicePDF(invoice)
	if err != nil {
		writeStatusError(w, err)
		return
	}

	filename := fmt.Sprintf("%s_%d.pdf", invoice.InvoiceNumber, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeStatusError(w, err)
		return
	}

	data := map[string]string{"file": filename}
	if utils.ArchiveConfigured() {
		if fileURL, err := utils.ArchivePDF(pdfBytes, filename); err != nil {
			// Archival is best-effort; the local file already exists.
			logrus.WithError(err).Warn("pdf archival failed")
		} else {
			data["url"] = fileURL
		}
	}
	writeStatus(w, http.StatusOK, data)
}
