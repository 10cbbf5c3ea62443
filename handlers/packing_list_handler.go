package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nagraajm/bls-exportpro/services"
)

type PackingListHandler struct {
	Service *services.PackingListService
}

func (h *PackingListHandler) List(w http.ResponseWriter, r *http.Request) {
	if invoiceID := r.URL.Query().Get("invoiceId"); invoiceID != "" {
		pl, err := h.Service.GetByInvoice(invoiceID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, pl, "")
		return
	}

	page, limit := parsePagination(r)
	result, err := h.Service.List(page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessPage(w, result, limit)
}

func (h *PackingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePackingListInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}

	pl, err := h.Service.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, pl, "Packing list created successfully")
}

func (h *PackingListHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	pl, err := h.Service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, pl, "")
}

func (h *PackingListHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var in services.UpdatePackingListInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}

	pl, err := h.Service.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, pl, "Packing list updated successfully")
}

func (h *PackingListHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Service.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil, "Packing list deleted successfully")
}
