package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nagraajm/bls-exportpro/services"
)

type BrandHandler struct {
	Service *services.BrandService
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := services.BrandFilter{
		Status:         r.URL.Query().Get("status"),
		ApprovalStatus: r.URL.Query().Get("approvalStatus"),
		ManufacturerID: r.URL.Query().Get("manufacturerId"),
		Search:         r.URL.Query().Get("search"),
	}

	result, err := h.Service.List(page, limit, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessPage(w, result, limit)
}

// Search is the typeahead endpoint; it returns matches without pagination.
func (h *BrandHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, services.Invalid("Query parameter q is required"))
		return
	}

	result, err := h.Service.List(1, 20, services.BrandFilter{Search: query})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessCount(w, result.Data, result.Total)
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateBrandInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}

	brand, err := h.Service.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, brand, "Brand registration created successfully")
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	brand, err := h.Service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, brand, "")
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var in services.UpdateBrandInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}

	brand, err := h.Service.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, brand, "Brand registration updated successfully")
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Service.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil, "Brand registration deleted successfully")
}

func (h *BrandHandler) Approve(w http.ResponseWriter, r *http.Request, id string) {
	brand, err := h.Service.Approve(actorFromRequest(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, brand, "Brand registration approved")
}

func (h *BrandHandler) Reject(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}

	brand, err := h.Service.Reject(actorFromRequest(r), id, body.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, brand, "Brand registration rejected")
}

func (h *BrandHandler) FPSStatus(w http.ResponseWriter, r *http.Request, id string) {
	integration, err := h.Service.FPSStatus(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, integration, "")
}

func (h *BrandHandler) SyncFPS(w http.ResponseWriter, r *http.Request, id string) {
	integration, err := h.Service.SyncWithFPS(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, integration, "FPS sync completed")
}

func (h *BrandHandler) SyncAllPending(w http.ResponseWriter, r *http.Request) {
	results, err := h.Service.SyncAllPending()
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessCount(w, results, len(results))
}
