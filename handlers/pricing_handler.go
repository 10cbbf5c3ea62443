package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nagraajm/bls-exportpro/services"
)

type PricingHandler struct {
	Service *services.PricingService
}

func (h *PricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePricingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	pricing, err := h.Service.Create(actorFromRequest(r), in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusCreated, pricing)
}

// History lists every price ever recorded for a product, newest first.
func (h *PricingHandler) History(w http.ResponseWriter, r *http.Request, productID string) {
	page, limit := parsePagination(r)
	result, err := h.Service.History(productID, page, limit)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatusPage(w, result, limit)
}

func (h *PricingHandler) Active(w http.ResponseWriter, r *http.Request, productID string) {
	pricing, err := h.Service.Active(productID, r.URL.Query().Get("priceType"))
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, pricing)
}

func (h *PricingHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var in services.UpdatePricingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	pricing, err := h.Service.Update(actorFromRequest(r), id, in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, pricing)
}

func (h *PricingHandler) Approve(w http.ResponseWriter, r *http.Request, id string) {
	pricing, err := h.Service.Approve(actorFromRequest(r), id)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, pricing)
}

func (h *PricingHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Service.Delete(actorFromRequest(r), id); err != nil {
		writeStatusError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Message: "Pricing record deleted"})
}
