package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nagraajm/bls-exportpro/services"
)

type OrderHandler struct {
	Service *services.OrderService
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	filter := services.OrderFilter{
		Status:     r.URL.Query().Get("status"),
		CustomerID: r.URL.Query().Get("customerId"),
	}

	result, err := h.Service.List(page, limit, filter)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatusPage(w, result, limit)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	order, err := h.Service.Create(in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	order, err := h.Service.Get(id)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var in services.UpdateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	order, err := h.Service.Update(id, in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, order)
}

// UpdateStatus handles the dedicated status-transition endpoint, taking a
// body of the form {"status": "shipped"}.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	order, err := h.Service.UpdateStatus(id, body.Status)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Service.Delete(id); err != nil {
		writeStatusError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Message: "Order deleted"})
}
