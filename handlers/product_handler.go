package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
	"github.com/nagraajm/bls-exportpro/services"
)

type ProductHandler struct {
	Service *services.ProductService
	Repo    repository.ProductRepository
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	approvalStatus := r.URL.Query().Get("approvalStatus")
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))

	var pred repository.Predicate[*models.Product]
	if approvalStatus != "" || search != "" {
		pred = func(p *models.Product) bool {
			if approvalStatus != "" && string(p.ApprovalStatus) != approvalStatus {
				return false
			}
			if search != "" {
				if !strings.Contains(strings.ToLower(p.BrandName), search) &&
					!strings.Contains(strings.ToLower(p.GenericName), search) &&
					!strings.Contains(strings.ToLower(p.ProductCode), search) {
					return false
				}
			}
			return true
		}
	}

	result, err := h.Repo.Paginate(page, limit, pred)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatusPage(w, result, limit)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	product, err := h.Service.Create(actorFromRequest(r), in)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusCreated, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.Repo.FindByID(id)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	if product == nil {
		writeStatusError(w, services.NotFound("Product not found"))
		return
	}
	writeStatus(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var in services.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	product, resetApproval, err := h.Service.Update(actorFromRequest(r), id, in)
	if err != nil {
		writeStatusError(w, err)
		return
	}

	resp := StatusResponse{Status: "success", Data: product}
	if resetApproval {
		resp.Message = "Significant fields changed; product returned to pending approval"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Service.Delete(actorFromRequest(r), id); err != nil {
		writeStatusError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Message: "Product deleted"})
}

func (h *ProductHandler) Approve(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.Service.Approve(actorFromRequest(r), id)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, product)
}

func (h *ProductHandler) Reject(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeStatusError(w, services.Invalid("Invalid request body"))
		return
	}

	product, err := h.Service.Reject(actorFromRequest(r), id, body.Reason)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatus(w, http.StatusOK, product)
}

func (h *ProductHandler) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	result, err := h.Service.PendingApprovals(actorFromRequest(r), page, limit)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeStatusPage(w, result, limit)
}
