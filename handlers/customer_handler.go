package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
	"github.com/nagraajm/bls-exportpro/services"
)

type CustomerHandler struct {
	Repo repository.CustomerRepository
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	country := r.URL.Query().Get("country")
	search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search")))

	var pred repository.Predicate[*models.Customer]
	if country != "" || search != "" {
		pred = func(c *models.Customer) bool {
			if country != "" && !strings.EqualFold(c.Country, country) {
				return false
			}
			if search != "" {
				if !strings.Contains(strings.ToLower(c.CompanyName), search) &&
					!strings.Contains(strings.ToLower(c.ContactPerson), search) {
					return false
				}
			}
			return true
		}
	}

	result, err := h.Repo.Paginate(page, limit, pred)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessPage(w, result, limit)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}
	if customer.CompanyName == "" {
		writeError(w, services.Invalid("companyName is required"))
		return
	}

	created, err := h.Repo.Create(&customer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, created, "Customer created successfully")
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	customer, err := h.Repo.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if customer == nil {
		writeError(w, services.NotFound("Customer not found"))
		return
	}
	writeSuccess(w, http.StatusOK, customer, "")
}

// Update merges the request body over the stored customer, so a partial
// payload only touches the fields it names.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, services.Invalid("Invalid request body"))
		return
	}
	// Reject type mismatches before touching the stored record; the merge
	// below reuses the same bytes and cannot fail after this.
	var scratch models.Customer
	if err := json.Unmarshal(body, &scratch); err != nil {
		writeError(w, services.Invalid("Invalid request body: "+err.Error()))
		return
	}

	customer, err := h.Repo.Update(id, func(c *models.Customer) {
		_ = json.Unmarshal(body, c)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if customer == nil {
		writeError(w, services.NotFound("Customer not found"))
		return
	}
	writeSuccess(w, http.StatusOK, customer, "Customer updated successfully")
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, services.NotFound("Customer not found"))
		return
	}
	writeSuccess(w, http.StatusOK, nil, "Customer deleted successfully")
}
