package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

func newCustomerFixture(t *testing.T) (*CustomerHandler, *models.Customer) {
	t.Helper()
	repo := repository.NewCustomerJSONRepo(t.TempDir())
	customer, err := repo.Create(&models.Customer{CompanyName: "Medex Trading", Country: "Cambodia"})
	if err != nil {
		t.Fatal(err)
	}
	return &CustomerHandler{Repo: repo}, customer
}

func TestCustomerUpdateMergesPartialPayload(t *testing.T) {
	h, customer := newCustomerFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/customers/"+customer.ID,
		bytes.NewBufferString(`{"country": "Myanmar"}`))
	rec := httptest.NewRecorder()
	h.Update(rec, req, customer.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	stored, _ := h.Repo.FindByID(customer.ID)
	if stored.Country != "Myanmar" {
		t.Fatalf("country = %q, want Myanmar", stored.Country)
	}
	if stored.CompanyName != "Medex Trading" {
		t.Fatal("fields not named in the payload must be untouched")
	}
}

func TestCustomerUpdateRejectsTypeMismatch(t *testing.T) {
	h, customer := newCustomerFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/customers/"+customer.ID,
		bytes.NewBufferString(`{"companyName": 123}`))
	rec := httptest.NewRecorder()
	h.Update(rec, req, customer.ID)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a type-mismatched field", rec.Code)
	}

	stored, _ := h.Repo.FindByID(customer.ID)
	if stored.CompanyName != "Medex Trading" {
		t.Fatal("a rejected payload must not change the stored record")
	}
}
