package repository

import (
	"path/filepath"

	"github.com/nagraajm/bls-exportpro/models"
)

type InvoiceRepository interface {
	Repository[*models.Invoice]
}

type InvoiceJSONRepo struct {
	*JSONStore[*models.Invoice]
}

func NewInvoiceJSONRepo(dataDir string) *InvoiceJSONRepo {
	return &InvoiceJSONRepo{NewJSONStore[*models.Invoice](filepath.Join(dataDir, "invoices.json"))}
}
