package repository

import (
	"path/filepath"

	"github.com/nagraajm/bls-exportpro/models"
)

type PackingListRepository interface {
	Repository[*models.PackingList]
	FindByInvoiceID(invoiceID string) (*models.PackingList, error)
}

type PackingListJSONRepo struct {
	*JSONStore[*models.PackingList]
}

func NewPackingListJSONRepo(dataDir string) *PackingListJSONRepo {
	return &PackingListJSONRepo{NewJSONStore[*models.PackingList](filepath.Join(dataDir, "packing-lists.json"))}
}

func (r *PackingListJSONRepo) FindByInvoiceID(invoiceID string) (*models.PackingList, error) {
	return r.FindOne(func(p *models.PackingList) bool { return p.InvoiceID == invoiceID })
}
