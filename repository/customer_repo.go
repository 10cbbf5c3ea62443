package repository

import (
	"path/filepath"

	"github.com/nagraajm/bls-exportpro/models"
)

type CustomerRepository interface {
	Repository[*models.Customer]
}

type CustomerJSONRepo struct {
	*JSONStore[*models.Customer]
}

func NewCustomerJSONRepo(dataDir string) *CustomerJSONRepo {
	return &CustomerJSONRepo{NewJSONStore[*models.Customer](filepath.Join(dataDir, "customers.json"))}
}
