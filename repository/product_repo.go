package repository

import (
	"path/filepath"

	"github.com/nagraajm/bls-exportpro/models"
)

type ProductRepository interface {
	Repository[*models.Product]
}

type ProductJSONRepo struct {
	*JSONStore[*models.Product]
}

func NewProductJSONRepo(dataDir string) *ProductJSONRepo {
	return &ProductJSONRepo{NewJSONStore[*models.Product](filepath.Join(dataDir, "products.json"))}
}
