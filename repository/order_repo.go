package repository

import (
	"path/filepath"

	"github.com/nagraajm/bls-exportpro/models"
)

type OrderRepository interface {
	Repository[*models.Order]
	FindByOrderNumber(orderNumber string) (*models.Order, error)
}

type OrderJSONRepo struct {
	*JSONStore[*models.Order]
}

func NewOrderJSONRepo(dataDir string) *OrderJSONRepo {
	return &OrderJSONRepo{NewJSONStore[*models.Order](filepath.Join(dataDir, "orders.json"))}
}

func (r *OrderJSONRepo) FindByOrderNumber(orderNumber string) (*models.Order, error) {
	return r.FindOne(func(o *models.Order) bool { return o.OrderNumber == orderNumber })
}
