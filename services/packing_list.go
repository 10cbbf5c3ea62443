package services

import (
	"time"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

type PackingListService struct {
	PackingLists repository.PackingListRepository
	Invoices     repository.InvoiceRepository
	Products     repository.ProductRepository
}

func NewPackingListService(
	packingLists repository.PackingListRepository,
	invoices repository.InvoiceRepository,
	products repository.ProductRepository,
) *PackingListService {
	return &PackingListService{PackingLists: packingLists, Invoices: invoices, Products: products}
}

type PackingItemInput struct {
	ProductID       string     `json:"productId" validate:"required"`
	BatchNumber     string     `json:"batchNumber" validate:"required"`
	MfgDate         *time.Time `json:"mfgDate"`
	ExpDate         *time.Time `json:"expDate"`
	CartonsQuantity int        `json:"cartonsQuantity" validate:"required,gt=0"`
	GrossWeight     float64    `json:"grossWeight" validate:"gte=0"`
	NetWeight       float64    `json:"netWeight" validate:"gte=0"`
	Quantity        int        `json:"quantity" validate:"required,gt=0"`
}

type CreatePackingListInput struct {
	InvoiceID string             `json:"invoiceId" validate:"required"`
	Items     []PackingItemInput `json:"items" validate:"required,min=1,dive"`
}

// Create builds a packing list for an invoice; the totals are always computed
// from the items, never taken from the request. One packing list per invoice.
func (s *PackingListService) Create(in CreatePackingListInput) (*models.PackingList, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	invoice, err := s.Invoices.FindByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, NotFound("Invoice not found")
	}

	existing, err := s.PackingLists.FindByInvoiceID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("A packing list already exists for this invoice")
	}

	items, err := s.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	pl := &models.PackingList{InvoiceID: in.InvoiceID, Items: items}
	recomputeTotals(pl)
	return s.PackingLists.Create(pl)
}

func (s *PackingListService) buildItems(inputs []PackingItemInput) ([]models.PackingListItem, error) {
	items := make([]models.PackingListItem, 0, len(inputs))
	for _, in := range inputs {
		product, err := s.Products.FindByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, NotFound("Product not found: " + in.ProductID)
		}
		items = append(items, models.PackingListItem{
			ProductID:       in.ProductID,
			BatchNumber:     in.BatchNumber,
			MfgDate:         in.MfgDate,
			ExpDate:         in.ExpDate,
			CartonsQuantity: in.CartonsQuantity,
			GrossWeight:     in.GrossWeight,
			NetWeight:       in.NetWeight,
			Quantity:        in.Quantity,
		})
	}
	return items, nil
}

func recomputeTotals(pl *models.PackingList) {
	pl.TotalCartons = 0
	pl.TotalGrossWeight = 0
	pl.TotalNetWeight = 0
	for _, item := range pl.Items {
		pl.TotalCartons += item.CartonsQuantity
		pl.TotalGrossWeight += item.GrossWeight
		pl.TotalNetWeight += item.NetWeight
	}
}

type UpdatePackingListInput struct {
	Items []PackingItemInput `json:"items" validate:"omitempty,min=1,dive"`
}

func (s *PackingListService) Update(id string, in UpdatePackingListInput) (*models.PackingList, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	var items []models.PackingListItem
	if in.Items != nil {
		var err error
		items, err = s.buildItems(in.Items)
		if err != nil {
			return nil, err
		}
	}

	pl, err := s.PackingLists.Update(id, func(p *models.PackingList) {
		if in.Items != nil {
			p.Items = items
		}
		recomputeTotals(p)
	})
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, NotFound("Packing list not found")
	}
	return pl, nil
}

// Get returns the packing list with item products attached.
func (s *PackingListService) Get(id string) (*models.PackingList, error) {
	pl, err := s.PackingLists.FindByID(id)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, NotFound("Packing list not found")
	}
	if err := s.hydrate(pl); err != nil {
		return nil, err
	}
	return pl, nil
}

func (s *PackingListService) GetByInvoice(invoiceID string) (*models.PackingList, error) {
	pl, err := s.PackingLists.FindByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, NotFound("No packing list for this invoice")
	}
	if err := s.hydrate(pl); err != nil {
		return nil, err
	}
	return pl, nil
}

func (s *PackingListService) hydrate(pl *models.PackingList) error {
	for i := range pl.Items {
		product, err := s.Products.FindByID(pl.Items[i].ProductID)
		if err != nil {
			return err
		}
		pl.Items[i].Product = product
	}
	return nil
}

func (s *PackingListService) List(page, limit int) (repository.Page[*models.PackingList], error) {
	return s.PackingLists.Paginate(page, limit, nil)
}

func (s *PackingListService) Delete(id string) error {
	deleted, err := s.PackingLists.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("Packing list not found")
	}
	return nil
}
