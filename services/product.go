package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

var validate = validator.New()

type ProductService struct {
	Products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{Products: products}
}

type CreateProductInput struct {
	ProductCode         string           `json:"productCode"`
	BrandName           string           `json:"brandName" validate:"required"`
	GenericName         string           `json:"genericName" validate:"required"`
	Strength            string           `json:"strength" validate:"required"`
	DosageForm          string           `json:"dosageForm"`
	PackSize            string           `json:"packSize" validate:"required"`
	Manufacturer        string           `json:"manufacturer"`
	HSNCode             string           `json:"hsnCode" validate:"required,number,min=4,max=8"`
	TherapeuticCategory *string          `json:"therapeuticCategory"`
	ShelfLife           *int             `json:"shelfLife" validate:"omitempty,gte=1,lte=60"`
	IsScheduledDrug     bool             `json:"isScheduledDrug"`
	UnitPrice           *decimal.Decimal `json:"unitPrice"`
	Currency            string           `json:"currency" validate:"omitempty,oneof=INR USD"`
}

type UpdateProductInput struct {
	ProductCode         *string          `json:"productCode"`
	BrandName           *string          `json:"brandName"`
	GenericName         *string          `json:"genericName"`
	Strength            *string          `json:"strength"`
	DosageForm          *string          `json:"dosageForm"`
	PackSize            *string          `json:"packSize"`
	Manufacturer        *string          `json:"manufacturer"`
	HSNCode             *string          `json:"hsnCode" validate:"omitempty,number,min=4,max=8"`
	TherapeuticCategory *string          `json:"therapeuticCategory"`
	ShelfLife           *int             `json:"shelfLife" validate:"omitempty,gte=1,lte=60"`
	IsScheduledDrug     *bool            `json:"isScheduledDrug"`
	UnitPrice           *decimal.Decimal `json:"unitPrice"`
	Currency            *string          `json:"currency" validate:"omitempty,oneof=INR USD"`
}

// significant reports whether the update touches a field that invalidates a
// prior approval (identity-defining product data).
func (in *UpdateProductInput) significant() bool {
	return in.BrandName != nil || in.GenericName != nil || in.Strength != nil ||
		in.DosageForm != nil || in.HSNCode != nil
}

func (s *ProductService) Create(actor models.Actor, in CreateProductInput) (*models.Product, error) {
	if !actor.CanManage() {
		return nil, Forbidden("Only administrators and managers can create products")
	}
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}

	product := &models.Product{
		ProductCode:         in.ProductCode,
		BrandName:           in.BrandName,
		GenericName:         in.GenericName,
		Strength:            in.Strength,
		DosageForm:          in.DosageForm,
		PackSize:            in.PackSize,
		Manufacturer:        in.Manufacturer,
		HSNCode:             in.HSNCode,
		TherapeuticCategory: in.TherapeuticCategory,
		ShelfLife:           in.ShelfLife,
		IsScheduledDrug:     in.IsScheduledDrug,
		UnitPrice:           in.UnitPrice,
		Currency:            currency,
		ApprovalStatus:      models.ApprovalPending,
		CreatedBy:           actor.ID,
	}
	return s.Products.Create(product)
}

// Update merges the partial input onto the stored product. A non-admin
// touching a significant field sends the product back to pending review.
func (s *ProductService) Update(actor models.Actor, id string, in UpdateProductInput) (*models.Product, bool, error) {
	if !actor.CanManage() {
		return nil, false, Forbidden("Only administrators and managers can update products")
	}
	if err := validate.Struct(in); err != nil {
		return nil, false, Invalid(err.Error())
	}

	resetApproval := in.significant() && !actor.IsAdmin()

	product, err := s.Products.Update(id, func(p *models.Product) {
		if in.ProductCode != nil {
			p.ProductCode = *in.ProductCode
		}
		if in.BrandName != nil {
			p.BrandName = *in.BrandName
		}
		if in.GenericName != nil {
			p.GenericName = *in.GenericName
		}
		if in.Strength != nil {
			p.Strength = *in.Strength
		}
		if in.DosageForm != nil {
			p.DosageForm = *in.DosageForm
		}
		if in.PackSize != nil {
			p.PackSize = *in.PackSize
		}
		if in.Manufacturer != nil {
			p.Manufacturer = *in.Manufacturer
		}
		if in.HSNCode != nil {
			p.HSNCode = *in.HSNCode
		}
		if in.TherapeuticCategory != nil {
			p.TherapeuticCategory = in.TherapeuticCategory
		}
		if in.ShelfLife != nil {
			p.ShelfLife = in.ShelfLife
		}
		if in.IsScheduledDrug != nil {
			p.IsScheduledDrug = *in.IsScheduledDrug
		}
		if in.UnitPrice != nil {
			p.UnitPrice = in.UnitPrice
		}
		if in.Currency != nil {
			p.Currency = *in.Currency
		}
		if resetApproval {
			p.ApprovalStatus = models.ApprovalPending
			p.ApprovedBy = nil
			p.ApprovalDate = nil
		}
	})
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, NotFound("Product not found")
	}
	return product, resetApproval, nil
}

func (s *ProductService) Delete(actor models.Actor, id string) error {
	if !actor.IsAdmin() {
		return Forbidden("Only administrators can delete products")
	}
	deleted, err := s.Products.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("Product not found")
	}
	return nil
}

func (s *ProductService) Approve(actor models.Actor, id string) (*models.Product, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("Only administrators can approve products")
	}

	existing, err := s.Products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFound("Product not found")
	}
	if existing.ApprovalStatus != models.ApprovalPending {
		return nil, Conflict("Product is not pending approval")
	}

	now := time.Now().UTC()
	return s.Products.Update(id, func(p *models.Product) {
		p.ApprovalStatus = models.ApprovalApproved
		p.ApprovedBy = &actor.ID
		p.ApprovalDate = &now
		p.RejectionReason = nil
	})
}

func (s *ProductService) Reject(actor models.Actor, id, reason string) (*models.Product, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("Only administrators can reject products")
	}
	if reason == "" {
		return nil, Invalid("Rejection reason is required")
	}

	existing, err := s.Products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFound("Product not found")
	}
	if existing.ApprovalStatus != models.ApprovalPending {
		return nil, Conflict("Product is not pending approval")
	}

	return s.Products.Update(id, func(p *models.Product) {
		p.ApprovalStatus = models.ApprovalRejected
		p.RejectionReason = &reason
		p.ApprovedBy = nil
		p.ApprovalDate = nil
	})
}

func (s *ProductService) PendingApprovals(actor models.Actor, page, limit int) (repository.Page[*models.Product], error) {
	if !actor.IsAdmin() {
		return repository.Page[*models.Product]{}, Forbidden("Only administrators can view pending approvals")
	}
	return s.Products.Paginate(page, limit, func(p *models.Product) bool {
		return p.ApprovalStatus == models.ApprovalPending
	})
}
