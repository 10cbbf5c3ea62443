package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

func newPricingFixture(t *testing.T) (*PricingService, *models.Product) {
	t.Helper()
	dir := t.TempDir()
	products := repository.NewProductJSONRepo(dir)
	product, err := products.Create(&models.Product{BrandName: "Paracet-500", GenericName: "Paracetamol"})
	if err != nil {
		t.Fatal(err)
	}
	return NewPricingService(repository.NewPricingJSONRepo(dir), products), product
}

func TestPricingCreateDeactivatesPreviousOfSameType(t *testing.T) {
	svc, product := newPricingFixture(t)

	first, err := svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	procurement, err := svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "procurement", BasePrice: decimal.NewFromInt(60),
	})
	if err != nil {
		t.Fatalf("Create procurement: %v", err)
	}

	second, err := svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if !second.IsActive {
		t.Fatal("new price must be active")
	}

	old, _ := svc.Pricing.FindByID(first.ID)
	if old.IsActive {
		t.Fatal("previous selling price must be deactivated")
	}
	other, _ := svc.Pricing.FindByID(procurement.ID)
	if !other.IsActive {
		t.Fatal("procurement price must be untouched")
	}
}

func TestPricingCreateByAdminIsAutoApproved(t *testing.T) {
	svc, product := newPricingFixture(t)

	byAdmin, err := svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if byAdmin.ApprovedBy == nil || *byAdmin.ApprovedBy != adminActor.ID {
		t.Fatal("admin-created price must be approved immediately")
	}

	byManager, err := svc.Create(managerActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "market", BasePrice: decimal.NewFromInt(110),
	})
	if err != nil {
		t.Fatalf("Create by manager: %v", err)
	}
	if byManager.ApprovedBy != nil {
		t.Fatal("manager-created price must await approval")
	}
	if byManager.Currency != "INR" {
		t.Fatalf("currency default = %s, want INR", byManager.Currency)
	}
}

func TestPricingCreateRequiresManagerRole(t *testing.T) {
	svc, product := newPricingFixture(t)

	_, err := svc.Create(userActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(10),
	})
	assertAppError(t, err, 403)

	if _, err := svc.Create(managerActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(10),
	}); err != nil {
		t.Fatalf("manager create: %v", err)
	}
}

func TestPricingCreateValidation(t *testing.T) {
	svc, product := newPricingFixture(t)

	_, err := svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.Zero,
	})
	assertAppError(t, err, 400)

	_, err = svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "wholesale", BasePrice: decimal.NewFromInt(10),
	})
	assertAppError(t, err, 400)

	_, err = svc.Create(adminActor, CreatePricingInput{
		ProductID: "missing", PriceType: "selling", BasePrice: decimal.NewFromInt(10),
	})
	assertAppError(t, err, 404)
}

func TestPricingUpdate(t *testing.T) {
	svc, product := newPricingFixture(t)

	row, err := svc.Create(adminActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPrice := decimal.NewFromInt(150)
	updated, err := svc.Update(managerActor, row.ID, UpdatePricingInput{BasePrice: &newPrice})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.BasePrice.Equal(newPrice) {
		t.Fatalf("basePrice = %v, want 150", updated.BasePrice)
	}

	_, err = svc.Update(userActor, row.ID, UpdatePricingInput{BasePrice: &newPrice})
	assertAppError(t, err, 403)

	zero := decimal.Zero
	_, err = svc.Update(adminActor, row.ID, UpdatePricingInput{BasePrice: &zero})
	assertAppError(t, err, 400)

	_, err = svc.Update(adminActor, "missing", UpdatePricingInput{BasePrice: &newPrice})
	assertAppError(t, err, 404)
}

func TestPricingApproveAdminOnlyAndOnce(t *testing.T) {
	svc, product := newPricingFixture(t)

	row, err := svc.Create(managerActor, CreatePricingInput{
		ProductID: product.ID, PriceType: "selling", BasePrice: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Approve(managerActor, row.ID)
	assertAppError(t, err, 403)

	approved, err := svc.Approve(adminActor, row.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != adminActor.ID {
		t.Fatal("approvedBy not recorded")
	}

	_, err = svc.Approve(adminActor, row.ID)
	assertAppError(t, err, 400)
}
