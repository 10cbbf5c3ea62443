package services

import (
	"testing"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

var (
	adminActor   = models.Actor{ID: "admin-1", Name: "Admin", Role: "admin"}
	managerActor = models.Actor{ID: "mgr-1", Name: "Manager", Role: "manager"}
	userActor    = models.Actor{ID: "user-1", Name: "User", Role: "user"}
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(repository.NewProductJSONRepo(t.TempDir()))
}

func validProductInput() CreateProductInput {
	return CreateProductInput{
		BrandName:   "Paracet-500",
		GenericName: "Paracetamol",
		Strength:    "500mg",
		DosageForm:  "Tablet",
		PackSize:    "10x10",
		HSNCode:     "300450",
	}
}

func TestProductCreateStartsPending(t *testing.T) {
	svc := newProductService(t)

	product, err := svc.Create(managerActor, validProductInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.ApprovalStatus != models.ApprovalPending {
		t.Fatalf("approvalStatus = %s, want pending", product.ApprovalStatus)
	}
	if product.CreatedBy != managerActor.ID {
		t.Fatalf("createdBy = %s, want %s", product.CreatedBy, managerActor.ID)
	}
	if product.Currency != "INR" {
		t.Fatalf("currency default = %s, want INR", product.Currency)
	}
}

func TestProductCreateRoleGate(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.Create(userActor, validProductInput())
	assertAppError(t, err, 403)
}

func TestProductCreateRejectsBadHSN(t *testing.T) {
	svc := newProductService(t)

	in := validProductInput()
	in.HSNCode = "12AB"
	_, err := svc.Create(managerActor, in)
	assertAppError(t, err, 400)

	in.HSNCode = "123"
	_, err = svc.Create(managerActor, in)
	assertAppError(t, err, 400)
}

func TestProductApproveLifecycle(t *testing.T) {
	svc := newProductService(t)
	product, _ := svc.Create(managerActor, validProductInput())

	if _, err := svc.Approve(managerActor, product.ID); err == nil {
		t.Fatal("manager must not be able to approve")
	}

	approved, err := svc.Approve(adminActor, product.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.ApprovalStatus != models.ApprovalApproved {
		t.Fatalf("status = %s, want approved", approved.ApprovalStatus)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != adminActor.ID {
		t.Fatal("approvedBy not recorded")
	}
	if approved.ApprovalDate == nil {
		t.Fatal("approvalDate not recorded")
	}

	// Approving twice is a conflict, not idempotent.
	_, err = svc.Approve(adminActor, product.ID)
	assertAppError(t, err, 400)
}

func TestProductRejectRequiresReason(t *testing.T) {
	svc := newProductService(t)
	product, _ := svc.Create(managerActor, validProductInput())

	_, err := svc.Reject(adminActor, product.ID, "")
	assertAppError(t, err, 400)

	rejected, err := svc.Reject(adminActor, product.ID, "HSN code does not match dossier")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.ApprovalStatus != models.ApprovalRejected {
		t.Fatalf("status = %s, want rejected", rejected.ApprovalStatus)
	}
	if rejected.RejectionReason == nil || *rejected.RejectionReason == "" {
		t.Fatal("rejection reason not stored")
	}

	// A rejected product cannot be approved without re-submission.
	_, err = svc.Approve(adminActor, product.ID)
	assertAppError(t, err, 400)
}

func TestProductSignificantUpdateResetsApproval(t *testing.T) {
	svc := newProductService(t)
	product, _ := svc.Create(managerActor, validProductInput())
	if _, err := svc.Approve(adminActor, product.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	newStrength := "650mg"
	updated, reset, err := svc.Update(managerActor, product.ID, UpdateProductInput{Strength: &newStrength})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !reset {
		t.Fatal("significant change by a manager must reset approval")
	}
	if updated.ApprovalStatus != models.ApprovalPending {
		t.Fatalf("status = %s, want pending", updated.ApprovalStatus)
	}
	if updated.ApprovedBy != nil || updated.ApprovalDate != nil {
		t.Fatal("approval metadata must be cleared")
	}
}

func TestProductSignificantUpdateByAdminKeepsApproval(t *testing.T) {
	svc := newProductService(t)
	product, _ := svc.Create(managerActor, validProductInput())
	if _, err := svc.Approve(adminActor, product.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	newName := "Paracet Forte"
	updated, reset, err := svc.Update(adminActor, product.ID, UpdateProductInput{BrandName: &newName})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if reset {
		t.Fatal("admin edits must not reset approval")
	}
	if updated.ApprovalStatus != models.ApprovalApproved {
		t.Fatalf("status = %s, want approved", updated.ApprovalStatus)
	}
}

func TestProductInsignificantUpdateKeepsApproval(t *testing.T) {
	svc := newProductService(t)
	product, _ := svc.Create(managerActor, validProductInput())
	if _, err := svc.Approve(adminActor, product.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	newPack := "20x10"
	updated, reset, err := svc.Update(managerActor, product.ID, UpdateProductInput{PackSize: &newPack})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if reset || updated.ApprovalStatus != models.ApprovalApproved {
		t.Fatalf("pack size change reset approval: reset=%v status=%s", reset, updated.ApprovalStatus)
	}
}

func TestProductDeleteAdminOnly(t *testing.T) {
	svc := newProductService(t)
	product, _ := svc.Create(managerActor, validProductInput())

	assertAppError(t, svc.Delete(managerActor, product.ID), 403)
	if err := svc.Delete(adminActor, product.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	assertAppError(t, svc.Delete(adminActor, product.ID), 404)
}

func assertAppError(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Status != status {
		t.Fatalf("status = %d, want %d (%s)", appErr.Status, status, appErr.Message)
	}
}
