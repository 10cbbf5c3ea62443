package services

import (
	"testing"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

func newBrandService(t *testing.T) (*BrandService, *repository.FPSIntegrationJSONRepo) {
	t.Helper()
	dir := t.TempDir()
	fps := repository.NewFPSIntegrationJSONRepo(dir)
	return NewBrandService(repository.NewBrandRegistrationJSONRepo(dir), fps), fps
}

func validBrandInput() CreateBrandInput {
	return CreateBrandInput{
		BrandName:      "Cardiozen",
		BrandCode:      "CZ-01",
		GenericName:    "Amlodipine",
		ManufacturerID: "mfr-1",
	}
}

func TestBrandCreateRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	svc, _ := newBrandService(t)

	if _, err := svc.Create(validBrandInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := validBrandInput()
	dup.BrandName = "CARDIOZEN"
	dup.BrandCode = "CZ-02"
	_, err := svc.Create(dup)
	assertAppError(t, err, 400)
}

func TestBrandCreateRejectsDuplicateCode(t *testing.T) {
	svc, _ := newBrandService(t)

	if _, err := svc.Create(validBrandInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := validBrandInput()
	dup.BrandName = "Cardiomax"
	_, err := svc.Create(dup)
	assertAppError(t, err, 400)
}

func TestBrandCreateWithFPSDetailsCreatesIntegration(t *testing.T) {
	svc, fps := newBrandService(t)

	in := validBrandInput()
	in.FPSDetails = &models.FPSDetails{FPSNumber: "FPS-9001"}
	brand, err := svc.Create(in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	integration, err := fps.FindByBrandID(brand.ID)
	if err != nil {
		t.Fatalf("FindByBrandID: %v", err)
	}
	if integration == nil {
		t.Fatal("expected integration record for brand with FPS details")
	}
	if integration.SyncStatus != models.SyncPending || !integration.AutoSync || integration.SyncFrequency != models.SyncDaily {
		t.Fatalf("integration defaults wrong: %+v", integration)
	}
}

func TestBrandUpdateFPSDetailsMarksIntegrationOutdated(t *testing.T) {
	svc, fps := newBrandService(t)

	in := validBrandInput()
	in.FPSDetails = &models.FPSDetails{FPSNumber: "FPS-9001"}
	brand, _ := svc.Create(in)

	if _, err := svc.SyncWithFPS(brand.ID); err != nil {
		t.Fatalf("SyncWithFPS: %v", err)
	}

	_, err := svc.Update(brand.ID, UpdateBrandInput{
		FPSDetails: &models.FPSDetails{FPSNumber: "FPS-9002"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	integration, _ := fps.FindByBrandID(brand.ID)
	if integration.SyncStatus != models.SyncOutdated {
		t.Fatalf("syncStatus = %s, want outdated", integration.SyncStatus)
	}
}

func TestBrandUpdateRenameToOwnNameAllowed(t *testing.T) {
	svc, _ := newBrandService(t)
	brand, _ := svc.Create(validBrandInput())

	sameName := "cardiozen"
	if _, err := svc.Update(brand.ID, UpdateBrandInput{BrandName: &sameName}); err != nil {
		t.Fatalf("case-only rename of own brand must pass uniqueness: %v", err)
	}
}

func TestBrandDeleteCascadesIntegration(t *testing.T) {
	svc, fps := newBrandService(t)

	in := validBrandInput()
	in.FPSDetails = &models.FPSDetails{FPSNumber: "FPS-9001"}
	brand, _ := svc.Create(in)

	if err := svc.Delete(brand.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	integration, err := fps.FindByBrandID(brand.ID)
	if err != nil {
		t.Fatalf("FindByBrandID: %v", err)
	}
	if integration != nil {
		t.Fatal("integration must be removed with its brand")
	}
	if got, _ := svc.Brands.FindByID(brand.ID); got != nil {
		t.Fatal("brand must be removed")
	}

	assertAppError(t, svc.Delete("missing"), 404)
}

func TestBrandSyncRecordsFailureWithoutFPSNumber(t *testing.T) {
	svc, fps := newBrandService(t)

	brand, _ := svc.Create(validBrandInput())
	// No FPS details on the brand, but an integration exists (e.g. created
	// before the details were cleared).
	if _, err := fps.Create(&models.FPSIntegration{
		BrandID: brand.ID, SyncStatus: models.SyncPending, AutoSync: true, SyncFrequency: models.SyncDaily,
	}); err != nil {
		t.Fatal(err)
	}

	integration, err := svc.SyncWithFPS(brand.ID)
	if err != nil {
		t.Fatalf("SyncWithFPS: %v", err)
	}
	if integration.SyncStatus != models.SyncFailed {
		t.Fatalf("syncStatus = %s, want failed", integration.SyncStatus)
	}
	if len(integration.SyncErrors) == 0 {
		t.Fatal("expected sync error recorded")
	}
	if integration.LastSyncDate != nil {
		t.Fatal("failed sync must not set lastSyncDate")
	}
}

func TestBrandSyncSuccessClearsErrors(t *testing.T) {
	svc, _ := newBrandService(t)

	in := validBrandInput()
	in.FPSDetails = &models.FPSDetails{FPSNumber: "FPS-9001"}
	brand, _ := svc.Create(in)

	integration, err := svc.SyncWithFPS(brand.ID)
	if err != nil {
		t.Fatalf("SyncWithFPS: %v", err)
	}
	if integration.SyncStatus != models.SyncSynced {
		t.Fatalf("syncStatus = %s, want synced", integration.SyncStatus)
	}
	if integration.LastSyncDate == nil {
		t.Fatal("lastSyncDate not set")
	}
	if len(integration.SyncErrors) != 0 {
		t.Fatalf("sync errors not cleared: %v", integration.SyncErrors)
	}
}

func TestBrandSyncAllPendingCollectsResults(t *testing.T) {
	svc, _ := newBrandService(t)

	withFPS := validBrandInput()
	withFPS.FPSDetails = &models.FPSDetails{FPSNumber: "FPS-9001"}
	if _, err := svc.Create(withFPS); err != nil {
		t.Fatal(err)
	}

	second := validBrandInput()
	second.BrandName = "Cardiomax"
	second.BrandCode = "CZ-02"
	second.FPSDetails = &models.FPSDetails{FPSNumber: "FPS-9002"}
	if _, err := svc.Create(second); err != nil {
		t.Fatal(err)
	}

	results, err := svc.SyncAllPending()
	if err != nil {
		t.Fatalf("SyncAllPending: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, res := range results {
		if res.Status != string(models.SyncSynced) {
			t.Fatalf("unexpected result: %+v", res)
		}
	}
}
