package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nagraajm/bls-exportpro/models"
)

func seedPricing(t *testing.T, repo *PricingJSONRepo, productID string, priceType models.PriceType, active bool) *models.ProductPricing {
	t.Helper()
	row, err := repo.Create(&models.ProductPricing{
		ProductID:     productID,
		PriceType:     priceType,
		BasePrice:     decimal.NewFromInt(100),
		Currency:      "INR",
		EffectiveFrom: time.Now().UTC().Add(-time.Hour),
		IsActive:      active,
		CreatedBy:     "u1",
	})
	if err != nil {
		t.Fatalf("seed pricing: %v", err)
	}
	return row
}

func TestDeactivatePreviousScopedToProductAndType(t *testing.T) {
	repo := NewPricingJSONRepo(t.TempDir())

	target := seedPricing(t, repo, "p1", models.PriceSelling, true)
	otherType := seedPricing(t, repo, "p1", models.PriceProcurement, true)
	otherProduct := seedPricing(t, repo, "p2", models.PriceSelling, true)

	if err := repo.DeactivatePrevious("p1", models.PriceSelling); err != nil {
		t.Fatalf("DeactivatePrevious: %v", err)
	}

	got, _ := repo.FindByID(target.ID)
	if got.IsActive {
		t.Fatal("target row should be deactivated")
	}
	got, _ = repo.FindByID(otherType.ID)
	if !got.IsActive {
		t.Fatal("other price type must stay active")
	}
	got, _ = repo.FindByID(otherProduct.ID)
	if !got.IsActive {
		t.Fatal("other product must stay active")
	}
}

func TestActivePricingRespectsEffectiveWindow(t *testing.T) {
	repo := NewPricingJSONRepo(t.TempDir())
	now := time.Now().UTC()
	past := now.Add(-48 * time.Hour)
	expired := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	if _, err := repo.Create(&models.ProductPricing{
		ProductID: "p1", PriceType: models.PriceSelling, BasePrice: decimal.NewFromInt(10),
		EffectiveFrom: past, IsActive: true, CreatedBy: "u1",
	}); err != nil {
		t.Fatal(err)
	}
	// Window already closed.
	if _, err := repo.Create(&models.ProductPricing{
		ProductID: "p1", PriceType: models.PriceSelling, BasePrice: decimal.NewFromInt(20),
		EffectiveFrom: past, EffectiveTo: &expired, IsActive: true, CreatedBy: "u1",
	}); err != nil {
		t.Fatal(err)
	}
	// Not yet effective.
	if _, err := repo.Create(&models.ProductPricing{
		ProductID: "p1", PriceType: models.PriceSelling, BasePrice: decimal.NewFromInt(30),
		EffectiveFrom: future, IsActive: true, CreatedBy: "u1",
	}); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.ActivePricing("p1", models.PriceSelling)
	if err != nil {
		t.Fatalf("ActivePricing: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d active rows, want 1", len(rows))
	}
	if !rows[0].BasePrice.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("wrong row survived the window filter: %v", rows[0].BasePrice)
	}
}

func TestFindPendingSyncIntervals(t *testing.T) {
	repo := NewFPSIntegrationJSONRepo(t.TempDir())
	now := time.Now().UTC()
	twoHoursAgo := now.Add(-2 * time.Hour)
	tenMinutesAgo := now.Add(-10 * time.Minute)

	neverSynced, _ := repo.Create(&models.FPSIntegration{
		BrandID: "b1", SyncStatus: models.SyncPending, AutoSync: true, SyncFrequency: models.SyncDaily,
	})
	hourlyDue, _ := repo.Create(&models.FPSIntegration{
		BrandID: "b2", SyncStatus: models.SyncSynced, AutoSync: true,
		SyncFrequency: models.SyncHourly, LastSyncDate: &twoHoursAgo,
	})
	if _, err := repo.Create(&models.FPSIntegration{
		BrandID: "b3", SyncStatus: models.SyncSynced, AutoSync: true,
		SyncFrequency: models.SyncDaily, LastSyncDate: &tenMinutesAgo,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(&models.FPSIntegration{
		BrandID: "b4", SyncStatus: models.SyncPending, AutoSync: true,
		SyncFrequency: models.SyncManual, LastSyncDate: &twoHoursAgo,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(&models.FPSIntegration{
		BrandID: "b5", SyncStatus: models.SyncPending, AutoSync: false, SyncFrequency: models.SyncRealtime,
	}); err != nil {
		t.Fatal(err)
	}

	due, err := repo.FindPendingSync()
	if err != nil {
		t.Fatalf("FindPendingSync: %v", err)
	}

	dueIDs := map[string]bool{}
	for _, f := range due {
		dueIDs[f.ID] = true
	}
	if len(due) != 2 || !dueIDs[neverSynced.ID] || !dueIDs[hourlyDue.ID] {
		t.Fatalf("due = %v, want exactly never-synced and overdue-hourly", dueIDs)
	}
}
