package repository

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/nagraajm/bls-exportpro/models"
)

type BrandRegistrationRepository interface {
	Repository[*models.BrandRegistration]
	FindByBrandName(brandName string) (*models.BrandRegistration, error)
	FindByBrandCode(brandCode string) (*models.BrandRegistration, error)
	FindByManufacturer(manufacturerID string) ([]*models.BrandRegistration, error)
	FindByStatus(status models.BrandStatus) ([]*models.BrandRegistration, error)
	FindByApprovalStatus(status models.ApprovalStatus) ([]*models.BrandRegistration, error)
}

type BrandRegistrationJSONRepo struct {
	*JSONStore[*models.BrandRegistration]
}

func NewBrandRegistrationJSONRepo(dataDir string) *BrandRegistrationJSONRepo {
	return &BrandRegistrationJSONRepo{NewJSONStore[*models.BrandRegistration](filepath.Join(dataDir, "brand-registrations.json"))}
}

// FindByBrandName matches case-insensitively; brand names are unique
// regardless of casing.
func (r *BrandRegistrationJSONRepo) FindByBrandName(brandName string) (*models.BrandRegistration, error) {
	return r.FindOne(func(b *models.BrandRegistration) bool {
		return strings.EqualFold(b.BrandName, brandName)
	})
}

func (r *BrandRegistrationJSONRepo) FindByBrandCode(brandCode string) (*models.BrandRegistration, error) {
	return r.FindOne(func(b *models.BrandRegistration) bool { return b.BrandCode == brandCode })
}

func (r *BrandRegistrationJSONRepo) FindByManufacturer(manufacturerID string) ([]*models.BrandRegistration, error) {
	return r.Find(func(b *models.BrandRegistration) bool { return b.ManufacturerID == manufacturerID })
}

func (r *BrandRegistrationJSONRepo) FindByStatus(status models.BrandStatus) ([]*models.BrandRegistration, error) {
	return r.Find(func(b *models.BrandRegistration) bool { return b.Status == status })
}

func (r *BrandRegistrationJSONRepo) FindByApprovalStatus(status models.ApprovalStatus) ([]*models.BrandRegistration, error) {
	return r.Find(func(b *models.BrandRegistration) bool { return b.ApprovalWorkflow.Status == status })
}

type FPSIntegrationRepository interface {
	Repository[*models.FPSIntegration]
	FindByBrandID(brandID string) (*models.FPSIntegration, error)
	FindBySyncStatus(status models.SyncStatus) ([]*models.FPSIntegration, error)
	FindPendingSync() ([]*models.FPSIntegration, error)
}

type FPSIntegrationJSONRepo struct {
	*JSONStore[*models.FPSIntegration]
}

func NewFPSIntegrationJSONRepo(dataDir string) *FPSIntegrationJSONRepo {
	return &FPSIntegrationJSONRepo{NewJSONStore[*models.FPSIntegration](filepath.Join(dataDir, "fps-integrations.json"))}
}

func (r *FPSIntegrationJSONRepo) FindByBrandID(brandID string) (*models.FPSIntegration, error) {
	return r.FindOne(func(f *models.FPSIntegration) bool { return f.BrandID == brandID })
}

func (r *FPSIntegrationJSONRepo) FindBySyncStatus(status models.SyncStatus) ([]*models.FPSIntegration, error) {
	return r.Find(func(f *models.FPSIntegration) bool { return f.SyncStatus == status })
}

// FindPendingSync selects integrations due for an automatic sync: autoSync
// enabled and either never synced or past the frequency interval. Manual
// integrations are never auto-due.
func (r *FPSIntegrationJSONRepo) FindPendingSync() ([]*models.FPSIntegration, error) {
	now := time.Now().UTC()
	return r.Find(func(f *models.FPSIntegration) bool {
		if !f.AutoSync {
			return false
		}
		if f.LastSyncDate == nil {
			return true
		}
		interval, ok := syncInterval(f.SyncFrequency)
		if !ok {
			return false
		}
		return now.Sub(*f.LastSyncDate) >= interval
	})
}

func syncInterval(freq models.SyncFrequency) (time.Duration, bool) {
	switch freq {
	case models.SyncRealtime:
		return 0, true
	case models.SyncHourly:
		return time.Hour, true
	case models.SyncDaily:
		return 24 * time.Hour, true
	default: // manual
		return 0, false
	}
}
