package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

type BrandService struct {
	Brands       repository.BrandRegistrationRepository
	Integrations repository.FPSIntegrationRepository
}

func NewBrandService(brands repository.BrandRegistrationRepository, integrations repository.FPSIntegrationRepository) *BrandService {
	return &BrandService{Brands: brands, Integrations: integrations}
}

type CreateBrandInput struct {
	BrandName           string             `json:"brandName" validate:"required"`
	BrandCode           string             `json:"brandCode" validate:"required"`
	GenericName         string             `json:"genericName" validate:"required"`
	TherapeuticCategory string             `json:"therapeuticCategory"`
	DosageForm          string             `json:"dosageForm"`
	Strength            string             `json:"strength"`
	PackSizes           []string           `json:"packSizes"`
	ManufacturerID      string             `json:"manufacturerId" validate:"required"`
	FPSDetails          *models.FPSDetails `json:"fpsDetails"`
	RegulatoryStatus    string             `json:"regulatoryStatus"`
	Status              string             `json:"status" validate:"omitempty,oneof=active inactive discontinued under_development"`
}

type UpdateBrandInput struct {
	BrandName           *string            `json:"brandName"`
	BrandCode           *string            `json:"brandCode"`
	GenericName         *string            `json:"genericName"`
	TherapeuticCategory *string            `json:"therapeuticCategory"`
	DosageForm          *string            `json:"dosageForm"`
	Strength            *string            `json:"strength"`
	PackSizes           []string           `json:"packSizes"`
	FPSDetails          *models.FPSDetails `json:"fpsDetails"`
	RegulatoryStatus    *string            `json:"regulatoryStatus"`
	Status              *string            `json:"status" validate:"omitempty,oneof=active inactive discontinued under_development"`
}

func (s *BrandService) Create(in CreateBrandInput) (*models.BrandRegistration, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	if existing, err := s.Brands.FindByBrandName(in.BrandName); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, Conflict("Brand name already registered")
	}
	if existing, err := s.Brands.FindByBrandCode(in.BrandCode); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, Conflict("Brand code already registered")
	}

	status := models.BrandStatus(in.Status)
	if status == "" {
		status = models.BrandUnderDevelopment
	}

	brand := &models.BrandRegistration{
		BrandName:           in.BrandName,
		BrandCode:           in.BrandCode,
		GenericName:         in.GenericName,
		TherapeuticCategory: in.TherapeuticCategory,
		DosageForm:          in.DosageForm,
		Strength:            in.Strength,
		PackSizes:           in.PackSizes,
		ManufacturerID:      in.ManufacturerID,
		FPSDetails:          in.FPSDetails,
		RegulatoryStatus:    in.RegulatoryStatus,
		Status:              status,
		ApprovalWorkflow:    models.ApprovalWorkflow{Status: models.ApprovalPending},
	}
	brand, err := s.Brands.Create(brand)
	if err != nil {
		return nil, err
	}

	// A brand registered with FPS details gets a tracking record immediately
	// so the sync scheduler picks it up.
	if in.FPSDetails != nil && in.FPSDetails.FPSNumber != "" {
		_, err = s.Integrations.Create(&models.FPSIntegration{
			BrandID:       brand.ID,
			FPSSystemID:   in.FPSDetails.FPSNumber,
			SyncStatus:    models.SyncPending,
			AutoSync:      true,
			SyncFrequency: models.SyncDaily,
		})
		if err != nil {
			return nil, err
		}
	}
	return brand, nil
}

func (s *BrandService) Update(id string, in UpdateBrandInput) (*models.BrandRegistration, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	existing, err := s.Brands.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFound("Brand registration not found")
	}

	if in.BrandName != nil && !strings.EqualFold(*in.BrandName, existing.BrandName) {
		if dup, err := s.Brands.FindByBrandName(*in.BrandName); err != nil {
			return nil, err
		} else if dup != nil && dup.ID != id {
			return nil, Conflict("Brand name already registered")
		}
	}
	if in.BrandCode != nil && *in.BrandCode != existing.BrandCode {
		if dup, err := s.Brands.FindByBrandCode(*in.BrandCode); err != nil {
			return nil, err
		} else if dup != nil && dup.ID != id {
			return nil, Conflict("Brand code already registered")
		}
	}

	brand, err := s.Brands.Update(id, func(b *models.BrandRegistration) {
		if in.BrandName != nil {
			b.BrandName = *in.BrandName
		}
		if in.BrandCode != nil {
			b.BrandCode = *in.BrandCode
		}
		if in.GenericName != nil {
			b.GenericName = *in.GenericName
		}
		if in.TherapeuticCategory != nil {
			b.TherapeuticCategory = *in.TherapeuticCategory
		}
		if in.DosageForm != nil {
			b.DosageForm = *in.DosageForm
		}
		if in.Strength != nil {
			b.Strength = *in.Strength
		}
		if in.PackSizes != nil {
			b.PackSizes = in.PackSizes
		}
		if in.FPSDetails != nil {
			b.FPSDetails = in.FPSDetails
		}
		if in.RegulatoryStatus != nil {
			b.RegulatoryStatus = *in.RegulatoryStatus
		}
		if in.Status != nil {
			b.Status = models.BrandStatus(*in.Status)
		}
	})
	if err != nil {
		return nil, err
	}

	// Touching the FPS details invalidates whatever the FPS system last saw.
	if in.FPSDetails != nil {
		integration, err := s.Integrations.FindByBrandID(id)
		if err != nil {
			return nil, err
		}
		if integration != nil {
			_, err = s.Integrations.Update(integration.ID, func(f *models.FPSIntegration) {
				f.SyncStatus = models.SyncOutdated
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return brand, nil
}

// Delete removes the registration and its FPS integration record. The
// integration goes first so a failed brand delete never leaves it orphaned.
func (s *BrandService) Delete(id string) error {
	brand, err := s.Brands.FindByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return NotFound("Brand registration not found")
	}

	integration, err := s.Integrations.FindByBrandID(id)
	if err != nil {
		return err
	}
	if integration != nil {
		if _, err := s.Integrations.Delete(integration.ID); err != nil {
			return err
		}
	}

	_, err = s.Brands.Delete(id)
	return err
}

type BrandFilter struct {
	Status         string
	ApprovalStatus string
	ManufacturerID string
	Search         string
}

func (s *BrandService) List(page, limit int, filter BrandFilter) (repository.Page[*models.BrandRegistration], error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	return s.Brands.Paginate(page, limit, func(b *models.BrandRegistration) bool {
		if filter.Status != "" && string(b.Status) != filter.Status {
			return false
		}
		if filter.ApprovalStatus != "" && string(b.ApprovalWorkflow.Status) != filter.ApprovalStatus {
			return false
		}
		if filter.ManufacturerID != "" && b.ManufacturerID != filter.ManufacturerID {
			return false
		}
		if search != "" {
			if !strings.Contains(strings.ToLower(b.BrandName), search) &&
				!strings.Contains(strings.ToLower(b.GenericName), search) &&
				!strings.Contains(strings.ToLower(b.BrandCode), search) {
				return false
			}
		}
		return true
	})
}

func (s *BrandService) Get(id string) (*models.BrandRegistration, error) {
	brand, err := s.Brands.FindByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, NotFound("Brand registration not found")
	}
	return brand, nil
}

func (s *BrandService) Approve(actor models.Actor, id string) (*models.BrandRegistration, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("Only administrators can approve brand registrations")
	}

	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing.ApprovalWorkflow.Status != models.ApprovalPending {
		return nil, Conflict("Brand registration is not pending approval")
	}

	now := time.Now().UTC()
	return s.Brands.Update(id, func(b *models.BrandRegistration) {
		b.ApprovalWorkflow.Status = models.ApprovalApproved
		b.ApprovalWorkflow.ApprovedBy = &actor.ID
		b.ApprovalWorkflow.ApprovalDate = &now
		b.ApprovalWorkflow.RejectionReason = nil
	})
}

func (s *BrandService) Reject(actor models.Actor, id, reason string) (*models.BrandRegistration, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("Only administrators can reject brand registrations")
	}
	if reason == "" {
		return nil, Invalid("Rejection reason is required")
	}

	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing.ApprovalWorkflow.Status != models.ApprovalPending {
		return nil, Conflict("Brand registration is not pending approval")
	}

	return s.Brands.Update(id, func(b *models.BrandRegistration) {
		b.ApprovalWorkflow.Status = models.ApprovalRejected
		b.ApprovalWorkflow.RejectionReason = &reason
		b.ApprovalWorkflow.ApprovedBy = nil
		b.ApprovalWorkflow.ApprovalDate = nil
	})
}

func (s *BrandService) FPSStatus(brandID string) (*models.FPSIntegration, error) {
	integration, err := s.Integrations.FindByBrandID(brandID)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, NotFound("No FPS integration for this brand")
	}
	return integration, nil
}

// SyncWithFPS pushes the brand's current data to the FPS system and records
// the outcome on the integration. A brand without usable FPS details is a
// recorded failure, not an error.
func (s *BrandService) SyncWithFPS(brandID string) (*models.FPSIntegration, error) {
	brand, err := s.Get(brandID)
	if err != nil {
		return nil, err
	}
	integration, err := s.Integrations.FindByBrandID(brandID)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, NotFound("No FPS integration for this brand")
	}

	now := time.Now().UTC()
	if brand.FPSDetails == nil || brand.FPSDetails.FPSNumber == "" {
		msg := fmt.Sprintf("brand %s has no FPS registration number", brand.BrandCode)
		logrus.WithField("brandId", brandID).Warn("fps sync failed: " + msg)
		return s.Integrations.Update(integration.ID, func(f *models.FPSIntegration) {
			f.SyncStatus = models.SyncFailed
			f.SyncErrors = append(f.SyncErrors, msg)
		})
	}

	logrus.WithFields(logrus.Fields{"brandId": brandID, "fpsNumber": brand.FPSDetails.FPSNumber}).Info("fps sync completed")
	return s.Integrations.Update(integration.ID, func(f *models.FPSIntegration) {
		f.SyncStatus = models.SyncSynced
		f.LastSyncDate = &now
		f.SyncErrors = nil
	})
}

type SyncResult struct {
	BrandID string `json:"brandId"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// SyncAllPending runs due integrations one at a time; a failure on one brand
// does not stop the rest.
func (s *BrandService) SyncAllPending() ([]SyncResult, error) {
	pending, err := s.Integrations.FindPendingSync()
	if err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(pending))
	for _, integration := range pending {
		updated, err := s.SyncWithFPS(integration.BrandID)
		if err != nil {
			results = append(results, SyncResult{BrandID: integration.BrandID, Status: string(models.SyncFailed), Error: err.Error()})
			continue
		}
		res := SyncResult{BrandID: integration.BrandID, Status: string(updated.SyncStatus)}
		if len(updated.SyncErrors) > 0 {
			res.Error = updated.SyncErrors[len(updated.SyncErrors)-1]
		}
		results = append(results, res)
	}
	return results, nil
}
