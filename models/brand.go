package models

import "time"

type BrandStatus string

const (
	BrandActive           BrandStatus = "active"
	BrandInactive         BrandStatus = "inactive"
	BrandDiscontinued     BrandStatus = "discontinued"
	BrandUnderDevelopment BrandStatus = "under_development"
)

type ApprovalWorkflow struct {
	Status          ApprovalStatus `json:"status"`
	ApprovedBy      *string        `json:"approvedBy,omitempty"`
	ApprovalDate    *time.Time     `json:"approvalDate,omitempty"`
	RejectionReason *string        `json:"rejectionReason,omitempty"`
}

type FPSDetails struct {
	FPSNumber        string     `json:"fpsNumber"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`
}

type BrandRegistration struct {
	Base
	BrandName           string           `json:"brandName"`
	BrandCode           string           `json:"brandCode"`
	GenericName         string           `json:"genericName"`
	TherapeuticCategory string           `json:"therapeuticCategory"`
	DosageForm          string           `json:"dosageForm"`
	Strength            string           `json:"strength"`
	PackSizes           []string         `json:"packSizes"`
	ManufacturerID      string           `json:"manufacturerId"`
	FPSDetails          *FPSDetails      `json:"fpsDetails,omitempty"`
	RegulatoryStatus    string           `json:"regulatoryStatus"`
	Status              BrandStatus      `json:"status"`
	ApprovalWorkflow    ApprovalWorkflow `json:"approvalWorkflow"`
}

type SyncStatus string

const (
	SyncPending  SyncStatus = "pending"
	SyncSynced   SyncStatus = "synced"
	SyncFailed   SyncStatus = "failed"
	SyncOutdated SyncStatus = "outdated"
)

type SyncFrequency string

const (
	SyncRealtime SyncFrequency = "realtime"
	SyncHourly   SyncFrequency = "hourly"
	SyncDaily    SyncFrequency = "daily"
	SyncManual   SyncFrequency = "manual"
)

type FPSIntegration struct {
	Base
	BrandID       string        `json:"brandId"`
	FPSSystemID   string        `json:"fpsSystemId"`
	SyncStatus    SyncStatus    `json:"syncStatus"`
	LastSyncDate  *time.Time    `json:"lastSyncDate,omitempty"`
	SyncErrors    []string      `json:"syncErrors,omitempty"`
	AutoSync      bool          `json:"autoSync"`
	SyncFrequency SyncFrequency `json:"syncFrequency"`
}
