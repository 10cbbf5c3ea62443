package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Product struct {
	Base
	ProductCode         string           `json:"productCode" db:"product_code"`
	BrandName           string           `json:"brandName" db:"brand_name"`
	GenericName         string           `json:"genericName" db:"generic_name"`
	Strength            string           `json:"strength" db:"strength"`
	DosageForm          string           `json:"dosageForm" db:"dosage_form"`
	PackSize            string           `json:"packSize" db:"pack_size"`
	Manufacturer        string           `json:"manufacturer" db:"manufacturer"`
	HSNCode             string           `json:"hsnCode" db:"hsn_code"`
	TherapeuticCategory *string          `json:"therapeuticCategory,omitempty" db:"therapeutic_category"`
	ShelfLife           *int             `json:"shelfLife,omitempty" db:"shelf_life"`
	IsScheduledDrug     bool             `json:"isScheduledDrug" db:"is_scheduled_drug"`
	UnitPrice           *decimal.Decimal `json:"unitPrice,omitempty" db:"unit_price"`
	Currency            string           `json:"currency" db:"currency"`
	ApprovalStatus      ApprovalStatus   `json:"approvalStatus" db:"approval_status"`
	ApprovedBy          *string          `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovalDate        *time.Time       `json:"approvalDate,omitempty" db:"approval_date"`
	RejectionReason     *string          `json:"rejectionReason,omitempty" db:"rejection_reason"`
	CreatedBy           string           `json:"createdBy" db:"created_by"`
}
