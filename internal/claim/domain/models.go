package domain

import (
	"time"

	"github.com/google/uuid"
	femadomain "github.com/reliefdesk/reliefdesk/internal/femadisaster/domain"
	policydomain "github.com/reliefdesk/reliefdesk/internal/insurancepolicy/domain"
	selfdomain "github.com/reliefdesk/reliefdesk/internal/selfdisaster/domain"
)

// Status is a claim workflow state. The workflow step statuses are
// "in progress"; ACTIVE and FILED are terminal.
type Status string

const (
	StatusDisasterSelection Status = "DISASTER_SELECTION"
	StatusImpactedLocations Status = "IMPACTED_LOCATIONS"
	StatusExpenseSelection  Status = "EXPENSE_SELECTION"
	StatusInsuranceDetails  Status = "INSURANCE_DETAILS"
	StatusReview            Status = "REVIEW"
	StatusActive            Status = "ACTIVE"
	StatusFiled             Status = "FILED"
)

// InProgressStatuses is the set of statuses covered by the one-in-progress
// per company rule. Must stay in sync with the partial unique index
// claims_one_in_progress_per_company.
var InProgressStatuses = []Status{
	StatusDisasterSelection,
	StatusImpactedLocations,
	StatusExpenseSelection,
	StatusInsuranceDetails,
	StatusReview,
}

func (s Status) Valid() bool {
	switch s {
	case StatusDisasterSelection, StatusImpactedLocations, StatusExpenseSelection,
		StatusInsuranceDetails, StatusReview, StatusActive, StatusFiled:
		return true
	}
	return false
}

func (s Status) InProgress() bool {
	for _, candidate := range InProgressStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Claim is one company's request for disaster-relief consideration, tied to
// exactly one triggering disaster (FEMA-declared or self-declared).
type Claim struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string     `json:"name" gorm:"type:text;not null"`
	Status            Status     `json:"status" gorm:"type:text;not null"`
	CompanyID         uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	FemaDisasterID    *uuid.UUID `json:"fema_disaster_id,omitempty" gorm:"type:uuid"`
	SelfDisasterID    *uuid.UUID `json:"self_disaster_id,omitempty" gorm:"type:uuid"`
	InsurancePolicyID *uuid.UUID `json:"insurance_policy_id,omitempty" gorm:"type:uuid"`
	CreatedAt         time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	FemaDisaster    *femadomain.FemaDisaster         `json:"fema_disaster,omitempty" gorm:"foreignKey:FemaDisasterID"`
	SelfDisaster    *selfdomain.SelfDeclaredDisaster `json:"self_disaster,omitempty" gorm:"foreignKey:SelfDisasterID"`
	InsurancePolicy *policydomain.InsurancePolicy    `json:"insurance_policy,omitempty" gorm:"foreignKey:InsurancePolicyID"`
}

// TableName sets the database table name.
func (Claim) TableName() string { return "claims" }
