package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FemaDisaster mirrors a federally declared disaster from the FEMA
// OpenFEMA feed. Raw holds the upstream payload as delivered so fields the
// schema does not model survive re-syncs.
type FemaDisaster struct {
	ID                      uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	DisasterNumber          int            `json:"disaster_number" gorm:"not null;uniqueIndex"`
	DeclarationDate         time.Time      `json:"declaration_date" gorm:"not null"`
	IncidentBeginDate       *time.Time     `json:"incident_begin_date,omitempty"`
	IncidentEndDate         *time.Time     `json:"incident_end_date,omitempty"`
	DesignatedArea          string         `json:"designated_area" gorm:"type:text;not null"`
	DesignatedIncidentTypes string         `json:"designated_incident_types" gorm:"type:text;not null"`
	Raw                     datatypes.JSON `json:"-" gorm:"type:jsonb"`
	CreatedAt               time.Time      `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt               time.Time      `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (FemaDisaster) TableName() string { return "fema_disasters" }
