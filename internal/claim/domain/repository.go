package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter narrows and pages a company's claim listing. Cursor fields
// come from a decoded page token; zero values mean unfiltered.
type ListFilter struct {
	CompanyID    uuid.UUID
	CreatedFrom  time.Time
	CreatedTo    time.Time
	NameContains string

	CursorCreatedAt time.Time
	CursorID        uuid.UUID
	Limit           int
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, claim *Claim) error
	Update(ctx context.Context, db *gorm.DB, claim *Claim) error
	// Delete scopes ownership in the predicate and reports rows affected;
	// zero rows covers both absence and wrong owner.
	Delete(ctx context.Context, db *gorm.DB, companyID, id uuid.UUID) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, companyID, id uuid.UUID) (*Claim, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]*Claim, error)
	// FindInProgress returns the most recently created in-progress claim
	// for the company, or nil.
	FindInProgress(ctx context.Context, db *gorm.DB, companyID uuid.UUID) (*Claim, error)
	ExistsForCompany(ctx context.Context, db *gorm.DB, companyID, id uuid.UUID) (bool, error)
}
