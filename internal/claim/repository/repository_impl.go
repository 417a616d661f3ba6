package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	claimdomain "github.com/reliefdesk/reliefdesk/internal/claim/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() claimdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, claim *claimdomain.Claim) error {
	return db.WithContext(ctx).
		Omit("FemaDisaster", "SelfDisaster", "InsurancePolicy").
		Create(claim).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, claim *claimdomain.Claim) error {
	return db.WithContext(ctx).Exec(
		`UPDATE claims
		 SET name = ?, status = ?, insurance_policy_id = ?, updated_at = ?
		 WHERE company_id = ? AND id = ?`,
		claim.Name,
		claim.Status,
		claim.InsurancePolicyID,
		claim.UpdatedAt,
		claim.CompanyID,
		claim.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, companyID, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		Delete(&claimdomain.Claim{})
	return result.RowsAffected, result.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, companyID, id uuid.UUID) (*claimdomain.Claim, error) {
	var claim claimdomain.Claim
	err := db.WithContext(ctx).
		Preload("FemaDisaster").
		Preload("SelfDisaster").
		Preload("InsurancePolicy").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter claimdomain.ListFilter) ([]*claimdomain.Claim, error) {
	query := db.WithContext(ctx).
		Preload("FemaDisaster").
		Preload("SelfDisaster").
		Preload("InsurancePolicy").
		Where("company_id = ?", filter.CompanyID)

	if !filter.CreatedFrom.IsZero() {
		query = query.Where("created_at >= ?", filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		query = query.Where("created_at < ?", filter.CreatedTo)
	}
	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameContains+"%")
	}
	if !filter.CursorCreatedAt.IsZero() {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			filter.CursorCreatedAt, filter.CursorCreatedAt, filter.CursorID,
		)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var claims []*claimdomain.Claim
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit + 1).
		Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *repo) FindInProgress(ctx context.Context, db *gorm.DB, companyID uuid.UUID) (*claimdomain.Claim, error) {
	var claim claimdomain.Claim
	err := db.WithContext(ctx).
		Preload("FemaDisaster").
		Preload("SelfDisaster").
		Preload("InsurancePolicy").
		Where("company_id = ? AND status IN ?", companyID, claimdomain.InProgressStatuses).
		Order("created_at DESC").
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *repo) ExistsForCompany(ctx context.Context, db *gorm.DB, companyID, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&claimdomain.Claim{}).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
