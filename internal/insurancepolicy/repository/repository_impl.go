package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	policydomain "github.com/reliefdesk/reliefdesk/internal/insurancepolicy/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() policydomain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*policydomain.InsurancePolicy, error) {
	var policy policydomain.InsurancePolicy
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}
