package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reliefdesk/reliefdesk/internal/clock"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
	selfdomain "github.com/reliefdesk/reliefdesk/internal/selfdisaster/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  selfdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  selfdomain.Repository
}

func New(p Params) selfdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("selfdisaster.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req selfdomain.CreateRequest) (*selfdomain.Response, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, selfdomain.ErrMissingCompany
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, selfdomain.ErrInvalidDescription
	}

	startDate, err := time.Parse(time.RFC3339, strings.TrimSpace(req.StartDate))
	if err != nil {
		return nil, selfdomain.ErrInvalidDate
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.EndDate))
		if err != nil {
			return nil, selfdomain.ErrInvalidDate
		}
		if parsed.Before(startDate) {
			return nil, selfdomain.ErrInvalidDate
		}
		endDate = &parsed
	}

	now := s.clock.Now().UTC()
	disaster := &selfdomain.SelfDeclaredDisaster{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Description: description,
		StartDate:   startDate.UTC(),
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, disaster); err != nil {
		return nil, err
	}

	return selfdomain.ToResponse(disaster), nil
}
