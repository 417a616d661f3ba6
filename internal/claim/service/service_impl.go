package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	claimdomain "github.com/reliefdesk/reliefdesk/internal/claim/domain"
	"github.com/reliefdesk/reliefdesk/internal/clock"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
	linkdomain "github.com/reliefdesk/reliefdesk/internal/evidencelink/domain"
	"github.com/reliefdesk/reliefdesk/internal/observability/metrics"
	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	purchasedomain "github.com/reliefdesk/reliefdesk/internal/purchase/domain"
	"github.com/reliefdesk/reliefdesk/pkg/db"
	"github.com/reliefdesk/reliefdesk/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Repo         claimdomain.Repository
	LinkRepo     linkdomain.Repository
	ItemRepo     itemdomain.Repository
	PurchaseRepo purchasedomain.Repository
	Metrics      *metrics.Metrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	repo         claimdomain.Repository
	linkRepo     linkdomain.Repository
	itemRepo     itemdomain.Repository
	purchaseRepo purchasedomain.Repository
	metrics      *metrics.Metrics
}

func New(p Params) claimdomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("claim.service"),
		clock:        p.Clock,
		repo:         p.Repo,
		linkRepo:     p.LinkRepo,
		itemRepo:     p.ItemRepo,
		purchaseRepo: p.PurchaseRepo,
		metrics:      p.Metrics,
	}
}

// Create persists a new claim after the one-in-progress check. The check
// and the insert run in one transaction, and the partial unique index on
// in-progress claims backstops any interleaving the check misses; a
// duplicate-key result is reported the same way as the check failing.
func (s *Service) Create(ctx context.Context, req claimdomain.CreateRequest) (*claimdomain.Response, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	status := claimdomain.Status(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return nil, claimdomain.ErrInvalidStatus
	}

	femaID, err := parseOptionalID(req.FemaDisasterID)
	if err != nil {
		return nil, err
	}
	selfID, err := parseOptionalID(req.SelfDisasterID)
	if err != nil {
		return nil, err
	}
	policyID, err := parseOptionalID(req.InsurancePolicyID)
	if err != nil {
		return nil, err
	}

	if femaID != nil && selfID != nil {
		return nil, claimdomain.ErrDisasterConflict
	}
	// A workflow-step claim may not have chosen its disaster yet. Terminal
	// statuses must reference one.
	if !status.InProgress() && femaID == nil && selfID == nil {
		return nil, claimdomain.ErrDisasterRequired
	}

	now := s.clock.Now().UTC()
	claim := &claimdomain.Claim{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(req.Name),
		Status:            status,
		CompanyID:         companyID,
		FemaDisasterID:    femaID,
		SelfDisasterID:    selfID,
		InsurancePolicyID: policyID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if status.InProgress() {
			existing, err := s.repo.FindInProgress(ctx, tx, companyID)
			if err != nil {
				return err
			}
			if existing != nil {
				return claimdomain.ErrClaimInProgress
			}
		}
		return s.repo.Insert(ctx, tx, claim)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, claimdomain.ErrClaimInProgress
		}
		return nil, err
	}

	s.metrics.RecordClaimCreated(ctx, string(status))
	s.log.Info("claim created",
		zap.String("claim_id", claim.ID.String()),
		zap.String("status", string(status)),
	)

	created, err := s.repo.FindByID(ctx, s.db, companyID, claim.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return claimdomain.ToResponse(claim), nil
	}
	return claimdomain.ToResponse(created), nil
}

func (s *Service) List(ctx context.Context, req claimdomain.ListRequest) (*claimdomain.ListResponse, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	filter := claimdomain.ListFilter{
		CompanyID:    companyID,
		NameContains: strings.TrimSpace(req.NameContains),
		Limit:        req.PageSize,
	}

	if from := strings.TrimSpace(req.CreatedFrom); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, claimdomain.ErrInvalidDateRange
		}
		filter.CreatedFrom = parsed
	}
	if to := strings.TrimSpace(req.CreatedTo); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, claimdomain.ErrInvalidDateRange
		}
		filter.CreatedTo = parsed
	}
	if !filter.CreatedFrom.IsZero() && !filter.CreatedTo.IsZero() && filter.CreatedTo.Before(filter.CreatedFrom) {
		return nil, claimdomain.ErrInvalidDateRange
	}

	if token := strings.TrimSpace(req.PageToken); token != "" {
		cursor, err := pagination.DecodeCursor(token)
		if err != nil {
			return nil, claimdomain.ErrInvalidPageToken
		}
		cursorAt, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
		if err != nil {
			return nil, claimdomain.ErrInvalidPageToken
		}
		cursorID, err := uuid.Parse(cursor.ID)
		if err != nil {
			return nil, claimdomain.ErrInvalidPageToken
		}
		filter.CursorCreatedAt = cursorAt
		filter.CursorID = cursorID
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	filter.Limit = limit

	claims, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	claims, pageInfo := pagination.BuildCursorPageInfo(claims, limit, func(c *claimdomain.Claim) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{
			ID:        c.ID.String(),
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		return token
	})

	resp := &claimdomain.ListResponse{
		Claims:   make([]claimdomain.Response, 0, len(claims)),
		PageInfo: pageInfo,
	}
	for _, c := range claims {
		resp.Claims = append(resp.Claims, *claimdomain.ToResponse(c))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*claimdomain.Response, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	claimID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, claimdomain.ErrInvalidID
	}

	claim, err := s.repo.FindByID(ctx, s.db, companyID, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, claimdomain.ErrNotFound
	}
	return claimdomain.ToResponse(claim), nil
}

// Delete removes the claim only when the requesting company owns it.
// Ownership sits in the delete predicate, so absence and wrong owner are
// indistinguishable to the caller.
func (s *Service) Delete(ctx context.Context, id string) (*claimdomain.DeleteResponse, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	claimID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, claimdomain.ErrInvalidID
	}

	// Bridge rows go with the claim. Postgres cascades on the foreign key;
	// doing it here keeps the behavior dialect-independent.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.repo.Delete(ctx, tx, companyID, claimID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return claimdomain.ErrNotFound
		}
		return s.linkRepo.UnlinkAllForClaim(ctx, tx, claimID)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordClaimDeleted(ctx)
	s.log.Info("claim deleted", zap.String("claim_id", claimID.String()))

	return &claimdomain.DeleteResponse{ID: claimID.String()}, nil
}

// InProgress returns the company's current in-progress claim. Should the
// invariant ever be violated by a data anomaly, the newest claim wins.
// No in-progress claim is a success, not an error.
func (s *Service) InProgress(ctx context.Context) (*claimdomain.Response, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	claim, err := s.repo.FindInProgress(ctx, s.db, companyID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, nil
	}
	return claimdomain.ToResponse(claim), nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req claimdomain.UpdateStatusRequest) (*claimdomain.Response, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	claimID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, claimdomain.ErrInvalidID
	}

	status := claimdomain.Status(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return nil, claimdomain.ErrInvalidStatus
	}

	policyID, err := parseOptionalID(req.InsurancePolicyID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim, err := s.repo.FindByID(ctx, tx, companyID, claimID)
		if err != nil {
			return err
		}
		if claim == nil {
			return claimdomain.ErrNotFound
		}

		// Moving a settled claim back into the workflow hits the same
		// invariant as creation.
		if status.InProgress() && !claim.Status.InProgress() {
			existing, err := s.repo.FindInProgress(ctx, tx, companyID)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != claim.ID {
				return claimdomain.ErrClaimInProgress
			}
		}

		claim.Status = status
		if policyID != nil {
			claim.InsurancePolicyID = policyID
		}
		claim.UpdatedAt = s.clock.Now().UTC()
		return s.repo.Update(ctx, tx, claim)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, claimdomain.ErrClaimInProgress
		}
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, companyID, claimID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, claimdomain.ErrNotFound
	}
	return claimdomain.ToResponse(updated), nil
}

// LinkLineItem adds one bridge pair. Both endpoints must exist; an already
// linked pair is a no-op returning the same success payload.
func (s *Service) LinkLineItem(ctx context.Context, claimID, itemID string) (*claimdomain.LinkResponse, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	cID, iID, err := parseIDPair(claimID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEndpoints(ctx, companyID, cID, &iID); err != nil {
		return nil, err
	}

	link := linkdomain.ClaimEvidenceLink{
		ClaimID:            cID,
		PurchaseLineItemID: iID,
		CreatedAt:          s.clock.Now().UTC(),
	}
	if err := s.linkRepo.Link(ctx, s.db, link); err != nil {
		return nil, err
	}

	s.metrics.RecordEvidenceLinkOp(ctx, "link", 1)

	return &claimdomain.LinkResponse{
		ClaimID:            cID.String(),
		PurchaseLineItemID: iID.String(),
	}, nil
}

// LinkPurchaseItems links every line item of the purchase in one batch. A
// purchase with zero items yields an empty slice, not an error; items
// already linked are left as they are.
func (s *Service) LinkPurchaseItems(ctx context.Context, claimID, purchaseID string) ([]claimdomain.LinkResponse, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	cID, pID, err := parseIDPair(claimID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEndpoints(ctx, companyID, cID, nil); err != nil {
		return nil, err
	}

	purchaseExists, err := s.purchaseRepo.Exists(ctx, s.db, pID)
	if err != nil {
		return nil, err
	}
	if !purchaseExists {
		return nil, claimdomain.ErrNotFound
	}

	items, err := s.itemRepo.ListByPurchase(ctx, s.db, pID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	links := make([]linkdomain.ClaimEvidenceLink, 0, len(items))
	resp := make([]claimdomain.LinkResponse, 0, len(items))
	for i := range items {
		links = append(links, linkdomain.ClaimEvidenceLink{
			ClaimID:            cID,
			PurchaseLineItemID: items[i].ID,
			CreatedAt:          now,
		})
		resp = append(resp, claimdomain.LinkResponse{
			ClaimID:            cID.String(),
			PurchaseLineItemID: items[i].ID.String(),
		})
	}

	if err := s.linkRepo.LinkAll(ctx, s.db, links); err != nil {
		return nil, err
	}

	s.metrics.RecordEvidenceLinkOp(ctx, "link", int64(len(links)))

	return resp, nil
}

func (s *Service) LinkedLineItems(ctx context.Context, claimID string) ([]claimdomain.LineItemResponse, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	cID, err := uuid.Parse(strings.TrimSpace(claimID))
	if err != nil {
		return nil, claimdomain.ErrInvalidID
	}

	if err := s.requireEndpoints(ctx, companyID, cID, nil); err != nil {
		return nil, err
	}

	items, err := s.linkRepo.ListItemsByClaim(ctx, s.db, cID)
	if err != nil {
		return nil, err
	}

	resp := make([]claimdomain.LineItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, claimdomain.ToLineItemResponse(&items[i]))
	}
	return resp, nil
}

// UnlinkLineItem ensures the pair is not linked. Both endpoints must exist,
// the link itself need not: removing an absent pair is vacuously done and
// returns the same success payload.
func (s *Service) UnlinkLineItem(ctx context.Context, claimID, itemID string) (*claimdomain.LinkResponse, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, claimdomain.ErrMissingCompany
	}

	cID, iID, err := parseIDPair(claimID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.requireEndpoints(ctx, companyID, cID, &iID); err != nil {
		return nil, err
	}

	if err := s.linkRepo.Unlink(ctx, s.db, cID, iID); err != nil {
		return nil, err
	}

	s.metrics.RecordEvidenceLinkOp(ctx, "unlink", 1)

	return &claimdomain.LinkResponse{
		ClaimID:            cID.String(),
		PurchaseLineItemID: iID.String(),
	}, nil
}

// requireEndpoints verifies the claim (scoped to the company) and, when
// given, the line item exist. Neither miss is distinguished for callers.
func (s *Service) requireEndpoints(ctx context.Context, companyID, claimID uuid.UUID, itemID *uuid.UUID) error {
	claimExists, err := s.repo.ExistsForCompany(ctx, s.db, companyID, claimID)
	if err != nil {
		return err
	}
	if !claimExists {
		return claimdomain.ErrNotFound
	}

	if itemID != nil {
		itemExists, err := s.itemRepo.Exists(ctx, s.db, *itemID)
		if err != nil {
			return err
		}
		if !itemExists {
			return claimdomain.ErrNotFound
		}
	}
	return nil
}

func parseIDPair(a, b string) (uuid.UUID, uuid.UUID, error) {
	first, err := uuid.Parse(strings.TrimSpace(a))
	if err != nil {
		return uuid.Nil, uuid.Nil, claimdomain.ErrInvalidID
	}
	second, err := uuid.Parse(strings.TrimSpace(b))
	if err != nil {
		return uuid.Nil, uuid.Nil, claimdomain.ErrInvalidID
	}
	return first, second, nil
}

func parseOptionalID(value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return nil, claimdomain.ErrInvalidID
	}
	return &parsed, nil
}
