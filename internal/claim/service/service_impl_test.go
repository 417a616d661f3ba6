package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	claimdomain "github.com/reliefdesk/reliefdesk/internal/claim/domain"
	"github.com/reliefdesk/reliefdesk/internal/claim/repository"
	"github.com/reliefdesk/reliefdesk/internal/clock"
	companydomain "github.com/reliefdesk/reliefdesk/internal/company/domain"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
	linkdomain "github.com/reliefdesk/reliefdesk/internal/evidencelink/domain"
	linkrepository "github.com/reliefdesk/reliefdesk/internal/evidencelink/repository"
	femadomain "github.com/reliefdesk/reliefdesk/internal/femadisaster/domain"
	policydomain "github.com/reliefdesk/reliefdesk/internal/insurancepolicy/domain"
	purchasedomain "github.com/reliefdesk/reliefdesk/internal/purchase/domain"
	purchaserepository "github.com/reliefdesk/reliefdesk/internal/purchase/repository"
	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	itemrepository "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/repository"
	selfdomain "github.com/reliefdesk/reliefdesk/internal/selfdisaster/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupClaimService(t *testing.T) (claimdomain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := conn.AutoMigrate(
		&companydomain.Company{},
		&femadomain.FemaDisaster{},
		&selfdomain.SelfDeclaredDisaster{},
		&policydomain.InsurancePolicy{},
		&purchasedomain.Purchase{},
		&itemdomain.PurchaseLineItem{},
		&claimdomain.Claim{},
		&linkdomain.ClaimEvidenceLink{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// Mirror the production backstop for the one-in-progress rule.
	if err := conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS claims_one_in_progress_per_company
		ON claims (company_id)
		WHERE status IN ('DISASTER_SELECTION', 'IMPACTED_LOCATIONS', 'EXPENSE_SELECTION', 'INSURANCE_DETAILS', 'REVIEW')`).Error; err != nil {
		t.Fatalf("create index: %v", err)
	}

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:           conn,
		Log:          zap.NewNop(),
		Clock:        fake,
		Repo:         repository.Provide(),
		LinkRepo:     linkrepository.Provide(),
		ItemRepo:     itemrepository.Provide(),
		PurchaseRepo: purchaserepository.Provide(),
	})

	return svc, conn, fake
}

func seedCompany(t *testing.T, conn *gorm.DB) uuid.UUID {
	t.Helper()
	company := companydomain.Company{ID: uuid.New(), Name: "Cape Fear Coffee Co."}
	if err := conn.Create(&company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return company.ID
}

func seedFemaDisaster(t *testing.T, conn *gorm.DB, number int) uuid.UUID {
	t.Helper()
	disaster := femadomain.FemaDisaster{
		ID:                      uuid.New(),
		DisasterNumber:          number,
		DeclarationDate:         time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		DesignatedArea:          "New Hanover (County)",
		DesignatedIncidentTypes: "Hurricane",
	}
	if err := conn.Create(&disaster).Error; err != nil {
		t.Fatalf("seed fema disaster: %v", err)
	}
	return disaster.ID
}

func seedPurchaseWithItems(t *testing.T, conn *gorm.DB, companyID uuid.UUID, itemCount int) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	purchase := purchasedomain.Purchase{ID: uuid.New(), CompanyID: companyID, TotalCents: 12500}
	if err := conn.Create(&purchase).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	itemIDs := make([]uuid.UUID, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		item := itemdomain.PurchaseLineItem{
			ID:          uuid.New(),
			PurchaseID:  purchase.ID,
			AmountCents: int64(1000 * (i + 1)),
			Type:        itemdomain.TypeTypical,
			CreatedAt:   time.Date(2025, 5, 1, 0, 0, i, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 5, 1, 0, 0, i, 0, time.UTC),
		}
		if err := conn.Create(&item).Error; err != nil {
			t.Fatalf("seed line item: %v", err)
		}
		itemIDs = append(itemIDs, item.ID)
	}
	return purchase.ID, itemIDs
}

func companyContext(companyID uuid.UUID) context.Context {
	return companyctx.WithCompanyID(context.Background(), companyID)
}

func TestCreateClaimRoundTrip(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	resp, err := svc.Create(ctx, claimdomain.CreateRequest{
		Name:   "Hurricane damage",
		Status: "DISASTER_SELECTION",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Status != "DISASTER_SELECTION" {
		t.Fatalf("expected status DISASTER_SELECTION, got %s", resp.Status)
	}
	if resp.CompanyID != companyID.String() {
		t.Fatalf("expected company %s, got %s", companyID, resp.CompanyID)
	}
	if _, err := time.Parse(time.RFC3339, resp.CreatedAt); err != nil {
		t.Fatalf("created_at not RFC3339: %q", resp.CreatedAt)
	}
	if resp.FemaDisaster != nil || resp.SelfDisaster != nil || resp.InsurancePolicy != nil {
		t.Fatalf("expected absent associations to be omitted")
	}

	got, err := svc.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != resp.ID || got.Name != "Hurricane damage" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateSecondInProgressRejected(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	disasterID := seedFemaDisaster(t, conn, 4798)
	ctx := companyContext(companyID)

	if _, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"}); err != nil {
		t.Fatalf("create first: %v", err)
	}

	_, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "REVIEW"})
	if err != claimdomain.ErrClaimInProgress {
		t.Fatalf("expected ErrClaimInProgress, got %v", err)
	}

	// Terminal claims are outside the rule.
	femaID := disasterID.String()
	if _, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "FILED", FemaDisasterID: &femaID}); err != nil {
		t.Fatalf("create terminal: %v", err)
	}

	// A different company is unaffected.
	otherCompany := seedCompany(t, conn)
	if _, err := svc.Create(companyContext(otherCompany), claimdomain.CreateRequest{Status: "REVIEW"}); err != nil {
		t.Fatalf("create for other company: %v", err)
	}
}

func TestCreateDisasterRules(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	femaID := seedFemaDisaster(t, conn, 4799).String()
	selfID := uuid.New().String()

	_, err := svc.Create(ctx, claimdomain.CreateRequest{
		Status:         "ACTIVE",
		FemaDisasterID: &femaID,
		SelfDisasterID: &selfID,
	})
	if err != claimdomain.ErrDisasterConflict {
		t.Fatalf("expected ErrDisasterConflict, got %v", err)
	}

	_, err = svc.Create(ctx, claimdomain.CreateRequest{Status: "ACTIVE"})
	if err != claimdomain.ErrDisasterRequired {
		t.Fatalf("expected ErrDisasterRequired, got %v", err)
	}

	// In-progress claims can defer the disaster choice.
	if _, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "DISASTER_SELECTION"}); err != nil {
		t.Fatalf("create without disaster: %v", err)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	if _, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "SETTLED"}); err != claimdomain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	badID := "not-a-uuid"
	if _, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "REVIEW", FemaDisasterID: &badID}); err != claimdomain.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	if _, err := svc.Create(context.Background(), claimdomain.CreateRequest{Status: "REVIEW"}); err != claimdomain.ErrMissingCompany {
		t.Fatalf("expected ErrMissingCompany, got %v", err)
	}
}

func TestUpdateStatusReentersInvariant(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	femaID := seedFemaDisaster(t, conn, 4800).String()
	filed, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "FILED", FemaDisasterID: &femaID})
	if err != nil {
		t.Fatalf("create filed: %v", err)
	}

	open, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create open: %v", err)
	}

	// Reopening the filed claim collides with the open one.
	_, err = svc.UpdateStatus(ctx, filed.ID, claimdomain.UpdateStatusRequest{Status: "REVIEW"})
	if err != claimdomain.ErrClaimInProgress {
		t.Fatalf("expected ErrClaimInProgress, got %v", err)
	}

	// Advancing the open claim within the workflow is fine.
	updated, err := svc.UpdateStatus(ctx, open.ID, claimdomain.UpdateStatusRequest{Status: "REVIEW"})
	if err != nil {
		t.Fatalf("update open: %v", err)
	}
	if updated.Status != "REVIEW" {
		t.Fatalf("expected REVIEW, got %s", updated.Status)
	}

	// Once the open claim settles, reopening the filed one succeeds.
	if _, err := svc.UpdateStatus(ctx, open.ID, claimdomain.UpdateStatusRequest{Status: "ACTIVE"}); err != nil {
		t.Fatalf("settle open: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, filed.ID, claimdomain.UpdateStatusRequest{Status: "REVIEW"}); err != nil {
		t.Fatalf("reopen filed: %v", err)
	}
}

func TestDeleteScopedToCompany(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	otherID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	created, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "REVIEW"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Delete(companyContext(otherID), created.ID); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign company, got %v", err)
	}

	resp, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.ID != created.ID {
		t.Fatalf("expected deleted id %s, got %s", created.ID, resp.ID)
	}

	if _, err := svc.Delete(ctx, created.ID); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestInProgressNilWhenNone(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	resp, err := svc.InProgress(ctx)
	if err != nil {
		t.Fatalf("in progress: %v", err)
	}
	if resp != nil {
		t.Fatalf("expected nil, got %+v", resp)
	}

	created, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "INSURANCE_DETAILS"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	resp, err = svc.InProgress(ctx)
	if err != nil {
		t.Fatalf("in progress: %v", err)
	}
	if resp == nil || resp.ID != created.ID {
		t.Fatalf("expected claim %s, got %+v", created.ID, resp)
	}
}

func TestInProgressNewestWinsOnAnomaly(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	// Simulate data that predates the unique index, where two in-progress
	// claims coexist for one company.
	if err := conn.Exec(`DROP INDEX claims_one_in_progress_per_company`).Error; err != nil {
		t.Fatalf("drop index: %v", err)
	}

	older := claimdomain.Claim{
		ID:        uuid.New(),
		Status:    claimdomain.StatusReview,
		CompanyID: companyID,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := claimdomain.Claim{
		ID:        uuid.New(),
		Status:    claimdomain.StatusDisasterSelection,
		CompanyID: companyID,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := conn.Create(&older).Error; err != nil {
		t.Fatalf("seed older claim: %v", err)
	}
	if err := conn.Create(&newer).Error; err != nil {
		t.Fatalf("seed newer claim: %v", err)
	}

	resp, err := svc.InProgress(ctx)
	if err != nil {
		t.Fatalf("in progress: %v", err)
	}
	if resp == nil || resp.ID != newer.ID.String() {
		t.Fatalf("expected newest claim %s, got %+v", newer.ID, resp)
	}
}

func TestDeleteRemovesEvidenceLinks(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	claim, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	_, itemIDs := seedPurchaseWithItems(t, conn, companyID, 2)
	for _, itemID := range itemIDs {
		if _, err := svc.LinkLineItem(ctx, claim.ID, itemID.String()); err != nil {
			t.Fatalf("link: %v", err)
		}
	}

	if _, err := svc.Delete(ctx, claim.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var links int64
	if err := conn.Model(&linkdomain.ClaimEvidenceLink{}).Where("claim_id = ?", claim.ID).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Fatalf("expected bridge rows to go with the claim, found %d", links)
	}

	// The line items themselves are evidence, not claim data.
	var items int64
	if err := conn.Model(&itemdomain.PurchaseLineItem{}).Count(&items).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if items != 2 {
		t.Fatalf("expected line items to survive, found %d", items)
	}
}

func TestLinkLineItemIdempotent(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	claim, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	_, itemIDs := seedPurchaseWithItems(t, conn, companyID, 1)
	itemID := itemIDs[0].String()

	first, err := svc.LinkLineItem(ctx, claim.ID, itemID)
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	second, err := svc.LinkLineItem(ctx, claim.ID, itemID)
	if err != nil {
		t.Fatalf("relink: %v", err)
	}
	if first.PurchaseLineItemID != second.PurchaseLineItemID {
		t.Fatalf("expected identical payloads, got %+v vs %+v", first, second)
	}

	items, err := svc.LinkedLineItems(ctx, claim.ID)
	if err != nil {
		t.Fatalf("list linked: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 linked item, got %d", len(items))
	}
}

func TestUnlinkLineItemIdempotent(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	claim, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	_, itemIDs := seedPurchaseWithItems(t, conn, companyID, 1)
	itemID := itemIDs[0].String()

	// Unlinking before any link exists is already a success.
	if _, err := svc.UnlinkLineItem(ctx, claim.ID, itemID); err != nil {
		t.Fatalf("unlink absent: %v", err)
	}

	if _, err := svc.LinkLineItem(ctx, claim.ID, itemID); err != nil {
		t.Fatalf("link: %v", err)
	}
	if _, err := svc.UnlinkLineItem(ctx, claim.ID, itemID); err != nil {
		t.Fatalf("unlink: %v", err)
	}

	items, err := svc.LinkedLineItems(ctx, claim.ID)
	if err != nil {
		t.Fatalf("list linked: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no linked items, got %d", len(items))
	}

	// Link, unlink, link again lands back in the linked state.
	if _, err := svc.LinkLineItem(ctx, claim.ID, itemID); err != nil {
		t.Fatalf("relink: %v", err)
	}
	items, err = svc.LinkedLineItems(ctx, claim.ID)
	if err != nil {
		t.Fatalf("list linked: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 linked item after relink, got %d", len(items))
	}
}

func TestLinkRequiresEndpoints(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	claim, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	_, itemIDs := seedPurchaseWithItems(t, conn, companyID, 1)
	itemID := itemIDs[0].String()

	if _, err := svc.LinkLineItem(ctx, uuid.New().String(), itemID); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing claim, got %v", err)
	}
	if _, err := svc.LinkLineItem(ctx, claim.ID, uuid.New().String()); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing item, got %v", err)
	}
	if _, err := svc.UnlinkLineItem(ctx, claim.ID, uuid.New().String()); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unlink with missing item, got %v", err)
	}

	// A claim owned by another company is invisible here.
	otherCtx := companyContext(seedCompany(t, conn))
	if _, err := svc.LinkLineItem(otherCtx, claim.ID, itemID); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound across companies, got %v", err)
	}
}

func TestLinkPurchaseItemsBulk(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	claim, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	purchaseID, _ := seedPurchaseWithItems(t, conn, companyID, 3)

	resp, err := svc.LinkPurchaseItems(ctx, claim.ID, purchaseID.String())
	if err != nil {
		t.Fatalf("bulk link: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 links, got %d", len(resp))
	}

	// Repeating the bulk link leaves the bridge unchanged.
	if _, err := svc.LinkPurchaseItems(ctx, claim.ID, purchaseID.String()); err != nil {
		t.Fatalf("bulk relink: %v", err)
	}
	items, err := svc.LinkedLineItems(ctx, claim.ID)
	if err != nil {
		t.Fatalf("list linked: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 linked items, got %d", len(items))
	}
}

func TestLinkPurchaseItemsEmptyPurchase(t *testing.T) {
	svc, conn, _ := setupClaimService(t)
	companyID := seedCompany(t, conn)
	ctx := companyContext(companyID)

	claim, err := svc.Create(ctx, claimdomain.CreateRequest{Status: "EXPENSE_SELECTION"})
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	purchaseID, _ := seedPurchaseWithItems(t, conn, companyID, 0)

	resp, err := svc.LinkPurchaseItems(ctx, claim.ID, purchaseID.String())
	if err != nil {
		t.Fatalf("bulk link empty: %v", err)
	}
	if len(resp) != 0 {
		t.Fatalf("expected empty slice, got %d links", len(resp))
	}

	if _, err := svc.LinkPurchaseItems(ctx, claim.ID, uuid.New().String()); err != claimdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing purchase, got %v", err)
	}
}

func TestListPaginatesNewestFirst(t *testing.T) {
	svc, conn, fake := setupClaimService(t)
	companyID := seedCompany(t, conn)
	disasterID := seedFemaDisaster(t, conn, 4801).String()
	ctx := companyContext(companyID)

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		created, err := svc.Create(ctx, claimdomain.CreateRequest{
			Name:           fmt.Sprintf("claim %d", i),
			Status:         "FILED",
			FemaDisasterID: &disasterID,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, created.ID)
		fake.Advance(time.Minute)
	}

	var seen []string
	req := claimdomain.ListRequest{}
	req.PageSize = 2
	for {
		page, err := svc.List(ctx, req)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, c := range page.Claims {
			seen = append(seen, c.ID)
		}
		if page.PageInfo == nil || !page.PageInfo.HasMore {
			break
		}
		req.PageToken = page.PageInfo.NextPageToken
	}

	if len(seen) != 5 {
		t.Fatalf("expected 5 claims, got %d", len(seen))
	}
	// Newest first.
	for i := 0; i < 5; i++ {
		if seen[i] != ids[4-i] {
			t.Fatalf("expected %s at position %d, got %s", ids[4-i], i, seen[i])
		}
	}
}

func TestListFiltersByDateRange(t *testing.T) {
	svc, conn, fake := setupClaimService(t)
	companyID := seedCompany(t, conn)
	disasterID := seedFemaDisaster(t, conn, 4802).String()
	ctx := companyContext(companyID)

	start := fake.Now()
	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, claimdomain.CreateRequest{
			Status:         "FILED",
			FemaDisasterID: &disasterID,
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		fake.Advance(24 * time.Hour)
	}

	page, err := svc.List(ctx, claimdomain.ListRequest{
		CreatedFrom: start.Add(12 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Claims) != 2 {
		t.Fatalf("expected 2 claims in range, got %d", len(page.Claims))
	}

	_, err = svc.List(ctx, claimdomain.ListRequest{
		CreatedFrom: start.Format(time.RFC3339),
		CreatedTo:   start.Add(-time.Hour).Format(time.RFC3339),
	})
	if err != claimdomain.ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	badToken := claimdomain.ListRequest{}
	badToken.PageToken = "garbage"
	_, err = svc.List(ctx, badToken)
	if err != claimdomain.ErrInvalidPageToken {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}
