package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	auditdomain "github.com/reliefdesk/reliefdesk/internal/audit/domain"
	"github.com/reliefdesk/reliefdesk/internal/audit/repository"
	"github.com/reliefdesk/reliefdesk/internal/clock"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAuditService(t *testing.T) (auditdomain.Service, *clock.FakeClock) {
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

	if err := conn.AutoMigrate(&auditdomain.AuditLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := NewService(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		Clock: fake,
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, fake
}

func TestRecordAndListAuditLogs(t *testing.T) {
	svc, fake := setupAuditService(t)
	companyID := uuid.New()
	ctx := companyctx.WithCompanyID(context.Background(), companyID)

	claimID := uuid.New().String()
	actions := []string{
		auditdomain.ActionClaimCreate,
		auditdomain.ActionClaimLink,
		auditdomain.ActionClaimStatus,
	}
	for _, action := range actions {
		if err := svc.Record(ctx, action, "claim", &claimID, map[string]any{"status": "REVIEW"}); err != nil {
			t.Fatalf("record %s: %v", action, err)
		}
		fake.Advance(time.Second)
	}

	// Another company's trail stays invisible.
	otherCtx := companyctx.WithCompanyID(context.Background(), uuid.New())
	if err := svc.Record(otherCtx, auditdomain.ActionClaimDelete, "claim", &claimID, nil); err != nil {
		t.Fatalf("record other: %v", err)
	}

	resp, err := svc.List(ctx, auditdomain.ListAuditLogRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.AuditLogs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.AuditLogs))
	}
	// Newest first.
	if resp.AuditLogs[0].Action != auditdomain.ActionClaimStatus {
		t.Fatalf("expected %s first, got %s", auditdomain.ActionClaimStatus, resp.AuditLogs[0].Action)
	}
	if resp.AuditLogs[0].CompanyID == nil || *resp.AuditLogs[0].CompanyID != companyID {
		t.Fatalf("expected company %s on entry, got %v", companyID, resp.AuditLogs[0].CompanyID)
	}
}

func TestListAuditLogsPaginates(t *testing.T) {
	svc, fake := setupAuditService(t)
	ctx := companyctx.WithCompanyID(context.Background(), uuid.New())

	for i := 0; i < 5; i++ {
		if err := svc.Record(ctx, auditdomain.ActionClaimLink, "claim", nil, nil); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		fake.Advance(time.Second)
	}

	var total int
	req := auditdomain.ListAuditLogRequest{}
	req.PageSize = 2
	for {
		page, err := svc.List(ctx, req)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		total += len(page.AuditLogs)
		if !page.HasMore {
			break
		}
		req.PageToken = page.NextPageToken
	}
	if total != 5 {
		t.Fatalf("expected 5 entries across pages, got %d", total)
	}
}

func TestListAuditLogsValidation(t *testing.T) {
	svc, _ := setupAuditService(t)
	ctx := companyctx.WithCompanyID(context.Background(), uuid.New())

	if _, err := svc.List(context.Background(), auditdomain.ListAuditLogRequest{}); err != auditdomain.ErrInvalidCompany {
		t.Fatalf("expected ErrInvalidCompany, got %v", err)
	}

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	if _, err := svc.List(ctx, auditdomain.ListAuditLogRequest{StartAt: &start, EndAt: &end}); err != auditdomain.ErrInvalidTimeRange {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}

	badToken := auditdomain.ListAuditLogRequest{}
	badToken.PageToken = "garbage"
	if _, err := svc.List(ctx, badToken); err != auditdomain.ErrInvalidPageToken {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}

	if err := svc.Record(ctx, "  ", "claim", nil, nil); err != auditdomain.ErrInvalidAction {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}
