package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/reliefdesk/reliefdesk/internal/clock"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
	selfdomain "github.com/reliefdesk/reliefdesk/internal/selfdisaster/domain"
	"github.com/reliefdesk/reliefdesk/internal/selfdisaster/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSelfDisasterService(t *testing.T) selfdomain.Service {
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

	if err := conn.AutoMigrate(&selfdomain.SelfDeclaredDisaster{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func TestCreateSelfDisaster(t *testing.T) {
	svc := setupSelfDisasterService(t)
	companyID := uuid.New()
	ctx := companyctx.WithCompanyID(context.Background(), companyID)

	end := "2024-10-05T00:00:00Z"
	resp, err := svc.Create(ctx, selfdomain.CreateRequest{
		Description: "Kitchen fire",
		StartDate:   "2024-10-01T00:00:00Z",
		EndDate:     &end,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.CompanyID != companyID.String() {
		t.Fatalf("expected company %s, got %s", companyID, resp.CompanyID)
	}
	if resp.StartDate != "2024-10-01T00:00:00Z" {
		t.Fatalf("unexpected start date %s", resp.StartDate)
	}
	if resp.EndDate == nil || *resp.EndDate != end {
		t.Fatalf("unexpected end date %v", resp.EndDate)
	}
}

func TestCreateSelfDisasterValidation(t *testing.T) {
	svc := setupSelfDisasterService(t)
	ctx := companyctx.WithCompanyID(context.Background(), uuid.New())

	if _, err := svc.Create(ctx, selfdomain.CreateRequest{Description: "  ", StartDate: "2024-10-01T00:00:00Z"}); err != selfdomain.ErrInvalidDescription {
		t.Fatalf("expected ErrInvalidDescription, got %v", err)
	}

	if _, err := svc.Create(ctx, selfdomain.CreateRequest{Description: "Flood", StartDate: "October 1st"}); err != selfdomain.ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	// End before start is rejected.
	end := "2024-09-01T00:00:00Z"
	if _, err := svc.Create(ctx, selfdomain.CreateRequest{Description: "Flood", StartDate: "2024-10-01T00:00:00Z", EndDate: &end}); err != selfdomain.ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate for inverted range, got %v", err)
	}

	if _, err := svc.Create(context.Background(), selfdomain.CreateRequest{Description: "Flood", StartDate: "2024-10-01T00:00:00Z"}); err != selfdomain.ErrMissingCompany {
		t.Fatalf("expected ErrMissingCompany, got %v", err)
	}
}
