package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	claimdomain "github.com/reliefdesk/reliefdesk/internal/claim/domain"
	reportdomain "github.com/reliefdesk/reliefdesk/internal/claimreport/domain"
	"github.com/reliefdesk/reliefdesk/internal/clock"
	companydomain "github.com/reliefdesk/reliefdesk/internal/company/domain"
	"github.com/reliefdesk/reliefdesk/internal/companyctx"
	"github.com/reliefdesk/reliefdesk/internal/config"
	linkdomain "github.com/reliefdesk/reliefdesk/internal/evidencelink/domain"
	invoicedomain "github.com/reliefdesk/reliefdesk/internal/invoice/domain"
	"github.com/reliefdesk/reliefdesk/internal/observability/metrics"
	purchasedomain "github.com/reliefdesk/reliefdesk/internal/purchase/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Claims       *config.ClaimsConfigHolder
	ClaimRepo    claimdomain.Repository
	CompanyRepo  companydomain.Repository
	LinkRepo     linkdomain.Repository
	InvoiceRepo  invoicedomain.Repository
	PurchaseRepo purchasedomain.Repository
	Metrics      *metrics.Metrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	claims       *config.ClaimsConfigHolder
	claimRepo    claimdomain.Repository
	companyRepo  companydomain.Repository
	linkRepo     linkdomain.Repository
	invoiceRepo  invoicedomain.Repository
	purchaseRepo purchasedomain.Repository
	metrics      *metrics.Metrics
}

func New(p Params) reportdomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("claimreport.service"),
		clock:        p.Clock,
		claims:       p.Claims,
		claimRepo:    p.ClaimRepo,
		companyRepo:  p.CompanyRepo,
		linkRepo:     p.LinkRepo,
		invoiceRepo:  p.InvoiceRepo,
		purchaseRepo: p.PurchaseRepo,
		metrics:      p.Metrics,
	}
}

// BuildReportData gathers the claim, its evidence and the company's
// financial history for the configured lookback window.
func (s *Service) BuildReportData(ctx context.Context, claimID string) (*reportdomain.ReportData, error) {
	companyID, ok := companyctx.CompanyIDFromContext(ctx)
	if !ok {
		return nil, reportdomain.ErrMissingCompany
	}

	cID, err := uuid.Parse(strings.TrimSpace(claimID))
	if err != nil {
		return nil, reportdomain.ErrInvalidID
	}

	claim, err := s.claimRepo.FindByID(ctx, s.db, companyID, cID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, reportdomain.ErrNotFound
	}

	company, err := s.companyRepo.FindByID(ctx, s.db, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, reportdomain.ErrNotFound
	}

	items, err := s.linkRepo.ListItemsByClaim(ctx, s.db, cID)
	if err != nil {
		return nil, err
	}

	cfg := s.claims.Current()
	now := s.clock.Now().UTC()

	data := &reportdomain.ReportData{
		ClaimID:     claim.ID.String(),
		ClaimName:   claim.Name,
		ClaimStatus: string(claim.Status),
		CreatedAt:   claim.CreatedAt,
		GeneratedAt: now,
		CompanyName: company.Name,
		FooterNote:  cfg.Report.FooterNote,
	}
	if company.Address != nil {
		data.CompanyAddress = *company.Address
	}

	s.applyDisaster(data, claim)

	if claim.InsurancePolicy != nil {
		data.PolicyProvider = claim.InsurancePolicy.Provider
		data.PolicyNumber = claim.InsurancePolicy.PolicyNumber
	}

	for i := range items {
		row := reportdomain.ExpenseRow{
			Type:        string(items[i].Type),
			AmountCents: items[i].AmountCents,
		}
		if items[i].Description != nil {
			row.Description = *items[i].Description
		}
		if items[i].Category != nil {
			row.Category = *items[i].Category
		}
		data.Expenses = append(data.Expenses, row)
		data.TotalExpensesCents += items[i].AmountCents
	}

	if err := s.applyFinancials(ctx, data, companyID, now, cfg.Report.RevenueLookbackYears); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *Service) applyDisaster(data *reportdomain.ReportData, claim *claimdomain.Claim) {
	switch {
	case claim.FemaDisaster != nil:
		data.DisasterLabel = fmt.Sprintf("FEMA disaster %d, %s",
			claim.FemaDisaster.DisasterNumber, claim.FemaDisaster.DesignatedArea)
		dates := "declared " + claim.FemaDisaster.DeclarationDate.Format("Jan 2, 2006")
		if claim.FemaDisaster.IncidentBeginDate != nil {
			dates += ", incident from " + claim.FemaDisaster.IncidentBeginDate.Format("Jan 2, 2006")
		}
		if claim.FemaDisaster.IncidentEndDate != nil {
			dates += " to " + claim.FemaDisaster.IncidentEndDate.Format("Jan 2, 2006")
		}
		data.DisasterDates = dates
	case claim.SelfDisaster != nil:
		data.DisasterLabel = "Self-declared: " + claim.SelfDisaster.Description
		dates := "from " + claim.SelfDisaster.StartDate.Format("Jan 2, 2006")
		if claim.SelfDisaster.EndDate != nil {
			dates += " to " + claim.SelfDisaster.EndDate.Format("Jan 2, 2006")
		}
		data.DisasterDates = dates
	default:
		data.DisasterLabel = "No disaster selected yet"
	}
}

// applyFinancials sums revenue and spend per full calendar year, newest
// first, and derives the average annual revenue across the window.
func (s *Service) applyFinancials(ctx context.Context, data *reportdomain.ReportData, companyID uuid.UUID, now time.Time, lookbackYears int) error {
	if lookbackYears <= 0 {
		lookbackYears = 3
	}

	var revenueTotal int64
	for offset := 1; offset <= lookbackYears; offset++ {
		year := now.Year() - offset
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(1, 0, 0)

		revenue, err := s.invoiceRepo.SumAmountForCompany(ctx, s.db, companyID, from, to)
		if err != nil {
			return err
		}
		purchases, err := s.purchaseRepo.SumTotalForCompany(ctx, s.db, companyID, from, to)
		if err != nil {
			return err
		}

		data.Years = append(data.Years, reportdomain.YearFinancials{
			Year:          year,
			RevenueCents:  revenue,
			PurchaseCents: purchases,
		})
		revenueTotal += revenue
	}

	data.AverageAnnualRevenueCents = revenueTotal / int64(lookbackYears)
	return nil
}
