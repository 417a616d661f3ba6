package domain

import (
	"context"
	"errors"
	"time"
)

// Service assembles and renders the claim report served as a PDF.
type Service interface {
	BuildReportData(ctx context.Context, claimID string) (*ReportData, error)
	Render(data *ReportData) ([]byte, error)
}

// ReportData is everything the PDF needs, already formatted for print.
type ReportData struct {
	ClaimID     string
	ClaimName   string
	ClaimStatus string
	CreatedAt   time.Time
	GeneratedAt time.Time

	CompanyName    string
	CompanyAddress string

	DisasterLabel string
	DisasterDates string

	PolicyProvider string
	PolicyNumber   string

	Expenses           []ExpenseRow
	TotalExpensesCents int64

	Years                     []YearFinancials
	AverageAnnualRevenueCents int64

	FooterNote string
}

type ExpenseRow struct {
	Description string
	Category    string
	Type        string
	AmountCents int64
}

// YearFinancials carries one lookback year of revenue and spend.
type YearFinancials struct {
	Year          int
	RevenueCents  int64
	PurchaseCents int64
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidID      = errors.New("invalid_id")
	ErrMissingCompany = errors.New("missing_company")
)
