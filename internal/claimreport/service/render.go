package service

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	reportdomain "github.com/reliefdesk/reliefdesk/internal/claimreport/domain"
)

// Render produces the claim report PDF.
func (s *Service) Render(data *reportdomain.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Disaster Claim Report", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New(data.CompanyName, props.Text{Style: fontstyle.Bold}),
			text.New(data.CompanyAddress, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Claim: "+data.ClaimName, props.Text{Top: 0}),
			text.New("Status: "+data.ClaimStatus, props.Text{Top: 4}),
			text.New("Opened: "+data.CreatedAt.Format("Jan 2, 2006"), props.Text{Top: 8}),
			text.New("Generated: "+data.GeneratedAt.Format("Jan 2, 2006"), props.Text{Top: 12}),
		),
	)

	m.AddRow(16,
		col.New(12).Add(
			text.New(data.DisasterLabel, props.Text{Style: fontstyle.Bold}),
			text.New(data.DisasterDates, props.Text{Top: 5, Size: 9}),
		),
	)

	if data.PolicyProvider != "" {
		m.AddRow(10,
			text.NewCol(12, fmt.Sprintf("Insurance: %s, policy %s", data.PolicyProvider, data.PolicyNumber), props.Text{Size: 9}),
		)
	}

	// Expense table
	m.AddRow(10,
		text.NewCol(6, "Expense", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Category", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Type", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, row := range data.Expenses {
		m.AddRow(8,
			text.NewCol(6, row.Description, props.Text{Size: 9}),
			text.NewCol(2, row.Category, props.Text{Size: 9}),
			text.NewCol(2, row.Type, props.Text{Size: 9}),
			text.NewCol(2, formatCents(row.AmountCents), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total claimed", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatCents(data.TotalExpensesCents), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	// Financial history
	m.AddRow(10,
		text.NewCol(4, "Year", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Revenue", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(4, "Purchases", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, year := range data.Years {
		m.AddRow(8,
			text.NewCol(4, fmt.Sprintf("%d", year.Year), props.Text{Size: 9}),
			text.NewCol(4, formatCents(year.RevenueCents), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(4, formatCents(year.PurchaseCents), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		text.NewCol(12, "Average annual revenue: "+formatCents(data.AverageAnnualRevenueCents), props.Text{Size: 9, Style: fontstyle.Bold}),
	)

	m.AddRow(12,
		text.NewCol(12, data.FooterNote, props.Text{Size: 8}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	s.metrics.RecordReportRendered(context.Background())

	return doc.GetBytes(), nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
