package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	companydomain "github.com/reliefdesk/reliefdesk/internal/company/domain"
	femadomain "github.com/reliefdesk/reliefdesk/internal/femadisaster/domain"
	invoicedomain "github.com/reliefdesk/reliefdesk/internal/invoice/domain"
	itemdomain "github.com/reliefdesk/reliefdesk/internal/purchaselineitem/domain"
	purchasedomain "github.com/reliefdesk/reliefdesk/internal/purchase/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixed IDs keep reseeding idempotent and give local clients something
// stable to point at.
var (
	demoCompanyID  = uuid.MustParse("6a2f6f0e-0b9c-4f78-9f11-2d3f9a1c0001")
	demoDisasterID = uuid.MustParse("6a2f6f0e-0b9c-4f78-9f11-2d3f9a1c0002")
	demoPurchaseID = uuid.MustParse("6a2f6f0e-0b9c-4f78-9f11-2d3f9a1c0003")
)

// EnsureDemoData seeds a company, a FEMA disaster and a purchase with line
// items so a fresh install can exercise the claim flow end to end.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	now := time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		address := "400 Market Street, Wilmington, NC"
		company := companydomain.Company{
			ID:        demoCompanyID,
			Name:      "Cape Fear Coffee Co.",
			Address:   &address,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := upsert(ctx, tx, &company); err != nil {
			return err
		}

		begin := now.AddDate(0, -4, 0)
		end := now.AddDate(0, -3, -15)
		disaster := femadomain.FemaDisaster{
			ID:                      demoDisasterID,
			DisasterNumber:          4798,
			DeclarationDate:         now.AddDate(0, -4, 2),
			IncidentBeginDate:       &begin,
			IncidentEndDate:         &end,
			DesignatedArea:          "New Hanover (County)",
			DesignatedIncidentTypes: "Hurricane",
			CreatedAt:               now,
			UpdatedAt:               now,
		}
		if err := upsert(ctx, tx, &disaster); err != nil {
			return err
		}

		purchase := purchasedomain.Purchase{
			ID:         demoPurchaseID,
			CompanyID:  demoCompanyID,
			TotalCents: 184500,
			CreatedAt:  now.AddDate(0, -3, 0),
			UpdatedAt:  now,
		}
		if err := upsert(ctx, tx, &purchase); err != nil {
			return err
		}

		items := []struct {
			suffix      string
			description string
			category    string
			amountCents int64
			itemType    itemdomain.Type
		}{
			{"0010", "Replacement espresso machine", "Equipment", 145000, itemdomain.TypeExtraneous},
			{"0011", "Water damage cleanup service", "Repairs", 32500, itemdomain.TypeExtraneous},
			{"0012", "Weekly bean order", "Inventory", 7000, itemdomain.TypeTypical},
		}
		for _, item := range items {
			id := uuid.MustParse("6a2f6f0e-0b9c-4f78-9f11-2d3f9a1c" + item.suffix)
			description := item.description
			category := item.category
			row := itemdomain.PurchaseLineItem{
				ID:          id,
				PurchaseID:  demoPurchaseID,
				Description: &description,
				Category:    &category,
				AmountCents: item.amountCents,
				Type:        item.itemType,
				CreatedAt:   now.AddDate(0, -3, 0),
				UpdatedAt:   now,
			}
			if err := upsert(ctx, tx, &row); err != nil {
				return err
			}
		}

		for offset := 1; offset <= 3; offset++ {
			year := now.Year() - offset
			id := uuid.NewSHA1(demoCompanyID, []byte{byte(year % 256), byte(year / 256)})
			inv := invoicedomain.Invoice{
				ID:          id,
				CompanyID:   demoCompanyID,
				AmountCents: int64(42000000 - offset*3000000),
				InvoiceDate: time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := upsert(ctx, tx, &inv); err != nil {
				return err
			}
		}

		return nil
	})
}

func upsert(ctx context.Context, tx *gorm.DB, value any) error {
	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(value).Error
}
