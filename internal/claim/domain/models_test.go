package domain

import "testing"

func TestStatusValid(t *testing.T) {
	valid := []Status{
		StatusDisasterSelection,
		StatusImpactedLocations,
		StatusExpenseSelection,
		StatusInsuranceDetails,
		StatusReview,
		StatusActive,
		StatusFiled,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}

	for _, s := range []Status{"", "SETTLED", "disaster_selection"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestInProgressStatusesAreStrictSubset(t *testing.T) {
	for _, s := range InProgressStatuses {
		if !s.Valid() {
			t.Fatalf("in-progress status %s is not a valid status", s)
		}
		if !s.InProgress() {
			t.Fatalf("expected %s to report in progress", s)
		}
	}

	for _, s := range []Status{StatusActive, StatusFiled} {
		if s.InProgress() {
			t.Fatalf("terminal status %s must not report in progress", s)
		}
	}
}
