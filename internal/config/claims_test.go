package config

import (
	"testing"

	"go.uber.org/zap"
)

func TestClaimsConfigHolderDefaults(t *testing.T) {
	holder, err := NewClaimsConfigHolder(zap.NewNop())
	if err != nil {
		t.Fatalf("new holder: %v", err)
	}

	cfg := holder.Current()
	if cfg.Report.RevenueLookbackYears != 3 {
		t.Fatalf("expected 3 year lookback, got %d", cfg.Report.RevenueLookbackYears)
	}
	if cfg.ReportRate.PerMinute != 6 || cfg.ReportRate.Burst != 3 {
		t.Fatalf("unexpected rate defaults: %+v", cfg.ReportRate)
	}
}

func TestClaimsConfigHolderNilSafe(t *testing.T) {
	var holder *ClaimsConfigHolder

	cfg := holder.Current()
	if cfg.Report.RevenueLookbackYears != 3 {
		t.Fatalf("expected defaults from nil holder, got %+v", cfg)
	}
}
