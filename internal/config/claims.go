package config

import (
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ClaimsConfig holds hot-reloadable claim report tunables.
type ClaimsConfig struct {
	Report     ReportConfig     `mapstructure:"report"`
	ReportRate ReportRateConfig `mapstructure:"reportRate"`
}

type ReportConfig struct {
	// RevenueLookbackYears is how many full calendar years of revenue and
	// purchase history appear in a claim report.
	RevenueLookbackYears int    `mapstructure:"revenueLookbackYears"`
	FooterNote           string `mapstructure:"footerNote"`
}

type ReportRateConfig struct {
	PerMinute float64 `mapstructure:"perMinute"`
	Burst     int     `mapstructure:"burst"`
}

func DefaultClaimsConfig() ClaimsConfig {
	return ClaimsConfig{
		Report: ReportConfig{
			RevenueLookbackYears: 3,
			FooterNote:           "Generated by ReliefDesk. Figures are reported in USD cents unless noted.",
		},
		ReportRate: ReportRateConfig{
			PerMinute: 6,
			Burst:     3,
		},
	}
}

// ClaimsConfigHolder serves the current claims config and follows file changes.
type ClaimsConfigHolder struct {
	current atomic.Value // holds ClaimsConfig
}

func NewClaimsConfigHolder(log *zap.Logger) (*ClaimsConfigHolder, error) {
	log = log.Named("config.claims")

	v := viper.New()

	v.SetConfigName("claims")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/reliefdesk/config")
	v.AddConfigPath("/etc/reliefdesk")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RELIEFDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	holder := &ClaimsConfigHolder{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		holder.current.Store(DefaultClaimsConfig())
		return holder, nil
	}

	cfg, err := unmarshalClaimsConfig(v)
	if err != nil {
		return nil, err
	}
	holder.current.Store(cfg)

	v.OnConfigChange(func(_ fsnotify.Event) {
		next, err := unmarshalClaimsConfig(v)
		if err != nil {
			log.Warn("claims config reload failed", zap.Error(err))
			return
		}
		holder.current.Store(next)
		log.Info("claims config reloaded")
	})
	v.WatchConfig()

	return holder, nil
}

func (h *ClaimsConfigHolder) Current() ClaimsConfig {
	if h == nil {
		return DefaultClaimsConfig()
	}
	if cfg, ok := h.current.Load().(ClaimsConfig); ok {
		return cfg
	}
	return DefaultClaimsConfig()
}

func unmarshalClaimsConfig(v *viper.Viper) (ClaimsConfig, error) {
	cfg := DefaultClaimsConfig()
	if err := v.UnmarshalKey("claims", &cfg); err != nil {
		return ClaimsConfig{}, err
	}
	if cfg.Report.RevenueLookbackYears <= 0 {
		cfg.Report.RevenueLookbackYears = 3
	}
	if cfg.ReportRate.PerMinute <= 0 {
		cfg.ReportRate.PerMinute = 6
	}
	if cfg.ReportRate.Burst <= 0 {
		cfg.ReportRate.Burst = 3
	}
	return cfg, nil
}
