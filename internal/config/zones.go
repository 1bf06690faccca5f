package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// HeartRateZone classifies an activity by average heart rate. UpperBound is
// exclusive; a nil UpperBound marks the open-ended top zone.
type HeartRateZone struct {
	Label      string `mapstructure:"label"`
	UpperBound *int   `mapstructure:"upperBound"`
}

// PaceZone classifies a running activity by average pace in minutes per
// kilometer. LowerBound is inclusive; a nil LowerBound marks the open-ended
// fastest zone.
type PaceZone struct {
	Label      string   `mapstructure:"label"`
	LowerBound *float64 `mapstructure:"lowerBound"`
}

// ZoneCatalog holds the ordered zone tables used by the statistics engine.
type ZoneCatalog struct {
	HeartRateZones []HeartRateZone `mapstructure:"heartRateZones"`
	PaceZones      []PaceZone      `mapstructure:"paceZones"`
}

// DefaultZoneCatalog mirrors the fixed Garmin-style buckets: heart-rate
// thresholds at 120/140/160/180 bpm and pace thresholds at 6.5/5.5/4.5/3.5
// min/km.
func DefaultZoneCatalog() ZoneCatalog {
	return ZoneCatalog{
		HeartRateZones: []HeartRateZone{
			{Label: "Recovery (50-60%)", UpperBound: intPtr(120)},
			{Label: "Aerobic (60-70%)", UpperBound: intPtr(140)},
			{Label: "Threshold (70-80%)", UpperBound: intPtr(160)},
			{Label: "Anaerobic (80-90%)", UpperBound: intPtr(180)},
			{Label: "Maximum (90-100%)", UpperBound: nil},
		},
		PaceZones: []PaceZone{
			{Label: `Easy (>6'30")`, LowerBound: floatPtr(6.5)},
			{Label: `Aerobic run (5'30"-6'30")`, LowerBound: floatPtr(5.5)},
			{Label: `Marathon (4'30"-5'30")`, LowerBound: floatPtr(4.5)},
			{Label: `Threshold run (3'30"-4'30")`, LowerBound: floatPtr(3.5)},
			{Label: `Interval (<3'30")`, LowerBound: nil},
		},
	}
}

// HeartRateZoneLabel returns the label of the zone containing avgHR. Lower
// bounds are inclusive, upper bounds exclusive.
func (c ZoneCatalog) HeartRateZoneLabel(avgHR int) string {
	for _, zone := range c.HeartRateZones {
		if zone.UpperBound == nil || avgHR < *zone.UpperBound {
			return zone.Label
		}
	}
	return ""
}

// PaceZoneLabel returns the label of the zone containing pace (min/km).
// Zones are ordered slowest first; the first zone whose lower bound the pace
// meets wins.
func (c ZoneCatalog) PaceZoneLabel(pace float64) string {
	for _, zone := range c.PaceZones {
		if zone.LowerBound == nil || pace >= *zone.LowerBound {
			return zone.Label
		}
	}
	return ""
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// ZoneCatalogHolder exposes the current catalog and swaps it atomically on
// config reload.
type ZoneCatalogHolder struct {
	current atomic.Value // holds ZoneCatalog
}

// NewZoneCatalogHolder loads zones.yml when present and falls back to the
// default catalog otherwise. The file is watched for changes.
func NewZoneCatalogHolder() (*ZoneCatalogHolder, error) {
	v := viper.New()

	v.SetConfigName("zones")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/paceline")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PACELINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileFound = false
	}

	cfg := DefaultZoneCatalog()
	if fileFound {
		if err := v.UnmarshalKey("zones", &cfg); err != nil {
			return nil, err
		}
		if err := validateZoneCatalog(cfg); err != nil {
			return nil, err
		}
	}

	holder := &ZoneCatalogHolder{}
	holder.current.Store(cfg)

	if fileFound {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			updated := DefaultZoneCatalog()
			if err := v.UnmarshalKey("zones", &updated); err != nil {
				zap.L().Warn("zone catalog reload failed", zap.Error(err))
				return
			}
			if err := validateZoneCatalog(updated); err != nil {
				zap.L().Warn("invalid zone catalog ignored", zap.Error(err))
				return
			}
			holder.current.Store(updated)
		})
	}

	return holder, nil
}

// Current returns the active catalog.
func (h *ZoneCatalogHolder) Current() ZoneCatalog {
	return h.current.Load().(ZoneCatalog)
}

func validateZoneCatalog(cfg ZoneCatalog) error {
	if len(cfg.HeartRateZones) == 0 || len(cfg.PaceZones) == 0 {
		return errors.New("zone catalog requires at least one heart-rate and one pace zone")
	}

	var prevHR *int
	for i, zone := range cfg.HeartRateZones {
		if strings.TrimSpace(zone.Label) == "" {
			return errors.New("heart-rate zone label must not be empty")
		}
		if zone.UpperBound == nil {
			if i != len(cfg.HeartRateZones)-1 {
				return errors.New("only the last heart-rate zone may be open-ended")
			}
			continue
		}
		if prevHR != nil && *zone.UpperBound <= *prevHR {
			return errors.New("heart-rate zone bounds must be strictly increasing")
		}
		prevHR = zone.UpperBound
	}

	var prevPace *float64
	for i, zone := range cfg.PaceZones {
		if strings.TrimSpace(zone.Label) == "" {
			return errors.New("pace zone label must not be empty")
		}
		if zone.LowerBound == nil {
			if i != len(cfg.PaceZones)-1 {
				return errors.New("only the last pace zone may be open-ended")
			}
			continue
		}
		if prevPace != nil && *zone.LowerBound >= *prevPace {
			return errors.New("pace zone bounds must be strictly decreasing")
		}
		prevPace = zone.LowerBound
	}

	return nil
}
