package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartRateZoneLabelBoundaries(t *testing.T) {
	catalog := DefaultZoneCatalog()

	assert.Equal(t, "Recovery (50-60%)", catalog.HeartRateZoneLabel(119))
	assert.Equal(t, "Aerobic (60-70%)", catalog.HeartRateZoneLabel(120))
	assert.Equal(t, "Threshold (70-80%)", catalog.HeartRateZoneLabel(159))
	assert.Equal(t, "Anaerobic (80-90%)", catalog.HeartRateZoneLabel(179))
	assert.Equal(t, "Maximum (90-100%)", catalog.HeartRateZoneLabel(180))
	assert.Equal(t, "Maximum (90-100%)", catalog.HeartRateZoneLabel(210))
}

func TestPaceZoneLabelBoundaries(t *testing.T) {
	catalog := DefaultZoneCatalog()

	assert.Equal(t, `Easy (>6'30")`, catalog.PaceZoneLabel(7.0))
	assert.Equal(t, `Easy (>6'30")`, catalog.PaceZoneLabel(6.5))
	assert.Equal(t, `Aerobic run (5'30"-6'30")`, catalog.PaceZoneLabel(6.0))
	assert.Equal(t, `Marathon (4'30"-5'30")`, catalog.PaceZoneLabel(4.5))
	assert.Equal(t, `Threshold run (3'30"-4'30")`, catalog.PaceZoneLabel(3.5))
	assert.Equal(t, `Interval (<3'30")`, catalog.PaceZoneLabel(3.49))
}

func TestValidateZoneCatalog(t *testing.T) {
	require.NoError(t, validateZoneCatalog(DefaultZoneCatalog()))

	empty := ZoneCatalog{}
	assert.Error(t, validateZoneCatalog(empty))

	openMiddle := DefaultZoneCatalog()
	openMiddle.HeartRateZones[1].UpperBound = nil
	assert.Error(t, validateZoneCatalog(openMiddle))

	nonIncreasing := DefaultZoneCatalog()
	nonIncreasing.HeartRateZones[1].UpperBound = intPtr(110)
	assert.Error(t, validateZoneCatalog(nonIncreasing))

	nonDecreasing := DefaultZoneCatalog()
	nonDecreasing.PaceZones[1].LowerBound = floatPtr(7.0)
	assert.Error(t, validateZoneCatalog(nonDecreasing))
}
