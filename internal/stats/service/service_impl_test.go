package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	activityrepository "github.com/strideworks/paceline/internal/activity/repository"
	"github.com/strideworks/paceline/internal/clock"
	"github.com/strideworks/paceline/internal/config"
	"github.com/strideworks/paceline/internal/stats/domain"
)

type activitySpec struct {
	Type     string
	Start    time.Time
	Distance *float64
	Duration *int64
	Calories *int
	AvgHR    *int
	Pace     *float64
}

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func i64ptr(v int64) *int64 { return &v }

func setupStatsService(t *testing.T, now time.Time) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&activitydomain.Activity{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	zones, err := config.NewZoneCatalogHolder()
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(now),
		Zones: zones,
		Repo:  activityrepository.Provide(),
	})
	return svc, db, node
}

func seedActivities(t *testing.T, db *gorm.DB, node *snowflake.Node, specs []activitySpec) {
	t.Helper()
	for _, spec := range specs {
		activity := activitydomain.Activity{
			ID:               node.Generate(),
			Type:             spec.Type,
			StartTime:        spec.Start,
			DistanceMeters:   spec.Distance,
			DurationSeconds:  spec.Duration,
			Calories:         spec.Calories,
			AverageHeartRate: spec.AvgHR,
			AveragePace:      spec.Pace,
			ImportDate:       spec.Start,
			ImportRecordID:   1,
		}
		require.NoError(t, db.Create(&activity).Error)
	}
}

func TestOverallEmptyStore(t *testing.T) {
	svc, _, _ := setupStatsService(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))

	out := svc.Overall(context.Background())
	require.True(t, out.Success)
	assert.Zero(t, out.TotalActivities)
	assert.Zero(t, out.TotalDistance)
	assert.Zero(t, out.AverageHeartRate)
	assert.Nil(t, out.FirstActivityDate)
	assert.NotEmpty(t, out.Message)
}

func TestOverallSkipsNullMetrics(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	seedActivities(t, db, node, []activitySpec{
		{Type: "Running", Start: now.AddDate(0, 0, -3), Distance: fptr(10500), Duration: i64ptr(3600), Calories: iptr(640), AvgHR: iptr(150), Pace: fptr(5.0)},
		{Type: "Cycling", Start: now.AddDate(0, 0, -2), Distance: fptr(24800), Duration: i64ptr(4980), Calories: iptr(705)},
		{Type: "Walking", Start: now.AddDate(0, 0, -1)},
	})

	out := svc.Overall(context.Background())
	require.True(t, out.Success)
	assert.Equal(t, 3, out.TotalActivities)
	assert.Equal(t, 35.3, out.TotalDistance)
	assert.Equal(t, 2.38, out.TotalDuration)
	assert.Equal(t, 1345, out.TotalCalories)
	// Only one activity carries a heart rate; the average divides by one,
	// not by three.
	assert.Equal(t, 150, out.AverageHeartRate)
	assert.Equal(t, 5.0, out.AveragePace)
	require.NotNil(t, out.FirstActivityDate)
	require.NotNil(t, out.LastActivityDate)
	assert.True(t, out.FirstActivityDate.Before(*out.LastActivityDate))
}

func TestDateRangeSingleDayInclusive(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, day)

	seedActivities(t, db, node, []activitySpec{
		{Type: "Running", Start: day.Add(6 * time.Hour), Distance: fptr(5000)},
		{Type: "Running", Start: day.Add(20 * time.Hour), Distance: fptr(3000)},
		{Type: "Running", Start: day.AddDate(0, 0, 1), Distance: fptr(9000)},
	})

	out := svc.DateRange(context.Background(), day, day)
	require.True(t, out.Success)
	assert.Equal(t, 2, out.TotalActivities)
	assert.Equal(t, 8.0, out.TotalDistance)
	assert.Len(t, out.Activities, 2)
	assert.Equal(t, "2026-08-10", out.StartDate)
	assert.Equal(t, "2026-08-10", out.EndDate)
}

func TestByTypeOrderingAndPercentages(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	specs := []activitySpec{
		{Type: "Running", Start: now, Distance: fptr(10000)},
		{Type: "Running", Start: now, Distance: fptr(8000)},
		{Type: "Running", Start: now},
		{Type: "Cycling", Start: now, Distance: fptr(30000)},
		{Type: "Cycling", Start: now, Distance: fptr(20000)},
		{Type: "Walking", Start: now, Distance: fptr(4000)},
	}
	seedActivities(t, db, node, specs)

	out := svc.ByType(context.Background())
	require.True(t, out.Success)
	require.Len(t, out.Types, 3)

	assert.Equal(t, "Running", out.Types[0].ActivityType)
	assert.Equal(t, 3, out.Types[0].TotalActivities)
	assert.Equal(t, 50, out.Types[0].Percentage)
	assert.Equal(t, 18.0, out.Types[0].TotalDistance)

	assert.Equal(t, "Cycling", out.Types[1].ActivityType)
	assert.Equal(t, 33, out.Types[1].Percentage)

	assert.Equal(t, "Walking", out.Types[2].ActivityType)
	assert.Equal(t, 17, out.Types[2].Percentage)
}

func TestRecentNewestFirstWithLimit(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	for i := 0; i < 5; i++ {
		seedActivities(t, db, node, []activitySpec{
			{Type: "Running", Start: now.AddDate(0, 0, -i), Distance: fptr(10500)},
		})
	}

	out := svc.Recent(context.Background(), 3)
	require.True(t, out.Success)
	require.Len(t, out.Activities, 3)
	assert.Equal(t, now, out.Activities[0].StartTime.UTC())
	assert.True(t, out.Activities[0].StartTime.After(out.Activities[2].StartTime))
	assert.Equal(t, 10.5, out.Activities[0].Distance)
}

func TestRecentInvalidLimitFallsBackToDefault(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	for i := 0; i < 12; i++ {
		seedActivities(t, db, node, []activitySpec{
			{Type: "Running", Start: now.Add(-time.Duration(i) * time.Hour)},
		})
	}

	assert.Len(t, svc.Recent(context.Background(), 0).Activities, 10)
	assert.Len(t, svc.Recent(context.Background(), -4).Activities, 10)
	assert.Len(t, svc.Recent(context.Background(), 500).Activities, 10)
}

func TestMonthlyTrendExactPointCount(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	seedActivities(t, db, node, []activitySpec{
		// Two activities in the current month, one in June, none in July.
		{Type: "Running", Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Distance: fptr(5000)},
		{Type: "Running", Start: time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), Distance: fptr(7000)},
		{Type: "Running", Start: time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC), Distance: fptr(4000)},
		// Outside the 3-month window.
		{Type: "Running", Start: time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), Distance: fptr(9000)},
	})

	out := svc.MonthlyTrend(context.Background(), 3)
	require.True(t, out.Success)
	require.Len(t, out.Points, 3)

	assert.Equal(t, "2026-06", out.Points[0].Month)
	assert.Equal(t, 1, out.Points[0].TotalActivities)
	assert.Equal(t, 4.0, out.Points[0].TotalDistance)

	assert.Equal(t, "2026-07", out.Points[1].Month)
	assert.Zero(t, out.Points[1].TotalActivities)
	assert.Zero(t, out.Points[1].TotalDistance)

	assert.Equal(t, "2026-08", out.Points[2].Month)
	assert.Equal(t, 2, out.Points[2].TotalActivities)
	assert.Equal(t, 12.0, out.Points[2].TotalDistance)
}

func TestHeartRateZoneBoundaries(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	seedActivities(t, db, node, []activitySpec{
		{Type: "Running", Start: now, AvgHR: iptr(119)},
		{Type: "Running", Start: now, AvgHR: iptr(120)},
		{Type: "Running", Start: now, AvgHR: iptr(185)},
		{Type: "Running", Start: now},
	})

	out := svc.HeartRateZones(context.Background())
	require.True(t, out.Success)
	assert.Equal(t, 4, out.TotalActivities)
	assert.Equal(t, 3, out.ActivitiesWithHeartRate)

	// 119 sits below the 120 boundary, 120 on it.
	assert.Equal(t, 1, out.ZoneDistribution["Recovery (50-60%)"])
	assert.Equal(t, 1, out.ZoneDistribution["Aerobic (60-70%)"])
	assert.Equal(t, 1, out.ZoneDistribution["Maximum (90-100%)"])
	assert.Zero(t, out.ZoneDistribution["Threshold (70-80%)"])
}

func TestPaceZonesRunningOnly(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db, node := setupStatsService(t, now)

	seedActivities(t, db, node, []activitySpec{
		{Type: "Running", Start: now, Pace: fptr(6.5)},
		{Type: "Trail Running", Start: now, Pace: fptr(5.0)},
		{Type: "跑步", Start: now, Pace: fptr(3.4)},
		{Type: "Cycling", Start: now, Pace: fptr(2.0)},
		{Type: "Running", Start: now},
	})

	out := svc.PaceZones(context.Background())
	require.True(t, out.Success)
	assert.Equal(t, 3, out.TotalRunningActivities)

	assert.Equal(t, 1, out.ZoneDistribution[`Easy (>6'30")`])
	assert.Equal(t, 1, out.ZoneDistribution[`Marathon (4'30"-5'30")`])
	assert.Equal(t, 1, out.ZoneDistribution[`Interval (<3'30")`])
}

func TestZoneDistributionsOnEmptyStore(t *testing.T) {
	svc, _, _ := setupStatsService(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	hr := svc.HeartRateZones(ctx)
	require.True(t, hr.Success)
	assert.Len(t, hr.ZoneDistribution, 5)
	for _, count := range hr.ZoneDistribution {
		assert.Zero(t, count)
	}

	pace := svc.PaceZones(ctx)
	require.True(t, pace.Success)
	assert.Len(t, pace.ZoneDistribution, 5)
}
