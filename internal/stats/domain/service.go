package domain

import (
	"context"
	"time"
)

// Service computes read-only aggregations over the activity store. Every
// operation absorbs its own failures: on error the returned object carries
// Success=false and a message rather than a Go error.
type Service interface {
	Overall(ctx context.Context) *OverallStatistics
	DateRange(ctx context.Context, start, end time.Time) *RangeStatistics
	ByType(ctx context.Context) *ByTypeStatistics
	Recent(ctx context.Context, limit int) *RecentActivities
	MonthlyTrend(ctx context.Context, months int) *MonthlyTrend
	HeartRateZones(ctx context.Context) *HeartRateZoneStatistics
	PaceZones(ctx context.Context) *PaceZoneStatistics
}
