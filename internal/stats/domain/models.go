package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
)

// OverallStatistics summarizes the entire activity set. Distance is
// kilometers, duration hours, both rounded to two decimals; the averages
// fall back to zero when no activity carries the underlying metric.
type OverallStatistics struct {
	Success           bool       `json:"success"`
	Message           string     `json:"message,omitempty"`
	TotalDistance     float64    `json:"totalDistance"`
	TotalActivities   int        `json:"totalActivities"`
	TotalDuration     float64    `json:"totalDuration"`
	TotalCalories     int        `json:"totalCalories"`
	AverageHeartRate  int        `json:"averageHeartRate"`
	AveragePace       float64    `json:"averagePace"`
	FirstActivityDate *time.Time `json:"firstActivityDate"`
	LastActivityDate  *time.Time `json:"lastActivityDate"`
}

// RangeStatistics restricts the overall reductions to one inclusive date
// range and carries the matching activities.
type RangeStatistics struct {
	Success         bool                      `json:"success"`
	Message         string                    `json:"message,omitempty"`
	StartDate       string                    `json:"startDate"`
	EndDate         string                    `json:"endDate"`
	TotalDistance   float64                   `json:"totalDistance"`
	TotalActivities int                       `json:"totalActivities"`
	TotalDuration   float64                   `json:"totalDuration"`
	TotalCalories   int                       `json:"totalCalories"`
	Activities      []activitydomain.Activity `json:"activities"`
}

// TypeStatistics is one per-type group.
type TypeStatistics struct {
	ActivityType    string  `json:"activityType"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalActivities int     `json:"totalActivities"`
	Percentage      int     `json:"percentage"`
}

// ByTypeStatistics groups the activity set by exact type string, ordered by
// descending activity count.
type ByTypeStatistics struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Types   []TypeStatistics `json:"types"`
}

// RecentActivity is the display projection of one activity; distance is
// re-expressed in kilometers.
type RecentActivity struct {
	ID               snowflake.ID `json:"id"`
	ActivityName     *string      `json:"activityName,omitempty"`
	ActivityType     string       `json:"activityType"`
	StartTime        time.Time    `json:"startTime"`
	Distance         float64      `json:"distance"`
	Duration         *int64       `json:"duration,omitempty"`
	Calories         *int         `json:"calories,omitempty"`
	AverageHeartRate *int         `json:"averageHeartRate,omitempty"`
	AveragePace      *float64     `json:"averagePace,omitempty"`
}

// RecentActivities lists the newest activities by start time.
type RecentActivities struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Activities []RecentActivity `json:"activities"`
}

// TrendPoint is one calendar month in the trend series.
type TrendPoint struct {
	Month           string  `json:"month"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalActivities int     `json:"totalActivities"`
}

// MonthlyTrend always carries exactly the requested number of points, in
// ascending chronological order; empty months emit zero-valued entries.
type MonthlyTrend struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Points  []TrendPoint `json:"points"`
}

// HeartRateZoneStatistics buckets activities by average heart rate. This is
// an average-heart-rate classification, not a %-of-max computation.
type HeartRateZoneStatistics struct {
	Success                 bool           `json:"success"`
	Message                 string         `json:"message,omitempty"`
	ZoneDistribution        map[string]int `json:"zoneDistribution"`
	TotalActivities         int            `json:"totalActivities"`
	ActivitiesWithHeartRate int            `json:"activitiesWithHeartRate"`
}

// PaceZoneStatistics buckets running activities by average pace (min/km).
type PaceZoneStatistics struct {
	Success                bool           `json:"success"`
	Message                string         `json:"message,omitempty"`
	ZoneDistribution       map[string]int `json:"zoneDistribution"`
	TotalRunningActivities int            `json:"totalRunningActivities"`
}
