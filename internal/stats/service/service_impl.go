package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/clock"
	"github.com/strideworks/paceline/internal/config"
	"github.com/strideworks/paceline/internal/stats/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Zones *config.ZoneCatalogHolder
	Repo  activitydomain.Repository
}

type statsService struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	zones *config.ZoneCatalogHolder
	repo  activitydomain.Repository
}

func New(p Params) domain.Service {
	return &statsService{
		db:    p.DB,
		log:   p.Log.Named("stats"),
		clock: p.Clock,
		zones: p.Zones,
		repo:  p.Repo,
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *statsService) Overall(ctx context.Context) *domain.OverallStatistics {
	activities, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		s.log.Error("overall statistics query failed", zap.Error(err))
		return &domain.OverallStatistics{Success: false, Message: "failed to compute overall statistics: " + err.Error()}
	}
	if len(activities) == 0 {
		return &domain.OverallStatistics{Success: true, Message: "no activities imported yet"}
	}

	var (
		distanceMeters  float64
		durationSeconds int64
		calories        int
		hrSum, hrCount  int
		paceSum         float64
		paceCount       int
		first, last     time.Time
	)
	first = activities[0].StartTime
	last = activities[0].StartTime
	for _, a := range activities {
		if a.DistanceMeters != nil {
			distanceMeters += *a.DistanceMeters
		}
		if a.DurationSeconds != nil {
			durationSeconds += *a.DurationSeconds
		}
		if a.Calories != nil {
			calories += *a.Calories
		}
		if a.AverageHeartRate != nil {
			hrSum += *a.AverageHeartRate
			hrCount++
		}
		if a.AveragePace != nil {
			paceSum += *a.AveragePace
			paceCount++
		}
		if a.StartTime.Before(first) {
			first = a.StartTime
		}
		if a.StartTime.After(last) {
			last = a.StartTime
		}
	}

	out := &domain.OverallStatistics{
		Success:           true,
		TotalDistance:     round2(distanceMeters / 1000),
		TotalActivities:   len(activities),
		TotalDuration:     round2(float64(durationSeconds) / 3600),
		TotalCalories:     calories,
		FirstActivityDate: &first,
		LastActivityDate:  &last,
	}
	if hrCount > 0 {
		out.AverageHeartRate = int(math.Round(float64(hrSum) / float64(hrCount)))
	}
	if paceCount > 0 {
		out.AveragePace = round2(paceSum / float64(paceCount))
	}
	return out
}

func (s *statsService) DateRange(ctx context.Context, start, end time.Time) *domain.RangeStatistics {
	const day = "2006-01-02"
	out := &domain.RangeStatistics{
		StartDate:  start.Format(day),
		EndDate:    end.Format(day),
		Activities: []activitydomain.Activity{},
	}

	// Both bounds are inclusive calendar days.
	rangeEnd := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	activities, err := s.repo.FindByStartTimeBetween(ctx, s.db, start, rangeEnd)
	if err != nil {
		s.log.Error("date range statistics query failed",
			zap.String("start", out.StartDate),
			zap.String("end", out.EndDate),
			zap.Error(err))
		out.Message = "failed to compute date range statistics: " + err.Error()
		return out
	}

	var (
		distanceMeters  float64
		durationSeconds int64
		calories        int
	)
	for _, a := range activities {
		if a.DistanceMeters != nil {
			distanceMeters += *a.DistanceMeters
		}
		if a.DurationSeconds != nil {
			durationSeconds += *a.DurationSeconds
		}
		if a.Calories != nil {
			calories += *a.Calories
		}
	}

	out.Success = true
	out.TotalDistance = round2(distanceMeters / 1000)
	out.TotalActivities = len(activities)
	out.TotalDuration = round2(float64(durationSeconds) / 3600)
	out.TotalCalories = calories
	out.Activities = activities
	return out
}

func (s *statsService) ByType(ctx context.Context) *domain.ByTypeStatistics {
	activities, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		s.log.Error("by-type statistics query failed", zap.Error(err))
		return &domain.ByTypeStatistics{Success: false, Message: "failed to compute type statistics: " + err.Error()}
	}

	type group struct {
		count          int
		distanceMeters float64
	}
	groups := map[string]*group{}
	for _, a := range activities {
		g := groups[a.Type]
		if g == nil {
			g = &group{}
			groups[a.Type] = g
		}
		g.count++
		if a.DistanceMeters != nil {
			g.distanceMeters += *a.DistanceMeters
		}
	}

	total := len(activities)
	types := make([]domain.TypeStatistics, 0, len(groups))
	for name, g := range groups {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(g.count) / float64(total) * 100))
		}
		types = append(types, domain.TypeStatistics{
			ActivityType:    name,
			TotalDistance:   round2(g.distanceMeters / 1000),
			TotalActivities: g.count,
			Percentage:      pct,
		})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].TotalActivities != types[j].TotalActivities {
			return types[i].TotalActivities > types[j].TotalActivities
		}
		return types[i].ActivityType < types[j].ActivityType
	})

	return &domain.ByTypeStatistics{Success: true, Types: types}
}

func (s *statsService) Recent(ctx context.Context, limit int) *domain.RecentActivities {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	activities, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		s.log.Error("recent activities query failed", zap.Error(err))
		return &domain.RecentActivities{Success: false, Message: "failed to list recent activities: " + err.Error(), Activities: []domain.RecentActivity{}}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime.After(activities[j].StartTime)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}

	recent := make([]domain.RecentActivity, 0, len(activities))
	for _, a := range activities {
		item := domain.RecentActivity{
			ID:               a.ID,
			ActivityName:     a.Name,
			ActivityType:     a.Type,
			StartTime:        a.StartTime,
			Duration:         a.DurationSeconds,
			Calories:         a.Calories,
			AverageHeartRate: a.AverageHeartRate,
			AveragePace:      a.AveragePace,
		}
		if a.DistanceMeters != nil {
			item.Distance = round2(*a.DistanceMeters / 1000)
		}
		recent = append(recent, item)
	}
	return &domain.RecentActivities{Success: true, Activities: recent}
}

func (s *statsService) MonthlyTrend(ctx context.Context, months int) *domain.MonthlyTrend {
	if months <= 0 || months > 24 {
		months = 6
	}
	activities, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		s.log.Error("monthly trend query failed", zap.Int("months", months), zap.Error(err))
		return &domain.MonthlyTrend{Success: false, Message: "failed to compute monthly trend: " + err.Error(), Points: []domain.TrendPoint{}}
	}

	now := s.clock.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]domain.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var (
			distanceMeters float64
			count          int
		)
		for _, a := range activities {
			if a.StartTime.Before(monthStart) || !a.StartTime.Before(monthEnd) {
				continue
			}
			count++
			if a.DistanceMeters != nil {
				distanceMeters += *a.DistanceMeters
			}
		}
		points = append(points, domain.TrendPoint{
			Month:           fmt.Sprintf("%04d-%02d", monthStart.Year(), int(monthStart.Month())),
			TotalDistance:   round2(distanceMeters / 1000),
			TotalActivities: count,
		})
	}
	return &domain.MonthlyTrend{Success: true, Points: points}
}

func (s *statsService) HeartRateZones(ctx context.Context) *domain.HeartRateZoneStatistics {
	activities, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		s.log.Error("heart rate zone query failed", zap.Error(err))
		return &domain.HeartRateZoneStatistics{Success: false, Message: "failed to compute heart rate zones: " + err.Error(), ZoneDistribution: map[string]int{}}
	}

	catalog := s.zones.Current()
	distribution := map[string]int{}
	for _, z := range catalog.HeartRateZones {
		distribution[z.Label] = 0
	}

	withHR := 0
	for _, a := range activities {
		if a.AverageHeartRate == nil {
			continue
		}
		withHR++
		distribution[catalog.HeartRateZoneLabel(*a.AverageHeartRate)]++
	}

	return &domain.HeartRateZoneStatistics{
		Success:                 true,
		ZoneDistribution:        distribution,
		TotalActivities:         len(activities),
		ActivitiesWithHeartRate: withHR,
	}
}

// isRunning matches the source types Garmin and Chinese-locale exports emit
// for runs.
func isRunning(activityType string) bool {
	return strings.Contains(activityType, "Run") ||
		strings.Contains(activityType, "跑步") ||
		activityType == "Running"
}

func (s *statsService) PaceZones(ctx context.Context) *domain.PaceZoneStatistics {
	activities, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		s.log.Error("pace zone query failed", zap.Error(err))
		return &domain.PaceZoneStatistics{Success: false, Message: "failed to compute pace zones: " + err.Error(), ZoneDistribution: map[string]int{}}
	}

	catalog := s.zones.Current()
	distribution := map[string]int{}
	for _, z := range catalog.PaceZones {
		distribution[z.Label] = 0
	}

	running := 0
	for _, a := range activities {
		if !isRunning(a.Type) || a.AveragePace == nil {
			continue
		}
		running++
		distribution[catalog.PaceZoneLabel(*a.AveragePace)]++
	}

	return &domain.PaceZoneStatistics{
		Success:                true,
		ZoneDistribution:       distribution,
		TotalRunningActivities: running,
	}
}
