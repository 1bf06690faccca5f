package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/clock"
	"github.com/strideworks/paceline/internal/importer/csv"
	"github.com/strideworks/paceline/internal/importer/domain"
	"github.com/strideworks/paceline/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultRecentLimit = 10

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	ActivityRepo activitydomain.Repository
	Metrics      *metrics.ImportMetrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	activityRepo activitydomain.Repository
	normalizer   *csv.Normalizer
	metrics      *metrics.ImportMetrics
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("importer.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		activityRepo: p.ActivityRepo,
		normalizer:   csv.NewNormalizer(),
		metrics:      p.Metrics,
	}
}

// Validate runs the pre-pipeline gate. It parses the file once as a trial;
// the trial result is discarded and no ImportRecord is created on rejection.
func (s *Service) Validate(ctx context.Context, req domain.ImportRequest) error {
	if !strings.HasSuffix(strings.ToLower(req.FileName), ".csv") {
		return domain.ErrNotCSV
	}
	if len(req.Data) == 0 {
		return domain.ErrEmptyFile
	}

	result, err := s.normalizer.Normalize(bytes.NewReader(req.Data))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	if !result.HasKeyHeader() {
		return domain.ErrMissingHeaders
	}
	if result.RowCount() == 0 {
		return domain.ErrNoDataRows
	}
	return nil
}

func (s *Service) Import(ctx context.Context, req domain.ImportRequest) (domain.ImportSummary, error) {
	started := time.Now()
	now := s.clock.Now()

	record := &domain.ImportRecord{
		ID:         s.genID.Generate(),
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		ImportTime: now,
		Status:     domain.StatusSuccess,
	}

	result, err := s.normalizer.Normalize(bytes.NewReader(req.Data))
	if err != nil {
		return s.failImport(ctx, record, started, fmt.Errorf("normalize %s: %w", req.FileName, err))
	}

	activities := make([]*activitydomain.Activity, 0, len(result.Rows))
	for _, row := range result.Rows {
		activities = append(activities, &activitydomain.Activity{
			ID:               s.genID.Generate(),
			Name:             row.Name,
			Type:             row.Type,
			StartTime:        row.StartTime,
			DurationSeconds:  row.DurationSeconds,
			DistanceMeters:   row.DistanceMeters,
			Calories:         row.Calories,
			AverageHeartRate: row.AverageHeartRate,
			MaxHeartRate:     row.MaxHeartRate,
			AveragePace:      row.AveragePace,
			SourceActivityID: row.SourceActivityID,
			ImportDate:       now,
			ImportRecordID:   record.ID,
		})
	}

	record.ActivityCount = len(activities)
	if len(result.RowErrors) > 0 {
		if encoded, err := json.Marshal(result.RowErrors); err == nil {
			record.RowErrors = datatypes.JSON(encoded)
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, record); err != nil {
			return fmt.Errorf("persist import record: %w", err)
		}
		if err := s.activityRepo.InsertBatch(ctx, tx, activities); err != nil {
			return fmt.Errorf("persist activities: %w", err)
		}
		return nil
	})
	if err != nil {
		return s.failImport(ctx, record, started, err)
	}

	s.log.Info("import finished",
		zap.String("file_name", req.FileName),
		zap.Int("imported", len(activities)),
		zap.Int("rejected", len(result.RowErrors)),
	)
	s.observe(string(domain.StatusSuccess), len(activities), len(result.RowErrors), started)

	return domain.ImportSummary{
		Success:        true,
		Message:        "import completed",
		SuccessCount:   len(activities),
		FailureCount:   len(result.RowErrors),
		ImportRecordID: record.ID,
		Errors:         result.RowErrors,
	}, nil
}

// failImport flips the record to failure and still persists it so the run
// stays auditable.
func (s *Service) failImport(ctx context.Context, record *domain.ImportRecord, started time.Time, cause error) (domain.ImportSummary, error) {
	message := cause.Error()
	if strings.TrimSpace(message) == "" {
		message = "unknown import error"
	}

	record.Status = domain.StatusFailure
	record.ErrorMessage = &message
	record.ActivityCount = 0

	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		s.log.Error("persist failed import record", zap.Error(err))
	}

	s.log.Error("import failed",
		zap.String("file_name", record.FileName),
		zap.Error(cause),
	)
	s.observe(string(domain.StatusFailure), 0, 0, started)

	return domain.ImportSummary{
		Success:        false,
		Message:        "import failed: " + message,
		ImportRecordID: record.ID,
	}, nil
}

func (s *Service) RecentImports(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.FindRecent(ctx, s.db, limit)
}

func (s *Service) DeleteImport(ctx context.Context, id snowflake.ID) error {
	record, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrRecordNotFound
	}

	if err := s.repo.DeleteByID(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("import record deleted",
		zap.Int64("import_record_id", int64(id)),
		zap.Int("activities", record.ActivityCount),
	)
	return nil
}

func (s *Service) observe(status string, imported, rejected int, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveImport(status, imported, rejected, time.Since(started))
	}
}
