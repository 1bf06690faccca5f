// Package seed imports a bundled sample export on startup so a fresh
// install has data to explore. It reuses the real import pipeline rather
// than inserting rows directly.
package seed

import (
	"context"
	_ "embed"

	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/config"
	importerdomain "github.com/strideworks/paceline/internal/importer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed sample_activities.csv
var sampleExport []byte

const sampleFileName = "sample_activities.csv"

type Params struct {
	fx.In

	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	ImportSvc    importerdomain.Service
	ActivityRepo activitydomain.Repository
}

// EnsureDemoData imports the bundled export when seeding is enabled and the
// store holds no activities yet.
func EnsureDemoData(p Params) error {
	if !p.Cfg.SeedDemoData {
		return nil
	}

	log := p.Log.Named("seed")
	ctx := context.Background()

	count, err := p.ActivityRepo.Count(ctx, p.DB)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("store already populated, skipping demo data", zap.Int64("activities", count))
		return nil
	}

	summary, err := p.ImportSvc.Import(ctx, importerdomain.ImportRequest{
		FileName: sampleFileName,
		FileSize: int64(len(sampleExport)),
		Data:     sampleExport,
	})
	if err != nil {
		return err
	}

	log.Info("demo data imported",
		zap.Int("imported", summary.SuccessCount),
		zap.Int("rejected", summary.FailureCount))
	return nil
}

var Module = fx.Module("seed",
	fx.Invoke(EnsureDemoData),
)
