package migration

import (
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/config"
	importerdomain "github.com/strideworks/paceline/internal/importer/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// The versioned SQL migrations target Postgres. SQLite deployments
		// (the default, and the test harness) lean on gorm's schema sync.
		if cfg.DBType != "postgres" {
			return conn.AutoMigrate(
				&importerdomain.ImportRecord{},
				&activitydomain.Activity{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
