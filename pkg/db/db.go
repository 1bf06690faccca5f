// Package db opens the gorm connection shared by all repositories.
package db

import (
	"context"
	"time"

	"github.com/strideworks/paceline/internal/config"
	"github.com/strideworks/paceline/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Open builds the gorm handle with zap-backed query logging and pool limits.
func Open(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(logger.DefaultGormLoggerConfig()),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Info("closing database connection")
				return sqlDB.Close()
			},
		})
	}

	log.Info("database connection established", zap.String("type", cfg.DBType))
	return conn, nil
}

var Module = fx.Module("db",
	fx.Provide(Open),
)
