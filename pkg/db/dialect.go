package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/strideworks/paceline/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialect maps the configured database type to a gorm dialector.
func Dialect(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "postgres":
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
		)), nil
	case "sqlite":
		return sqlite.Open(cfg.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DBType)
	}
}
