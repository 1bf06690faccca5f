package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *ImportRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*ImportRecord, error)
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]ImportRecord, error)
	// DeleteByID removes the record and, through the cascade constraint, the
	// activities it owns.
	DeleteByID(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
