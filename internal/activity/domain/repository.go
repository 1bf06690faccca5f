package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, activity *Activity) error
	InsertBatch(ctx context.Context, db *gorm.DB, activities []*Activity) error
	FindAll(ctx context.Context, db *gorm.DB) ([]Activity, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Activity, error)
	FindByType(ctx context.Context, db *gorm.DB, activityType string) ([]Activity, error)
	FindByStartTimeBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]Activity, error)
	DeleteByID(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
