package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/strideworks/paceline/internal/activity/domain"
	pkgdb "github.com/strideworks/paceline/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, activity *domain.Activity) error {
	return db.WithContext(ctx).Create(activity).Error
}

func (r *repo) InsertBatch(ctx context.Context, db *gorm.DB, activities []*domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(activities, 200).Error
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := db.WithContext(ctx).
		Model(&domain.Activity{}).
		Order("start_time asc, id asc").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Activity, error) {
	var activity domain.Activity
	err := db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("id = ?", id).
		Take(&activity).Error
	if pkgdb.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *repo) FindByType(ctx context.Context, db *gorm.DB, activityType string) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("activity_type = ?", activityType).
		Order("start_time desc, id desc").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repo) FindByStartTimeBetween(ctx context.Context, db *gorm.DB, start, end time.Time) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("start_time BETWEEN ? AND ?", start, end).
		Order("start_time asc, id asc").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *repo) DeleteByID(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Activity{}).Error
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Activity{}).Count(&count).Error
	return count, err
}
