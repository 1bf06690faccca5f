package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/importer/domain"
	pkgdb "github.com/strideworks/paceline/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.ImportRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.ImportRecord, error) {
	var record domain.ImportRecord
	err := db.WithContext(ctx).
		Model(&domain.ImportRecord{}).
		Where("id = ?", id).
		Take(&record).Error
	if pkgdb.IsNotFoundErr(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]domain.ImportRecord, error) {
	var records []domain.ImportRecord
	err := db.WithContext(ctx).
		Model(&domain.ImportRecord{}).
		Order("import_time desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) DeleteByID(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	// The FK carries ON DELETE CASCADE on postgres; the explicit delete keeps
	// the sqlite path equivalent.
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("import_record_id = ?", id).Delete(&activitydomain.Activity{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.ImportRecord{}).Error
	})
}
