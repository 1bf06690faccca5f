package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/strideworks/paceline/internal/activity/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("activity.service"),
		repo: p.Repo,
	}
}

func (s *Service) GetAll(ctx context.Context, filter domain.ListActivityFilter) ([]domain.Activity, error) {
	if filter.Type != "" && filter.StartDate == nil && filter.EndDate == nil {
		return s.repo.FindByType(ctx, s.db, filter.Type)
	}

	stmt := s.db.WithContext(ctx).Model(&domain.Activity{})
	if filter.Type != "" {
		stmt = stmt.Where("activity_type = ?", filter.Type)
	}
	if filter.StartDate != nil {
		stmt = stmt.Where("start_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		stmt = stmt.Where("start_time <= ?", *filter.EndDate)
	}

	var activities []domain.Activity
	if err := stmt.Order("start_time desc, id desc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Activity, error) {
	if id == 0 {
		return domain.Activity{}, domain.ErrInvalidID
	}

	activity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Activity{}, err
	}
	if activity == nil {
		return domain.Activity{}, domain.ErrNotFound
	}
	return *activity, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	if id == 0 {
		return domain.ErrInvalidID
	}

	activity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if activity == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.DeleteByID(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("activity deleted", zap.Int64("activity_id", int64(id)))
	return nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, s.db)
}
