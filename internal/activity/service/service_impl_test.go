package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/strideworks/paceline/internal/activity/domain"
	"github.com/strideworks/paceline/internal/activity/repository"
)

func setupActivityService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Activity{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{DB: db, Log: zap.NewNop(), Repo: repository.Provide()})
	return svc, db, node
}

func seedActivity(t *testing.T, db *gorm.DB, node *snowflake.Node, activityType string, start time.Time) snowflake.ID {
	t.Helper()
	activity := domain.Activity{
		ID:             node.Generate(),
		Type:           activityType,
		StartTime:      start,
		ImportDate:     start,
		ImportRecordID: 1,
	}
	require.NoError(t, repository.Provide().Insert(context.Background(), db, &activity))
	return activity.ID
}

func TestGetAllFiltersByTypeAndDate(t *testing.T) {
	svc, db, node := setupActivityService(t)
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	seedActivity(t, db, node, "Running", base)
	seedActivity(t, db, node, "Running", base.AddDate(0, 0, 5))
	seedActivity(t, db, node, "Cycling", base.AddDate(0, 0, 2))

	all, err := svc.GetAll(context.Background(), domain.ListActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Newest first.
	assert.True(t, all[0].StartTime.After(all[2].StartTime))

	running, err := svc.GetAll(context.Background(), domain.ListActivityFilter{Type: "Running"})
	require.NoError(t, err)
	assert.Len(t, running, 2)

	cutoff := base.AddDate(0, 0, 1)
	late, err := svc.GetAll(context.Background(), domain.ListActivityFilter{StartDate: &cutoff})
	require.NoError(t, err)
	assert.Len(t, late, 2)
}

func TestGetByID(t *testing.T) {
	svc, db, node := setupActivityService(t)
	id := seedActivity(t, db, node, "Running", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC))

	activity, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Running", activity.Type)

	_, err = svc.GetByID(context.Background(), node.Generate())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestDeleteRemovesActivity(t *testing.T) {
	svc, db, node := setupActivityService(t)
	id := seedActivity(t, db, node, "Running", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC))

	require.NoError(t, svc.Delete(context.Background(), id))

	var count int64
	require.NoError(t, db.Model(&domain.Activity{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrNotFound)
}

func TestCount(t *testing.T) {
	svc, db, node := setupActivityService(t)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	seedActivity(t, db, node, "Running", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC))
	count, err = svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
