package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// ListActivityFilter narrows GetAll results. Zero values mean "no filter".
type ListActivityFilter struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

type Service interface {
	GetAll(ctx context.Context, filter ListActivityFilter) ([]Activity, error)
	GetByID(ctx context.Context, id snowflake.ID) (Activity, error)
	Delete(ctx context.Context, id snowflake.ID) error
	Count(ctx context.Context) (int64, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
