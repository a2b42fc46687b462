package store

import (
	"context"
	"time"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
)

// SessionGateway keeps the current state of each widget session. It only
// ever holds the latest state; saving replaces the previous value.
type SessionGateway interface {
	// FindByID returns nil, nil when the session does not exist
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session entity.Session) error
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes sessions not updated since before and returns how many were removed
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
	Health() model.ComponentHealthStatus
}
