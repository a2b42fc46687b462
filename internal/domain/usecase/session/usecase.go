package session

import (
	"context"

	"weather-widget/internal/domain/entity"
)

type UseCase interface {
	// Current returns the session state, or a fresh idle session when none is stored
	Current(ctx context.Context, id string) (entity.Session, error)

	// Lookup runs a weather lookup for the session and returns the final state
	Lookup(ctx context.Context, id string, city string) (entity.Session, error)

	// StartLookup stores the loading state, runs the lookup in the background and
	// returns the loading state immediately
	StartLookup(ctx context.Context, id string, city string) (entity.Session, error)

	// RemoveIdleSessions deletes sessions untouched for longer than the configured TTL
	RemoveIdleSessions(ctx context.Context) (int, error)
}
