package api

import (
	"context"

	"weather-widget/internal/domain/entity"
)

// GeocodingGateway defines the interface for city name resolution
type GeocodingGateway interface {
	// SearchCity resolves a free-text city name to at most count candidate locations.
	// An empty slice with a nil error means the call succeeded but nothing matched.
	SearchCity(ctx context.Context, name string, count int) ([]entity.GeoLocation, error)
}
