package weather

import (
	"context"

	"weather-widget/internal/domain/entity"
)

type UseCase interface {
	// Lookup resolves cityText to a location and returns its current weather.
	// Any returned error is a *LookupError.
	Lookup(ctx context.Context, cityText string) (*entity.WeatherReading, error)
}
