package api

import (
	"context"

	"weather-widget/internal/domain/model/external"
)

// ForecastGateway defines the interface for current-conditions lookups
type ForecastGateway interface {
	// GetCurrentWeather gets the current weather at the given coordinates
	GetCurrentWeather(ctx context.Context, latitude float64, longitude float64) (*external.CurrentWeatherDTO, error)
}
