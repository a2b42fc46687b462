package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/model/external"
	"weather-widget/internal/infra/metrics"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
)

const geocodingResultCount = 1

type weatherUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
}

func NewWeatherUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway) UseCase {
	return &weatherUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
	}
}

// Lookup geocodes the city and then fetches current conditions for the first match
func (uc *weatherUseCase) Lookup(ctx context.Context, cityText string) (*entity.WeatherReading, error) {
	start := time.Now()
	reading, err := uc.lookup(ctx, strings.TrimSpace(cityText))

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		metrics.ObserveLookup(string(lookupErr.Kind), time.Since(start))
		log.Warn(msg.GetMessage("weather.lookup.fail", cityText, lookupErr.Message),
			zap.String("city", cityText),
			zap.String("kind", string(lookupErr.Kind)),
			zap.NamedError("cause", lookupErr.Err))
		return nil, lookupErr
	}

	metrics.ObserveLookup("success", time.Since(start))
	log.Info(msg.GetMessage("weather.lookup.end", cityText, reading.Location),
		zap.String("city", cityText),
		zap.String("location", reading.Location),
		zap.Int("weather_code", reading.WeatherCode))
	return reading, nil
}

func (uc *weatherUseCase) lookup(ctx context.Context, city string) (*entity.WeatherReading, error) {
	if city == "" {
		return nil, newLookupError(ErrEmptyCity, nil)
	}

	log.Debug(msg.GetMessage("weather.lookup.start", city), zap.String("city", city))

	locations, err := uc.geocodingGateway.SearchCity(ctx, city, geocodingResultCount)
	if err != nil {
		return nil, newLookupError(ErrGeocodingFailed, fmt.Errorf("failed to resolve city %q: %w", city, err))
	}
	if len(locations) == 0 {
		return nil, newLookupError(ErrCityNotFound, nil)
	}
	location := locations[0]

	current, err := uc.forecastGateway.GetCurrentWeather(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return nil, newLookupError(ErrForecastFailed, fmt.Errorf("failed to get current weather for %s: %w", location.DisplayName(), err))
	}
	if current == nil {
		return nil, newLookupError(ErrForecastFailed, errors.New("forecast response has no current weather"))
	}

	reading := convertCurrentWeather(location, current)
	return &reading, nil
}

// convertCurrentWeather combines the resolved location with the forecast's current conditions
func convertCurrentWeather(location entity.GeoLocation, current *external.CurrentWeatherDTO) entity.WeatherReading {
	condition := entity.ClassifyWeatherCode(current.WeatherCode)

	return entity.WeatherReading{
		Location:             location.DisplayName(),
		TemperatureCelsius:   current.Temperature,
		WindSpeedKph:         current.WindSpeed,
		WindDirectionDegrees: current.WindDirection,
		WeatherCode:          current.WeatherCode,
		Condition:            condition,
		Icon:                 condition.Icon(),
		IsDay:                current.IsDay == 1,
		ObservedAt:           current.Time,
	}
}
