package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-widget/internal/domain/model/external"
	"weather-widget/internal/infra/metrics"
	"weather-widget/pkg/http"
)

// forecastGatewayImpl implements the ForecastGateway interface against the Open-Meteo forecast API
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetCurrentWeather gets the current weather at the given coordinates
func (f *forecastGatewayImpl) GetCurrentWeather(ctx context.Context, latitude float64, longitude float64) (*external.CurrentWeatherDTO, error) {
	successResp, errResp, _, err := f.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParam("latitude", strconv.FormatFloat(latitude, 'f', -1, 64)).
		WithQueryParam("longitude", strconv.FormatFloat(longitude, 'f', -1, 64)).
		WithQueryParam("current_weather", "true").
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute(ctx)
	metrics.ObserveUpstream("forecast", err)

	if err != nil {
		if errResp != nil {
			if apiErr := errResp.(*external.APIErrorResponse); apiErr.Reason != "" {
				return nil, fmt.Errorf("forecast request failed: %s: %w", apiErr.Reason, err)
			}
		}
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	response := successResp.(*external.ForecastResponse)
	if response.CurrentWeather == nil {
		return nil, errors.New("forecast response has no current_weather")
	}
	return response.CurrentWeather, nil
}
