package api

import (
	"context"
	"fmt"
	"strconv"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model/external"
	"weather-widget/internal/infra/metrics"
	"weather-widget/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface against the Open-Meteo geocoding API
type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// SearchCity searches for cities by name
func (g *geocodingGatewayImpl) SearchCity(ctx context.Context, name string, count int) ([]entity.GeoLocation, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParam("name", name).
		WithQueryParam("count", strconv.Itoa(count)).
		WithSuccessResp(&external.GeocodingSearchResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute(ctx)
	metrics.ObserveUpstream("geocoding", err)

	if err != nil {
		if errResp != nil {
			if apiErr := errResp.(*external.APIErrorResponse); apiErr.Reason != "" {
				return nil, fmt.Errorf("geocoding search failed: %s: %w", apiErr.Reason, err)
			}
		}
		return nil, fmt.Errorf("geocoding search failed: %w", err)
	}

	response := successResp.(*external.GeocodingSearchResponse)
	locations := make([]entity.GeoLocation, 0, len(response.Results))
	for _, result := range response.Results {
		if result.Latitude == nil || result.Longitude == nil {
			return nil, fmt.Errorf("geocoding result %q has no coordinates", result.Name)
		}
		locations = append(locations, entity.GeoLocation{
			Name:      result.Name,
			Country:   result.Country,
			Latitude:  *result.Latitude,
			Longitude: *result.Longitude,
		})
	}

	return locations, nil
}
