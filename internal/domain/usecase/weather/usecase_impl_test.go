package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/model/external"
	httpclient "weather-widget/pkg/http"
)

type stubGeocodingGateway struct {
	locations []entity.GeoLocation
	err       error
	calls     []string
	counts    []int
}

func (s *stubGeocodingGateway) SearchCity(_ context.Context, name string, count int) ([]entity.GeoLocation, error) {
	s.calls = append(s.calls, name)
	s.counts = append(s.counts, count)
	return s.locations, s.err
}

type stubForecastGateway struct {
	current *external.CurrentWeatherDTO
	err     error
	calls   [][2]float64
}

func (s *stubForecastGateway) GetCurrentWeather(_ context.Context, latitude float64, longitude float64) (*external.CurrentWeatherDTO, error) {
	s.calls = append(s.calls, [2]float64{latitude, longitude})
	return s.current, s.err
}

var paris = entity.GeoLocation{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522}

func requireLookupError(t *testing.T, err error, kind ErrorKind, message string) {
	t.Helper()
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, kind, lookupErr.Kind)
	assert.Equal(t, message, lookupErr.Error())
}

func TestLookupSuccess(t *testing.T) {
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris}}
	forecast := &stubForecastGateway{current: &external.CurrentWeatherDTO{
		Temperature: 18.5, WindSpeed: 12.0, WindDirection: 240, WeatherCode: 1, IsDay: 1, Time: "2026-10-18T12:00",
	}}
	uc := NewWeatherUseCase(geocoding, forecast)

	reading, err := uc.Lookup(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, &entity.WeatherReading{
		Location:             "Paris, France",
		TemperatureCelsius:   18.5,
		WindSpeedKph:         12.0,
		WindDirectionDegrees: 240,
		WeatherCode:          1,
		Condition:            entity.ConditionClouds,
		Icon:                 "clouds.png",
		IsDay:                true,
		ObservedAt:           "2026-10-18T12:00",
	}, reading)
	assert.Equal(t, []string{"Paris"}, geocoding.calls)
	assert.Equal(t, []int{1}, geocoding.counts)
	assert.Equal(t, [][2]float64{{48.8566, 2.3522}}, forecast.calls)
}

func TestLookupTrimsCity(t *testing.T) {
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris}}
	forecast := &stubForecastGateway{current: &external.CurrentWeatherDTO{}}
	uc := NewWeatherUseCase(geocoding, forecast)

	_, err := uc.Lookup(context.Background(), "  Paris \t")

	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, geocoding.calls)
}

func TestLookupEmptyCityMakesNoCalls(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris}}
		forecast := &stubForecastGateway{current: &external.CurrentWeatherDTO{}}
		uc := NewWeatherUseCase(geocoding, forecast)

		reading, err := uc.Lookup(context.Background(), input)

		assert.Nil(t, reading)
		requireLookupError(t, err, ErrEmptyCity, "Please enter a city name")
		assert.Empty(t, geocoding.calls)
		assert.Empty(t, forecast.calls)
	}
}

func TestLookupGeocodingFailure(t *testing.T) {
	cause := errors.New("connection refused")
	geocoding := &stubGeocodingGateway{err: cause}
	forecast := &stubForecastGateway{}
	uc := NewWeatherUseCase(geocoding, forecast)

	reading, err := uc.Lookup(context.Background(), "Paris")

	assert.Nil(t, reading)
	requireLookupError(t, err, ErrGeocodingFailed, "Failed to fetch city coordinates")
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, forecast.calls)
}

func TestLookupCityNotFound(t *testing.T) {
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{}}
	forecast := &stubForecastGateway{}
	uc := NewWeatherUseCase(geocoding, forecast)

	reading, err := uc.Lookup(context.Background(), "Atlantis")

	assert.Nil(t, reading)
	requireLookupError(t, err, ErrCityNotFound, "City not found")
	assert.True(t, errors.Is(err, &LookupError{Kind: ErrCityNotFound}))
	assert.Empty(t, forecast.calls, "forecast must not be called when no city matched")
}

func TestLookupUsesFirstMatch(t *testing.T) {
	other := entity.GeoLocation{Name: "Paris", Country: "United States", Latitude: 33.66, Longitude: -95.55}
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris, other}}
	forecast := &stubForecastGateway{current: &external.CurrentWeatherDTO{}}
	uc := NewWeatherUseCase(geocoding, forecast)

	reading, err := uc.Lookup(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "Paris, France", reading.Location)
	assert.Equal(t, [][2]float64{{48.8566, 2.3522}}, forecast.calls)
}

func TestLookupForecastFailure(t *testing.T) {
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris}}
	forecast := &stubForecastGateway{err: errors.New("http error: status 502")}
	uc := NewWeatherUseCase(geocoding, forecast)

	reading, err := uc.Lookup(context.Background(), "Paris")

	assert.Nil(t, reading)
	requireLookupError(t, err, ErrForecastFailed, "Failed to fetch weather data")
	assert.Len(t, geocoding.calls, 1)
	assert.Len(t, forecast.calls, 1)
}

func TestLookupForecastWithoutBody(t *testing.T) {
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris}}
	forecast := &stubForecastGateway{}
	uc := NewWeatherUseCase(geocoding, forecast)

	_, err := uc.Lookup(context.Background(), "Paris")

	requireLookupError(t, err, ErrForecastFailed, "Failed to fetch weather data")
}

func TestLookupRepeatedCallsAreIndependent(t *testing.T) {
	geocoding := &stubGeocodingGateway{locations: []entity.GeoLocation{paris}}
	forecast := &stubForecastGateway{current: &external.CurrentWeatherDTO{Temperature: 10}}
	uc := NewWeatherUseCase(geocoding, forecast)

	first, err := uc.Lookup(context.Background(), "Paris")
	require.NoError(t, err)

	forecast.current = &external.CurrentWeatherDTO{Temperature: 11}
	second, err := uc.Lookup(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, 10.0, first.TemperatureCelsius)
	assert.Equal(t, 11.0, second.TemperatureCelsius)
	assert.Len(t, geocoding.calls, 2)
	assert.Len(t, forecast.calls, 2)
}

func newJSONUpstream(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupForecastMissingCurrentWeather(t *testing.T) {
	geocoding := newJSONUpstream(t, `{"results":[{"name":"Paris","country":"France","latitude":48.8566,"longitude":2.3522}]}`)
	forecast := newJSONUpstream(t, `{"latitude":48.86,"longitude":2.35}`)
	uc := NewWeatherUseCase(
		api.NewGeocodingGateway(geocoding.URL, httpclient.ClientOptions{}),
		api.NewForecastGateway(forecast.URL, httpclient.ClientOptions{}),
	)

	reading, err := uc.Lookup(context.Background(), "Paris")

	assert.Nil(t, reading)
	requireLookupError(t, err, ErrForecastFailed, "Failed to fetch weather data")
}

func TestLookupGeocodingResultWithoutCoordinates(t *testing.T) {
	geocoding := newJSONUpstream(t, `{"results":[{"name":"Paris","country":"France"}]}`)
	forecast := &stubForecastGateway{current: &external.CurrentWeatherDTO{}}
	uc := NewWeatherUseCase(api.NewGeocodingGateway(geocoding.URL, httpclient.ClientOptions{}), forecast)

	reading, err := uc.Lookup(context.Background(), "Paris")

	assert.Nil(t, reading)
	requireLookupError(t, err, ErrGeocodingFailed, "Failed to fetch city coordinates")
	assert.Empty(t, forecast.calls)
}
