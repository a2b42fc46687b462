package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/store"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/weather"
)

// stubWeatherUseCase answers lookups from a map and can block until released,
// so tests can observe the loading state.
type stubWeatherUseCase struct {
	readings map[string]entity.WeatherReading
	err      error
	release  chan struct{}
	started  chan string
}

func (s *stubWeatherUseCase) Lookup(_ context.Context, city string) (*entity.WeatherReading, error) {
	if s.started != nil {
		s.started <- city
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	reading := s.readings[city]
	return &reading, nil
}

type failingSessionGateway struct {
	store.SessionGateway
}

func (failingSessionGateway) Save(context.Context, entity.Session) error {
	return errors.New("store unavailable")
}

func (failingSessionGateway) FindByID(context.Context, string) (*entity.Session, error) {
	return nil, nil
}

func (failingSessionGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown}
}

var parisReading = entity.WeatherReading{
	Location: "Paris, France", TemperatureCelsius: 18.5, WindSpeedKph: 12.0, WeatherCode: 1, Condition: entity.ConditionClouds,
}

func TestCurrentReturnsIdleForUnknownSession(t *testing.T) {
	uc := NewSessionUseCase(time.Minute, store.NewMemorySessionGateway(), &stubWeatherUseCase{})

	session, err := uc.Current(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, entity.SessionIdle, session.Status)
	assert.False(t, session.Loading)
}

func TestLookupSuccess(t *testing.T) {
	gateway := store.NewMemorySessionGateway()
	weatherUC := &stubWeatherUseCase{readings: map[string]entity.WeatherReading{"Paris": parisReading}}
	uc := NewSessionUseCase(time.Minute, gateway, weatherUC)

	session, err := uc.Lookup(context.Background(), "s1", "Paris")

	require.NoError(t, err)
	assert.Equal(t, entity.SessionSuccess, session.Status)
	assert.False(t, session.Loading)
	assert.Empty(t, session.Error)
	assert.Equal(t, parisReading, *session.Reading)

	stored, err := uc.Current(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session, stored)
}

func TestLookupFailureClearsReading(t *testing.T) {
	gateway := store.NewMemorySessionGateway()
	weatherUC := &stubWeatherUseCase{readings: map[string]entity.WeatherReading{"Paris": parisReading}}
	uc := NewSessionUseCase(time.Minute, gateway, weatherUC)

	_, err := uc.Lookup(context.Background(), "s1", "Paris")
	require.NoError(t, err)

	weatherUC.err = &weather.LookupError{Kind: weather.ErrCityNotFound, Message: "City not found"}
	session, err := uc.Lookup(context.Background(), "s1", "Atlantis")

	require.NoError(t, err)
	assert.Equal(t, entity.SessionFailed, session.Status)
	assert.False(t, session.Loading)
	assert.Nil(t, session.Reading)
	assert.Equal(t, "City not found", session.Error)
	assert.Equal(t, "Atlantis", session.City)
}

func TestLookupEmptyCityStillClearsLoading(t *testing.T) {
	weatherUC := &stubWeatherUseCase{err: &weather.LookupError{Kind: weather.ErrEmptyCity, Message: "Please enter a city name"}}
	uc := NewSessionUseCase(time.Minute, store.NewMemorySessionGateway(), weatherUC)

	session, err := uc.Lookup(context.Background(), "s1", "   ")

	require.NoError(t, err)
	assert.False(t, session.Loading)
	assert.Equal(t, "Please enter a city name", session.Error)
}

func TestLookupUnexpectedErrorUsesGenericMessage(t *testing.T) {
	weatherUC := &stubWeatherUseCase{err: errors.New("boom")}
	uc := NewSessionUseCase(time.Minute, store.NewMemorySessionGateway(), weatherUC)

	session, err := uc.Lookup(context.Background(), "s1", "Paris")

	require.NoError(t, err)
	assert.Equal(t, "Failed to fetch weather data", session.Error)
}

func TestLookupReportsStoreFailure(t *testing.T) {
	uc := NewSessionUseCase(time.Minute, failingSessionGateway{}, &stubWeatherUseCase{})

	_, err := uc.Lookup(context.Background(), "s1", "Paris")

	assert.ErrorContains(t, err, "store unavailable")
}

func TestStartLookupExposesLoadingUntilResolved(t *testing.T) {
	gateway := store.NewMemorySessionGateway()
	weatherUC := &stubWeatherUseCase{
		readings: map[string]entity.WeatherReading{"Paris": parisReading},
		release:  make(chan struct{}),
		started:  make(chan string, 1),
	}
	uc := NewSessionUseCase(time.Minute, gateway, weatherUC)
	ctx, cancel := context.WithCancel(context.Background())

	loading, err := uc.StartLookup(ctx, "s1", "Paris")
	require.NoError(t, err)
	assert.True(t, loading.Loading)
	assert.Equal(t, entity.SessionLoading, loading.Status)

	<-weatherUC.started
	// the request that started the lookup is gone, the lookup must still finish
	cancel()

	current, err := uc.Current(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, current.Loading)
	assert.Nil(t, current.Reading)

	close(weatherUC.release)

	assert.Eventually(t, func() bool {
		current, err := uc.Current(context.Background(), "s1")
		return err == nil && current.Status == entity.SessionSuccess && !current.Loading
	}, time.Second, 10*time.Millisecond)
}

func TestRemoveIdleSessions(t *testing.T) {
	gateway := store.NewMemorySessionGateway()
	uc := NewSessionUseCase(30*time.Minute, gateway, &stubWeatherUseCase{}).(*sessionUseCase)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	require.NoError(t, gateway.Save(context.Background(), entity.NewSession("old", now.Add(-time.Hour))))
	require.NoError(t, gateway.Save(context.Background(), entity.NewSession("new", now.Add(-time.Minute))))

	removed, err := uc.RemoveIdleSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

// flakySessionGateway fails the save calls whose 1-based position is listed in failOn
type flakySessionGateway struct {
	*store.MemorySessionGateway
	failOn map[int]bool
	saves  int
}

func (f *flakySessionGateway) Save(ctx context.Context, session entity.Session) error {
	f.saves++
	if f.failOn[f.saves] {
		return errors.New("store unavailable")
	}
	return f.MemorySessionGateway.Save(ctx, session)
}

func TestLookupOutcomeSaveFailureLeavesSessionFailed(t *testing.T) {
	gateway := &flakySessionGateway{MemorySessionGateway: store.NewMemorySessionGateway(), failOn: map[int]bool{2: true}}
	weatherUC := &stubWeatherUseCase{readings: map[string]entity.WeatherReading{"Paris": parisReading}}
	uc := NewSessionUseCase(time.Minute, gateway, weatherUC)

	outcome, err := uc.Lookup(context.Background(), "s1", "Paris")

	assert.ErrorContains(t, err, "store unavailable")
	assert.False(t, outcome.Loading)
	assert.Equal(t, "Failed to store session state", outcome.Error)

	stored, err := uc.Current(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, stored.Loading)
	assert.Equal(t, entity.SessionFailed, stored.Status)
	assert.Nil(t, stored.Reading)
}

func TestLookupOutcomeSaveFailureTwiceKeepsBothCauses(t *testing.T) {
	gateway := &flakySessionGateway{MemorySessionGateway: store.NewMemorySessionGateway(), failOn: map[int]bool{2: true, 3: true}}
	uc := NewSessionUseCase(time.Minute, gateway, &stubWeatherUseCase{readings: map[string]entity.WeatherReading{"Paris": parisReading}})

	_, err := uc.Lookup(context.Background(), "s1", "Paris")

	assert.ErrorContains(t, err, "store unavailable")
	assert.Equal(t, 3, gateway.saves)
}
