package view

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-widget/internal/domain/entity"
)

type page struct {
	Action     string
	ImagesPath string
	Session    entity.Session
}

func render(t *testing.T, session entity.Session) string {
	t.Helper()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, renderer.Render(&out, "widget.html", page{Action: "/", ImagesPath: "/images", Session: session}, nil))
	return out.String()
}

func TestRenderShowsOnlyOneRegion(t *testing.T) {
	reading := entity.WeatherReading{
		Location: "Paris, France", TemperatureCelsius: 18.5, WindSpeedKph: 12,
		Condition: entity.ConditionClouds, Icon: "clouds.png",
	}

	loading := render(t, entity.Session{City: "Paris", Status: entity.SessionLoading, Loading: true})
	assert.Contains(t, loading, `class="loading"`)
	assert.NotContains(t, loading, `class="error"`)
	assert.NotContains(t, loading, `class="weather"`)

	failed := render(t, entity.Session{City: "Atlantis", Status: entity.SessionFailed, Error: "City not found"})
	assert.Contains(t, failed, "City not found")
	assert.NotContains(t, failed, `class="loading"`)
	assert.NotContains(t, failed, `class="weather"`)

	succeeded := render(t, entity.Session{City: "Paris", Status: entity.SessionSuccess, Reading: &reading})
	assert.Contains(t, succeeded, "Paris, France")
	assert.Contains(t, succeeded, "18.5°C")
	assert.Contains(t, succeeded, "12 km/h")
	assert.Contains(t, succeeded, `src="/images/clouds.png"`)
	assert.NotContains(t, succeeded, `class="error"`)
}

func TestRenderIdleShowsFormOnly(t *testing.T) {
	idle := render(t, entity.Session{Status: entity.SessionIdle})

	assert.Contains(t, idle, `name="city"`)
	assert.NotContains(t, idle, `class="loading"`)
	assert.NotContains(t, idle, `class="error"`)
	assert.NotContains(t, idle, `class="weather"`)
}

func TestImagesCoverEveryCondition(t *testing.T) {
	images := Images()

	for _, condition := range []entity.Condition{
		entity.ConditionClear, entity.ConditionClouds, entity.ConditionMist,
		entity.ConditionDrizzle, entity.ConditionRain, entity.ConditionSnow,
	} {
		data, err := fs.ReadFile(images, condition.Icon())
		require.NoError(t, err, condition)
		assert.Equal(t, []byte("\x89PNG"), data[:4], condition)
	}
}
