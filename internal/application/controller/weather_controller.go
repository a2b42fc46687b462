package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/api/weather", controller.FindCurrentWeather)
}

// FindCurrentWeather godoc
// @Summary Get current weather for a city
// @Description Resolve the city name to coordinates and return its current weather
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.WeatherReading "Current weather"
// @Failure 400 {object} model.ErrorResponseDTO "Empty city name"
// @Failure 404 {object} model.ErrorResponseDTO "City not found"
// @Failure 502 {object} model.ErrorResponseDTO "Geocoding or forecast service failed"
// @Router /api/weather [get]
func (controller *WeatherController) FindCurrentWeather(c echo.Context) error {
	reading, err := controller.useCase.Lookup(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return lookupErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, reading)
}

func lookupErrorResponse(c echo.Context, err error) error {
	var lookupErr *weather.LookupError
	if !errors.As(err, &lookupErr) {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponseDTO{Error: err.Error()})
	}

	status := http.StatusBadGateway
	switch lookupErr.Kind {
	case weather.ErrEmptyCity:
		status = http.StatusBadRequest
	case weather.ErrCityNotFound:
		status = http.StatusNotFound
	}
	return c.JSON(status, model.ErrorResponseDTO{Error: lookupErr.Message, Kind: string(lookupErr.Kind)})
}
