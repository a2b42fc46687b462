package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-widget/internal/application/middleware"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/session"
)

type SessionController struct {
	api     *echo.Group
	useCase session.UseCase
}

func NewSessionController(api *echo.Group, useCase session.UseCase) *SessionController {
	return &SessionController{api: api, useCase: useCase}
}

// InitSessionRoutes initializes session routes
func (controller *SessionController) InitSessionRoutes() {
	controller.api.GET("/api/session", controller.FindCurrent)
	controller.api.POST("/api/session/lookup", controller.StartLookup)
}

// FindCurrent godoc
// @Summary Get the widget state
// @Description Return the city, loading flag and reading or error of the caller's session
// @Tags session
// @Produce json
// @Success 200 {object} entity.Session "Current session state"
// @Failure 500 {object} model.ErrorResponseDTO "Session store failure"
// @Router /api/session [get]
func (controller *SessionController) FindCurrent(c echo.Context) error {
	current, err := controller.useCase.Current(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponseDTO{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, current)
}

// StartLookup godoc
// @Summary Start a weather lookup
// @Description Put the caller's session in the loading state and look up the city in the background
// @Tags session
// @Accept json
// @Produce json
// @Param lookup body model.LookupRequestDTO true "City to look up"
// @Success 202 {object} entity.Session "Loading state"
// @Failure 400 {object} model.ErrorResponseDTO "Invalid request body"
// @Failure 500 {object} model.ErrorResponseDTO "Session store failure"
// @Router /api/session/lookup [post]
func (controller *SessionController) StartLookup(c echo.Context) error {
	var dto model.LookupRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponseDTO{Error: "Invalid request body"})
	}

	loading, err := controller.useCase.StartLookup(c.Request().Context(), middleware.SessionID(c), dto.City)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponseDTO{Error: err.Error()})
	}
	return c.JSON(http.StatusAccepted, loading)
}
