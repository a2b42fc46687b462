package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-widget/internal/application/middleware"
	"weather-widget/internal/application/view"
	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/usecase/session"
)

// widgetPage is the data behind templates/widget.html
type widgetPage struct {
	Action     string
	ImagesPath string
	Session    entity.Session
}

type WidgetController struct {
	api     *echo.Group
	useCase session.UseCase
}

func NewWidgetController(api *echo.Group, useCase session.UseCase) *WidgetController {
	return &WidgetController{api: api, useCase: useCase}
}

// InitWidgetRoutes initializes the page routes
func (controller *WidgetController) InitWidgetRoutes() {
	controller.api.GET("/", controller.Show)
	controller.api.POST("/", controller.Submit)
	controller.api.StaticFS("/images", view.Images())
}

// Show renders the widget with the caller's current session state
func (controller *WidgetController) Show(c echo.Context) error {
	current, err := controller.useCase.Current(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return controller.render(c, current)
}

// Submit runs the lookup for the submitted city and renders the outcome
func (controller *WidgetController) Submit(c echo.Context) error {
	outcome, err := controller.useCase.Lookup(c.Request().Context(), middleware.SessionID(c), c.FormValue("city"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return controller.render(c, outcome)
}

func (controller *WidgetController) render(c echo.Context, current entity.Session) error {
	// c.Path is the registered route, so it carries the context path
	imagesPath := strings.TrimSuffix(c.Path(), "/") + "/images"
	return c.Render(http.StatusOK, "widget.html", widgetPage{
		Action:     c.Request().URL.Path,
		ImagesPath: imagesPath,
		Session:    current,
	})
}
