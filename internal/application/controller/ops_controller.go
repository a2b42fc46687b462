package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type OpsController struct {
	api *echo.Group
}

func NewOpsController(api *echo.Group) *OpsController {
	return &OpsController{api: api}
}

// InitOpsRoutes exposes prometheus metrics and the swagger UI
func (controller *OpsController) InitOpsRoutes() {
	controller.api.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	controller.api.GET("/swagger/*", echoSwagger.WrapHandler)
}
