package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-widget/configs"
	_ "weather-widget/docs"
	"weather-widget/internal/application/controller"
	"weather-widget/internal/application/middleware"
	"weather-widget/internal/application/schedule"
	"weather-widget/internal/application/view"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/gateway/store"
	"weather-widget/internal/domain/usecase/health"
	"weather-widget/internal/domain/usecase/session"
	"weather-widget/internal/domain/usecase/weather"
	"weather-widget/pkg/http"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
	"weather-widget/pkg/redis"
	"weather-widget/pkg/resource"
)

// @title Weather Widget API
// @version 1.0
// @description Looks up the current weather of a city through the Open-Meteo geocoding and forecast services.
// @BasePath /
func main() {
	defer log.Sync()

	// .env is optional, real environment variables win
	_ = godotenv.Load()
	if err := resource.Load(); err != nil {
		log.Fatal("failed to load application properties", zap.Error(err))
	}
	log.SetLevel(resource.GetString("app.log.level"))
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("failed to init renderer", zap.Error(err))
	}
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)

	sessionTTL := resource.GetDuration("app.session.ttl")
	router := e.Group(resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath))
	widget := router.Group("", middleware.SessionCookie(resource.GetString("app.session.cookie-name"), sessionTTL))

	// Init Gateways
	clientOptions := http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.http.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.http.read-timeout"),
	}
	geocodingGateway := api.NewGeocodingGateway(resource.GetString("app.geocoding.base-url"), withLogger(clientOptions, "geocoding"))
	forecastGateway := api.NewForecastGateway(resource.GetString("app.forecast.base-url"), withLogger(clientOptions, "forecast"))

	sessionGateway, closeStore := newSessionGateway(sessionTTL)
	defer closeStore()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(geocodingGateway, forecastGateway)
	sessionUseCase := session.NewSessionUseCase(sessionTTL, sessionGateway, weatherUseCase)
	healthUseCase := health.NewHealthUseCase(sessionGateway)

	// Init Routes
	controller.NewHealthController(router, healthUseCase).InitHealthRoutes()
	controller.NewOpsController(router).InitOpsRoutes()
	controller.NewWeatherController(router, weatherUseCase).InitWeatherRoutes()
	controller.NewSessionController(widget, sessionUseCase).InitSessionRoutes()
	controller.NewWidgetController(widget, sessionUseCase).InitWidgetRoutes()

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(sessionUseCase, resource.GetString("app.session.sweep.cron"))
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal("failed to init session sweep", zap.Error(err))
	}
	defer sessionScheduler.Stop()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

func withLogger(options http.ClientOptions, name string) http.ClientOptions {
	options.Logger = http.ZapLogger{Name: name}
	return options
}

// newSessionGateway picks the session store configured by app.session.store
func newSessionGateway(ttl time.Duration) (store.SessionGateway, func()) {
	if resource.GetString("app.session.store") != "redis" {
		return store.NewMemorySessionGateway(), func() {}
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	return store.NewRedisSessionGateway(client, ttl), func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", zap.Error(err))
		}
	}
}
