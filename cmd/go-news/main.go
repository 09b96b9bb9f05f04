package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-news/configs"
	"go-news/docs"
	"go-news/internal/application/controller"
	"go-news/internal/application/middleware"
	"go-news/internal/application/view"
	"go-news/internal/domain/gateway/api"
	"go-news/internal/domain/registry"
	"go-news/internal/domain/usecase/content"
	"go-news/internal/domain/usecase/health"
	"go-news/internal/domain/usecase/weather"
	"go-news/internal/infra/catalog"
	pkghttp "go-news/pkg/http"
	"go-news/pkg/log"
	"go-news/pkg/msg"
	"go-news/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title go-news API
// @version 1.0
// @description Weather lookup and article proxy for the news site.
// @BasePath /
func main() {
	if err := msg.Load(configs.Env.MessagesFilePath); err != nil {
		log.Fatal("Failed to load messages", zap.Error(err))
	}
	if err := resource.Load(configs.Env.PropertiesFilePath); err != nil {
		log.Fatal(msg.GetMessage("app.config-fail", err))
	}
	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	appName := resource.GetStringOrDefault("app.name", configs.Env.ApplicationName)
	contextPath := resource.GetString("app.server.context-path")
	log.Info(msg.GetMessage("app.start", appName))

	// Init infra
	locations := loadRegistry(resource.GetString("app.locations.file"))

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("Failed to load templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	group := e.Group(contextPath)

	// Init Gateway
	weatherAPIKey := resource.GetString("app.weather.api-key")
	if weatherAPIKey == "" {
		log.Warn(msg.GetMessage("weather.api-key-missing"))
	}
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		weatherAPIKey,
		resource.GetDurationOrDefault("app.weather.timeout", 5*time.Second),
		pkghttp.ClientOptions{Logger: pkghttp.ZapLogger{Name: "openweather"}},
	)
	contentGateway := api.NewContentGateway(
		resource.GetString("app.content.base-url"),
		resource.GetDurationOrDefault("app.content.timeout", 10*time.Second),
		pkghttp.ClientOptions{Logger: pkghttp.ZapLogger{Name: "content"}},
	)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(weatherGateway, locations)
	weatherUseCase := weather.NewWeatherUseCase(locations, weatherGateway)
	contentUseCase := content.NewContentUseCase(contentGateway)

	// Init Controller
	healthController := controller.NewHealthController(group, healthUseCase)
	weatherController := controller.NewWeatherController(group, weatherUseCase)
	pageController := controller.NewPageController(group, weatherUseCase, contextPath,
		resource.GetStringOrDefault("app.weather.default-state", "il"),
		resource.GetStringOrDefault("app.weather.default-city", "jerusalem"))
	articleController := controller.NewArticleController(group, contentUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	pageController.InitPageRoutes()
	articleController.InitArticleRoutes()

	if contextPath != "" {
		docs.SwaggerInfo.BasePath = contextPath
	}
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info(msg.GetMessage("app.stopping", appName))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Error during server shutdown", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", appName))
}

// loadRegistry builds the location registry from file when one is configured, otherwise from the built-in catalog.
func loadRegistry(file string) *registry.Registry {
	states, cities, source := catalog.States(), catalog.Cities(), "built-in catalog"
	if file != "" {
		var err error
		states, cities, err = catalog.LoadFile(file)
		if err != nil {
			log.Fatal(msg.GetMessage("app.locations-fail", err))
		}
		source = file
	}

	locations, err := registry.New(states, cities)
	if err != nil {
		log.Fatal(msg.GetMessage("app.locations-fail", err))
	}
	log.Info(msg.GetMessage("app.locations-loaded", len(locations.States()), len(locations.Cities()), source))
	return locations
}
