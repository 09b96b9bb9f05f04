package controller

import (
	"errors"
	"net/http"

	"go-news/internal/domain/gateway/api"
	"go-news/internal/domain/model"
	"go-news/internal/domain/usecase/weather"
	"go-news/pkg/log"
	"go-news/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather JSON routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/api/weather/states", controller.ListStates)
	controller.api.GET("/api/weather/states/:state/cities", controller.ListCities)
	controller.api.GET("/api/weather/:state/:city", controller.GetCityWeather)
}

// ListStates godoc
// @Summary List states
// @Description List every supported state in display order
// @Tags weather
// @Produce json
// @Success 200 {array} entity.State "States"
// @Router /api/weather/states [get]
func (controller *WeatherController) ListStates(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.ListStates())
}

// ListCities godoc
// @Summary List cities of a state
// @Description List the cities of a state in display order; the first one is the state's default
// @Tags weather
// @Produce json
// @Param state path string true "State slug"
// @Success 200 {array} entity.City "Cities"
// @Failure 404 {object} model.ErrorResponse "State not found"
// @Router /api/weather/states/{state}/cities [get]
func (controller *WeatherController) ListCities(c echo.Context) error {
	cities, err := controller.useCase.CitiesForState(c.Param("state"))
	if err != nil {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("weather.not-found.title")})
	}
	return c.JSON(http.StatusOK, cities)
}

// GetCityWeather godoc
// @Summary Get weather for a city
// @Description Current conditions and a five day forecast, with raw and rounded temperatures
// @Tags weather
// @Produce json
// @Param state path string true "State slug"
// @Param city path string true "City slug"
// @Success 200 {object} model.WeatherResponse "Weather summary"
// @Failure 404 {object} model.ErrorResponse "Location not found"
// @Failure 502 {object} model.ErrorResponse "Weather provider unavailable"
// @Router /api/weather/{state}/{city} [get]
func (controller *WeatherController) GetCityWeather(c echo.Context) error {
	state := c.Param("state")
	city := c.Param("city")

	cityWeather, err := controller.useCase.GetCityWeather(c.Request().Context(), state, city)
	if err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("weather.not-found.title")})
		}
		logWeatherFailure(c, state, city, err)
		return c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: msg.GetMessage("weather.unavailable.message")})
	}

	return c.JSON(http.StatusOK, model.NewWeatherResponse(*cityWeather))
}

// logWeatherFailure keeps credential problems apart from ordinary upstream failures.
func logWeatherFailure(c echo.Context, state string, city string, err error) {
	fields := []zap.Field{
		zap.String("state", state),
		zap.String("city", city),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	}

	if errors.Is(err, api.ErrUpstreamAuth) {
		log.Error(msg.GetMessage("weather.config-error", state, city), fields...)
		return
	}
	log.Warn(msg.GetMessage("weather.fetch-error", state, city), fields...)
}
