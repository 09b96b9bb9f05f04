package controller

import (
	"errors"
	"net/http"
	"net/url"

	"go-news/internal/application/view"
	"go-news/internal/domain/model"
	"go-news/internal/domain/usecase/weather"
	"go-news/pkg/msg"

	"github.com/labstack/echo/v4"
)

// PageController serves the server-rendered weather pages
type PageController struct {
	api          *echo.Group
	useCase      weather.UseCase
	basePath     string
	defaultState string
	defaultCity  string
}

func NewPageController(api *echo.Group, useCase weather.UseCase, basePath string, defaultState string, defaultCity string) *PageController {
	return &PageController{
		api:          api,
		useCase:      useCase,
		basePath:     basePath,
		defaultState: defaultState,
		defaultCity:  defaultCity,
	}
}

// InitPageRoutes initializes weather page routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("/weather", controller.DefaultLocation)
	controller.api.GET("/weather/:state", controller.FirstCity)
	controller.api.GET("/weather/:state/:city", controller.WeatherPage)
}

// DefaultLocation redirects to the configured default city
func (controller *PageController) DefaultLocation(c echo.Context) error {
	return c.Redirect(http.StatusFound, controller.weatherPath(controller.defaultState, controller.defaultCity))
}

// FirstCity redirects to the first city of the state, as the state selector does
func (controller *PageController) FirstCity(c echo.Context) error {
	state := c.Param("state")

	city, err := controller.useCase.FirstCity(state)
	if err != nil {
		return controller.renderNotFound(c)
	}
	return c.Redirect(http.StatusFound, controller.weatherPath(state, city.Slug))
}

// WeatherPage renders current conditions and the forecast for a city
func (controller *PageController) WeatherPage(c echo.Context) error {
	state := c.Param("state")
	city := c.Param("city")

	cityWeather, err := controller.useCase.GetCityWeather(c.Request().Context(), state, city)
	if err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return controller.renderNotFound(c)
		}
		logWeatherFailure(c, state, city, err)
		return c.Render(http.StatusBadGateway, view.ErrorTemplate, view.MessagePage{
			BasePath: controller.basePath,
			Title:    msg.GetMessage("weather.unavailable.title"),
			Message:  msg.GetMessage("weather.unavailable.message"),
		})
	}

	// the state resolved above, so this cannot miss
	cities, _ := controller.useCase.CitiesForState(state)

	return c.Render(http.StatusOK, view.WeatherTemplate, view.WeatherPage{
		BasePath:      controller.basePath,
		Title:         msg.GetMessage("weather.page-title", cityWeather.City.Name, cityWeather.City.State.Name),
		States:        controller.useCase.ListStates(),
		Cities:        cities,
		SelectedState: state,
		SelectedCity:  city,
		Weather:       model.NewWeatherResponse(*cityWeather),
	})
}

func (controller *PageController) renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, view.NotFoundTemplate, view.MessagePage{
		BasePath: controller.basePath,
		Title:    msg.GetMessage("weather.not-found.title"),
		Message:  msg.GetMessage("weather.not-found.message"),
	})
}

func (controller *PageController) weatherPath(state string, city string) string {
	return controller.basePath + "/weather/" + url.PathEscape(state) + "/" + url.PathEscape(city)
}
