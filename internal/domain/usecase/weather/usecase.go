package weather

import (
	"context"
	"errors"

	"go-news/internal/domain/entity"
)

// ErrLocationNotFound is returned when a state slug or (state, city) pair is not in the registry.
var ErrLocationNotFound = errors.New("location not found")

type UseCase interface {
	// ResolveLocation finds the city for a (state, city) slug pair
	ResolveLocation(stateSlug string, citySlug string) (*entity.City, error)

	// GetCurrentWeather fetches the current conditions at coords
	GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeather, error)

	// GetForecast fetches the forecast at coords and keeps one entry per day, at most five
	GetForecast(ctx context.Context, coords entity.Coordinates) ([]entity.ForecastDay, error)

	// GetWeatherSummary fetches current conditions and forecast concurrently. Either failure fails both.
	GetWeatherSummary(ctx context.Context, coords entity.Coordinates) (*entity.WeatherSummary, error)

	// GetCityWeather resolves the location and fetches its summary
	GetCityWeather(ctx context.Context, stateSlug string, citySlug string) (*entity.CityWeather, error)

	// ListStates returns every state in display order
	ListStates() []entity.State

	// CitiesForState returns the cities of a state in display order
	CitiesForState(stateSlug string) ([]entity.City, error)

	// FirstCity returns the default city of a state
	FirstCity(stateSlug string) (*entity.City, error)
}
