package api

import (
	"context"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model/external"
)

// WeatherGateway defines the OpenWeatherMap calls. Every failure is an *UpstreamError.
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions at the given point, metric units
	GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the 5 day / 3 hour forecast at the given point, metric units
	GetForecast(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error)

	// Configured reports whether an API key is set
	Configured() bool
}
