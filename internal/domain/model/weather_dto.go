package model

import (
	"time"

	"go-news/internal/domain/entity"
	"go-news/pkg/util/numberutils"
)

// CurrentWeatherDTO carries both the raw and the display (rounded) readings
type CurrentWeatherDTO struct {
	TemperatureC float64 `json:"temperatureC"`
	Temperature  int     `json:"temperature"`
	FeelsLikeC   float64 `json:"feelsLikeC"`
	FeelsLike    int     `json:"feelsLike"`
	HumidityPct  int     `json:"humidityPct"`
	Description  string  `json:"description"`
}

// ForecastDayDTO is one forecast day with its weekday label in the location's timezone
type ForecastDayDTO struct {
	Timestamp    int64   `json:"timestamp"`
	Weekday      string  `json:"weekday"`
	TemperatureC float64 `json:"temperatureC"`
	Temperature  int     `json:"temperature"`
	Description  string  `json:"description"`
}

type WeatherResponse struct {
	State    entity.State      `json:"state"`
	City     entity.City       `json:"city"`
	Current  CurrentWeatherDTO `json:"current"`
	Forecast []ForecastDayDTO  `json:"forecast"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewWeatherResponse builds the display model. Rounding happens here and nowhere else.
func NewWeatherResponse(cityWeather entity.CityWeather) WeatherResponse {
	summary := cityWeather.Summary
	current := summary.Current

	forecast := make([]ForecastDayDTO, 0, len(summary.Forecast))
	for _, day := range summary.Forecast {
		forecast = append(forecast, ForecastDayDTO{
			Timestamp:    day.Timestamp,
			Weekday:      Weekday(day.Timestamp, summary.TimezoneOffset),
			TemperatureC: day.TemperatureC,
			Temperature:  numberutils.RoundHalfUp(day.TemperatureC),
			Description:  day.ConditionDescription,
		})
	}

	return WeatherResponse{
		State: cityWeather.City.State,
		City:  cityWeather.City,
		Current: CurrentWeatherDTO{
			TemperatureC: current.TemperatureC,
			Temperature:  numberutils.RoundHalfUp(current.TemperatureC),
			FeelsLikeC:   current.FeelsLikeC,
			FeelsLike:    numberutils.RoundHalfUp(current.FeelsLikeC),
			HumidityPct:  current.HumidityPct,
			Description:  current.ConditionDescription,
		},
		Forecast: forecast,
	}
}

// Weekday names the day of an epoch timestamp at the given UTC offset in seconds, e.g. "Monday".
func Weekday(timestamp int64, offsetSeconds int) string {
	zone := time.FixedZone("", offsetSeconds)
	return time.Unix(timestamp, 0).In(zone).Weekday().String()
}
