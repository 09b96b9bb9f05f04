package model

import (
	"testing"

	"go-news/internal/domain/entity"
)

func TestWeekday(t *testing.T) {
	// 2023-11-14 22:13:20 UTC, a Tuesday
	const ts = 1700000000

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "utc", offset: 0, want: "Tuesday"},
		{name: "jerusalem winter", offset: 7200, want: "Wednesday"},
		{name: "new york", offset: -18000, want: "Tuesday"},
		{name: "los angeles", offset: -28800, want: "Tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Weekday(ts, tt.offset); got != tt.want {
				t.Errorf("Weekday(%d, %d) = %q, want %q", ts, tt.offset, got, tt.want)
			}
		})
	}
}

func TestNewWeatherResponse(t *testing.T) {
	israel := entity.State{ID: 294640, Name: "Israel", Slug: "il"}
	cityWeather := entity.CityWeather{
		City: entity.City{ID: 281184, Name: "Jerusalem", Slug: "jerusalem", State: israel},
		Summary: entity.WeatherSummary{
			Current: entity.CurrentWeather{TemperatureC: 22.5, FeelsLikeC: 21.0, HumidityPct: 40, ConditionDescription: "clear sky"},
			Forecast: []entity.ForecastDay{
				{Timestamp: 1700000000, TemperatureC: -0.5, ConditionDescription: "snow"},
				{Timestamp: 1700086400, TemperatureC: 17.49, ConditionDescription: "few clouds"},
			},
			TimezoneOffset: 7200,
		},
	}

	got := NewWeatherResponse(cityWeather)

	if got.State.Slug != "il" || got.City.Slug != "jerusalem" {
		t.Errorf("location = %+v / %+v", got.State, got.City)
	}
	if got.Current.Temperature != 23 || got.Current.TemperatureC != 22.5 {
		t.Errorf("Current temperature = %d (%v), want 23 (22.5)", got.Current.Temperature, got.Current.TemperatureC)
	}
	if got.Current.FeelsLike != 21 || got.Current.HumidityPct != 40 || got.Current.Description != "clear sky" {
		t.Errorf("Current = %+v", got.Current)
	}

	if len(got.Forecast) != 2 {
		t.Fatalf("len(Forecast) = %d, want 2", len(got.Forecast))
	}
	// half rounds up, also for negatives
	if got.Forecast[0].Temperature != 0 || got.Forecast[0].Weekday != "Wednesday" {
		t.Errorf("Forecast[0] = %+v", got.Forecast[0])
	}
	if got.Forecast[1].Temperature != 17 || got.Forecast[1].Weekday != "Thursday" {
		t.Errorf("Forecast[1] = %+v", got.Forecast[1])
	}
}
