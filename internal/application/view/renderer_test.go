package view

import (
	"bytes"
	"strings"
	"testing"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model"
)

func TestRenderer(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	israel := entity.State{ID: 294640, Name: "Israel", Slug: "il"}
	jerusalem := entity.City{ID: 281184, Name: "Jerusalem", Slug: "jerusalem", State: israel}
	telAviv := entity.City{ID: 293397, Name: "Tel Aviv", Slug: "tel-aviv", State: israel}

	weatherPage := WeatherPage{
		BasePath:      "/news",
		Title:         "Weather in Jerusalem",
		States:        []entity.State{israel},
		Cities:        []entity.City{jerusalem, telAviv},
		SelectedState: "il",
		SelectedCity:  "jerusalem",
		Weather: model.WeatherResponse{
			State:   israel,
			City:    jerusalem,
			Current: model.CurrentWeatherDTO{Temperature: 23, FeelsLike: 21, HumidityPct: 40, Description: "clear sky"},
			Forecast: []model.ForecastDayDTO{
				{Weekday: "Wednesday", Temperature: 18, Description: "<b>few clouds</b>"},
			},
		},
	}

	tests := []struct {
		name     string
		template string
		data     any
		want     []string
		notWant  []string
	}{
		{
			name:     "weather page",
			template: WeatherTemplate,
			data:     weatherPage,
			want: []string{
				"<title>Weather in Jerusalem</title>",
				"23°C",
				"clear sky",
				"Feels like: 21°C",
				"Humidity: 40%",
				"Wednesday",
				"18°C",
				`<option value="jerusalem" selected>Jerusalem</option>`,
				`<option value="tel-aviv">Tel Aviv</option>`,
				"&lt;b&gt;few clouds&lt;/b&gt;",
			},
			notWant: []string{"<b>few clouds</b>"},
		},
		{
			name:     "not found page",
			template: NotFoundTemplate,
			data:     MessagePage{BasePath: "/news", Title: "Location not found", Message: "Please select a valid location."},
			want:     []string{"<h1>Location not found</h1>", "Please select a valid location.", `href="/news/weather"`},
		},
		{
			name:     "error page",
			template: ErrorTemplate,
			data:     MessagePage{Title: "Error", Message: "Weather data is currently unavailable."},
			want:     []string{"<h1>Error</h1>", "Weather data is currently unavailable."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := renderer.Render(&buf, tt.template, tt.data, nil); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			body := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body does not contain %q", want)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(body, notWant) {
					t.Errorf("body contains %q", notWant)
				}
			}
		})
	}
}
