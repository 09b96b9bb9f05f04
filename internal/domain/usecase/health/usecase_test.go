package health

import (
	"context"
	"testing"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model"
	"go-news/internal/domain/model/external"
	"go-news/internal/domain/registry"
)

type fakeWeatherGateway struct {
	configured bool
}

func (f fakeWeatherGateway) GetCurrentWeather(context.Context, entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	return nil, nil
}

func (f fakeWeatherGateway) GetForecast(context.Context, entity.Coordinates) (*external.ForecastResponse, error) {
	return nil, nil
}

func (f fakeWeatherGateway) Configured() bool { return f.configured }

func TestCheckHealth(t *testing.T) {
	israel := entity.State{ID: 294640, Name: "Israel", Slug: "il"}
	full, err := registry.New([]entity.State{israel}, []entity.City{{ID: 281184, Name: "Jerusalem", Slug: "jerusalem", State: israel}})
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}
	empty, err := registry.New(nil, nil)
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	tests := []struct {
		name          string
		configured    bool
		registry      *registry.Registry
		wantStatus    model.HealthStatus
		wantWeather   model.HealthStatus
		wantLocations model.HealthStatus
	}{
		{name: "all up", configured: true, registry: full, wantStatus: model.StatusUp, wantWeather: model.StatusUp, wantLocations: model.StatusUp},
		{name: "missing api key", configured: false, registry: full, wantStatus: model.StatusDown, wantWeather: model.StatusDown, wantLocations: model.StatusUp},
		{name: "empty registry", configured: true, registry: empty, wantStatus: model.StatusDown, wantWeather: model.StatusUp, wantLocations: model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHealthUseCase(fakeWeatherGateway{configured: tt.configured}, tt.registry).CheckHealth()

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.Weather.Status != tt.wantWeather {
				t.Errorf("Weather.Status = %s, want %s", got.Weather.Status, tt.wantWeather)
			}
			if got.Locations.Status != tt.wantLocations {
				t.Errorf("Locations.Status = %s, want %s", got.Locations.Status, tt.wantLocations)
			}
		})
	}
}
