package health

import (
	"strconv"

	"go-news/internal/domain/gateway/api"
	"go-news/internal/domain/model"
	"go-news/internal/domain/registry"
)

type healthUseCase struct {
	weatherGateway api.WeatherGateway
	registry       *registry.Registry
}

func NewHealthUseCase(weatherGateway api.WeatherGateway, registry *registry.Registry) UseCase {
	return &healthUseCase{
		weatherGateway: weatherGateway,
		registry:       registry,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	weatherHealth := useCase.weatherHealth()
	locationsHealth := useCase.locationsHealth()

	overallStatus := model.StatusUp
	if weatherHealth.Status != model.StatusUp || locationsHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Weather:   weatherHealth,
		Locations: locationsHealth,
	}
}

// weatherHealth only checks configuration; the provider is not called.
func (useCase *healthUseCase) weatherHealth() model.ComponentHealthStatus {
	if !useCase.weatherGateway.Configured() {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"apiKey": "missing"},
		}
	}
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"apiKey": "configured"},
	}
}

func (useCase *healthUseCase) locationsHealth() model.ComponentHealthStatus {
	states := len(useCase.registry.States())
	cities := len(useCase.registry.Cities())

	status := model.StatusUp
	if states == 0 || cities == 0 {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"states": strconv.Itoa(states),
			"cities": strconv.Itoa(cities),
		},
	}
}
