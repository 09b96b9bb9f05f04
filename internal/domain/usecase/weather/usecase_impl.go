package weather

import (
	"context"
	"fmt"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/gateway/api"
	"go-news/internal/domain/model/external"
	"go-news/internal/domain/registry"
	"go-news/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type weatherUseCase struct {
	registry   *registry.Registry
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(registry *registry.Registry, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		registry:   registry,
		apiGateway: apiGateway,
	}
}

// ResolveLocation requires both the state and the (state, city) pair to exist
func (uc *weatherUseCase) ResolveLocation(stateSlug string, citySlug string) (*entity.City, error) {
	if _, ok := uc.registry.ResolveState(stateSlug); !ok {
		return nil, fmt.Errorf("state %q: %w", stateSlug, ErrLocationNotFound)
	}

	city, ok := uc.registry.ResolveCity(stateSlug, citySlug)
	if !ok {
		return nil, fmt.Errorf("city %q in state %q: %w", citySlug, stateSlug, ErrLocationNotFound)
	}

	return &city, nil
}

// GetCurrentWeather fetches and converts the current conditions
func (uc *weatherUseCase) GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*entity.CurrentWeather, error) {
	response, err := uc.apiGateway.GetCurrentWeather(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	return &entity.CurrentWeather{
		TemperatureC:         response.Main.Temp,
		FeelsLikeC:           response.Main.FeelsLike,
		HumidityPct:          response.Main.Humidity,
		ConditionDescription: firstDescription(response.Weather),
	}, nil
}

// GetForecast fetches the forecast and samples one entry per day
func (uc *weatherUseCase) GetForecast(ctx context.Context, coords entity.Coordinates) ([]entity.ForecastDay, error) {
	days, _, err := uc.fetchForecast(ctx, coords)
	return days, err
}

func (uc *weatherUseCase) fetchForecast(ctx context.Context, coords entity.Coordinates) ([]entity.ForecastDay, int, error) {
	response, err := uc.apiGateway.GetForecast(ctx, coords)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get forecast: %w", err)
	}

	return convertForecast(SampleDaily(response.List, ForecastStride, ForecastDays)), response.City.Timezone, nil
}

// GetWeatherSummary fetches current conditions and forecast in parallel
func (uc *weatherUseCase) GetWeatherSummary(ctx context.Context, coords entity.Coordinates) (*entity.WeatherSummary, error) {
	var current *entity.CurrentWeather
	var forecast []entity.ForecastDay
	var timezoneOffset int

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		current, err = uc.GetCurrentWeather(gctx, coords)
		return err
	})

	g.Go(func() error {
		var err error
		forecast, timezoneOffset, err = uc.fetchForecast(gctx, coords)
		return err
	})

	// the first failure cancels gctx, so the other call returns promptly
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.WeatherSummary{
		Current:        *current,
		Forecast:       forecast,
		TimezoneOffset: timezoneOffset,
	}, nil
}

// GetCityWeather resolves the location and fetches its summary
func (uc *weatherUseCase) GetCityWeather(ctx context.Context, stateSlug string, citySlug string) (*entity.CityWeather, error) {
	city, err := uc.ResolveLocation(stateSlug, citySlug)
	if err != nil {
		return nil, err
	}

	summary, err := uc.GetWeatherSummary(ctx, city.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather for %s/%s: %w", stateSlug, citySlug, err)
	}

	log.Debug("Weather summary fetched",
		zap.String("state", stateSlug),
		zap.String("city", citySlug),
		zap.Int("forecast_days", len(summary.Forecast)))

	return &entity.CityWeather{City: *city, Summary: *summary}, nil
}

func (uc *weatherUseCase) ListStates() []entity.State {
	return uc.registry.States()
}

func (uc *weatherUseCase) CitiesForState(stateSlug string) ([]entity.City, error) {
	if _, ok := uc.registry.ResolveState(stateSlug); !ok {
		return nil, fmt.Errorf("state %q: %w", stateSlug, ErrLocationNotFound)
	}
	return uc.registry.CitiesForState(stateSlug), nil
}

func (uc *weatherUseCase) FirstCity(stateSlug string) (*entity.City, error) {
	city, ok := uc.registry.FirstCity(stateSlug)
	if !ok {
		return nil, fmt.Errorf("state %q: %w", stateSlug, ErrLocationNotFound)
	}
	return &city, nil
}

// convertForecast converts sampled forecast entries to entities
func convertForecast(entries []external.ForecastEntryDTO) []entity.ForecastDay {
	days := make([]entity.ForecastDay, 0, len(entries))
	for _, entry := range entries {
		days = append(days, entity.ForecastDay{
			Timestamp:            entry.Dt,
			TemperatureC:         entry.Main.Temp,
			ConditionDescription: firstDescription(entry.Weather),
		})
	}
	return days
}

func firstDescription(conditions []external.WeatherConditionDTO) string {
	if len(conditions) == 0 {
		return ""
	}
	return conditions[0].Description
}
