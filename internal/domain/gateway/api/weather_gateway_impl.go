package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"strconv"
	"time"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model/external"
	"go-news/pkg/http"
	"go-news/pkg/log"

	"go.uber.org/zap"
)

const (
	weatherService   = "weather"
	apiKeyQueryParam = "appid"
)

var errMissingAPIKey = errors.New("weather API key is not configured")

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	timeout    time.Duration
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// timeout bounds every call, both as client read timeout and context deadline.
func NewWeatherGateway(baseUrl string, apiKey string, timeout time.Duration, clientOptions http.ClientOptions) WeatherGateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	clientOptions.ReadTimeout = timeout
	clientOptions.SensitiveQueryParams = append(clientOptions.SensitiveQueryParams, apiKeyQueryParam)

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		timeout:    timeout,
	}
}

func (w *weatherGatewayImpl) Configured() bool {
	return w.apiKey != ""
}

// GetCurrentWeather gets the current conditions at the given point
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	if err := w.fetch(ctx, "/weather", coords, response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetForecast gets the 3-hourly forecast at the given point
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, coords entity.Coordinates) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	if err := w.fetch(ctx, "/forecast", coords, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (w *weatherGatewayImpl) fetch(ctx context.Context, path string, coords entity.Coordinates, successResp any) error {
	if !w.Configured() {
		log.Error("weather provider configuration error: API key is not configured", zap.String("path", path))
		return &UpstreamError{Service: weatherService, Kind: ErrUpstreamAuth, Err: errMissingAPIKey}
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	_, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(map[string]string{
			"lat":            strconv.FormatFloat(coords.Lat, 'f', -1, 64),
			"lon":            strconv.FormatFloat(coords.Lon, 'f', -1, 64),
			apiKeyQueryParam: w.apiKey,
			"units":          "metric",
		}).
		WithSuccessResp(successResp).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err == nil {
		return nil
	}

	providerMessage := ""
	if errResp != nil {
		providerMessage = errResp.(*external.WeatherAPIErrorResponse).Message
	}

	if status == nethttp.StatusUnauthorized {
		log.Error("weather provider configuration error: credentials rejected",
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("provider_message", providerMessage))
		return &UpstreamError{Service: weatherService, Kind: ErrUpstreamAuth, StatusCode: status, Err: err}
	}

	log.Warn("weather provider request failed",
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("provider_message", providerMessage),
		zap.Error(err))
	return &UpstreamError{Service: weatherService, Kind: ErrUpstreamFetch, StatusCode: status, Err: err}
}
