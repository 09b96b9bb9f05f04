package entity

// CurrentWeather is a single point-in-time reading. Temperatures keep full precision.
type CurrentWeather struct {
	TemperatureC         float64 `json:"temperatureC"`
	FeelsLikeC           float64 `json:"feelsLikeC"`
	HumidityPct          int     `json:"humidityPct"`
	ConditionDescription string  `json:"conditionDescription"`
}

// ForecastDay is the representative forecast entry chosen for one day.
type ForecastDay struct {
	Timestamp            int64   `json:"timestamp"`
	TemperatureC         float64 `json:"temperatureC"`
	ConditionDescription string  `json:"conditionDescription"`
}

// WeatherSummary joins the current reading with the sampled daily forecast.
type WeatherSummary struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	// TimezoneOffset is the location's UTC offset in seconds as reported by the forecast provider.
	TimezoneOffset int `json:"timezoneOffset"`
}

// CityWeather is a resolved city together with its weather summary.
type CityWeather struct {
	City    City           `json:"city"`
	Summary WeatherSummary `json:"summary"`
}
