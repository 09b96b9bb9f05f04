package external

// WeatherConditionDTO is one element of the provider's "weather" array
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// MainReadingDTO holds the provider's "main" block in metric units
type MainReadingDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// WindDTO holds the provider's "wind" block
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// CurrentWeatherResponse represents the response of GET /weather
type CurrentWeatherResponse struct {
	Name    string                `json:"name"`
	Main    MainReadingDTO        `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Wind    WindDTO               `json:"wind"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// ForecastEntryDTO is one 3-hour step of the forecast list
type ForecastEntryDTO struct {
	Dt      int64                 `json:"dt"`
	Main    MainReadingDTO        `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Wind    WindDTO               `json:"wind"`
}

// ForecastResponse represents the response of GET /forecast
type ForecastResponse struct {
	Cnt  int                `json:"cnt"`
	List []ForecastEntryDTO `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// WeatherAPIErrorResponse is the provider's error body. "cod" is a number or a string depending on the endpoint.
type WeatherAPIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
