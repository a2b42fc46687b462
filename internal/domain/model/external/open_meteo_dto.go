package external

// GeocodingSearchResponse represents the response from the geocoding search API.
// Results is omitted by the API when nothing matches.
type GeocodingSearchResponse struct {
	Results          []GeocodingResultDTO `json:"results"`
	GenerationTimeMs float64              `json:"generationtime_ms"`
}

// GeocodingResultDTO represents a single geocoding candidate. Coordinates are
// pointers so a result without them can be told apart from 0,0.
type GeocodingResultDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Timezone    string   `json:"timezone"`
	Admin1      string   `json:"admin1"`
}

// ForecastResponse represents the response from the forecast API when
// current_weather=true is requested. CurrentWeather is nil when the block is missing.
type ForecastResponse struct {
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Timezone       string             `json:"timezone"`
	CurrentWeather *CurrentWeatherDTO `json:"current_weather"`
}

// CurrentWeatherDTO represents the current conditions block
type CurrentWeatherDTO struct {
	Time          string  `json:"time"`
	Interval      int     `json:"interval"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	IsDay         int     `json:"is_day"`
	WeatherCode   int     `json:"weathercode"`
}

// APIErrorResponse represents error responses from the Open-Meteo APIs
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
