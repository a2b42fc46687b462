package entity

// WeatherReading holds the current conditions shown for a resolved city.
type WeatherReading struct {
	Location             string    `json:"location"`
	TemperatureCelsius   float64   `json:"temperatureCelsius"`
	WindSpeedKph         float64   `json:"windSpeedKph"`
	WindDirectionDegrees float64   `json:"windDirectionDegrees"`
	WeatherCode          int       `json:"weatherCode"`
	Condition            Condition `json:"condition"`
	Icon                 string    `json:"icon"`
	IsDay                bool      `json:"isDay"`
	ObservedAt           string    `json:"observedAt"`
}
