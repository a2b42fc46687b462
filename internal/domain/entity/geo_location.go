package entity

// GeoLocation is the best geocoding match for a city query.
type GeoLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DisplayName formats the location as "name, country".
func (g GeoLocation) DisplayName() string {
	return g.Name + ", " + g.Country
}
