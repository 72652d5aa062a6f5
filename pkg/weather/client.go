package weather

import "time"

type Current struct {
	Location      string    `json:"location"`
	Temperature   int       `json:"temperature"`
	Condition     string    `json:"condition"`
	Humidity      int       `json:"humidity"`
	WindSpeed     int       `json:"windSpeed"`
	Precipitation int       `json:"precipitation"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

type ForecastDay struct {
	Date          time.Time `json:"date"`
	Condition     string    `json:"condition"`
	High          int       `json:"high"`
	Low           int       `json:"low"`
	Precipitation int       `json:"precipitation"`
	WindSpeed     int       `json:"windSpeed"`
}

// Provider serves the read-only weather panel. The dashboard never writes
// weather; both implementations are interchangeable behind this.
type Provider interface {
	Current() (Current, error)
	Forecast() ([]ForecastDay, error)
}
