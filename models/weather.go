package models

import "time"

// Weather is the current-condition snapshot the concierge reports.
type Weather struct {
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like,omitempty"`
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon,omitempty"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
