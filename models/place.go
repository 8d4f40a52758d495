package models

// Place is a nearby-search result from the places provider.
type Place struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	PlaceID          string   `json:"place_id"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Types            []string `json:"types,omitempty"`
	PriceLevel       int      `json:"price_level,omitempty"`
	PhotoURL         string   `json:"photo_url,omitempty"`
	DistanceKm       float64  `json:"distance_km,omitempty"`
}

// PlaceReview is one review attached to place details.
type PlaceReview struct {
	Author string  `json:"author"`
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
	Time   string  `json:"time,omitempty"`
}

// PlaceDetails is the detail view of a single place.
type PlaceDetails struct {
	Name       string        `json:"name"`
	Address    string        `json:"address"`
	Phone      string        `json:"phone,omitempty"`
	Website    string        `json:"website,omitempty"`
	PriceLevel int           `json:"price_level,omitempty"`
	Rating     float64       `json:"rating,omitempty"`
	MapsURL    string        `json:"maps_url,omitempty"`
	Hours      []string      `json:"hours,omitempty"`
	Reviews    []PlaceReview `json:"reviews,omitempty"`
}

// PlacePhoto is one photo of a place.
type PlacePhoto struct {
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	IsFeatured bool   `json:"is_featured"`
}
