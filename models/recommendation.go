package models

// Recommendation is one curated place the concierge can suggest.
type Recommendation struct {
	ID          string            `bson:"id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Category    string            `bson:"category" json:"category"`
	Description string            `bson:"description" json:"description"`
	Address     string            `bson:"address" json:"address"`
	Latitude    float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Phone       string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Website     string            `bson:"website,omitempty" json:"website,omitempty"`
	PriceLevel  int               `bson:"priceLevel,omitempty" json:"price_level,omitempty"`
	Hours       map[string]string `bson:"hours,omitempty" json:"hours,omitempty"`
	BestFor     string            `bson:"bestFor,omitempty" json:"best_for,omitempty"`
	Tags        []string          `bson:"tags,omitempty" json:"tags,omitempty"`
	PlaceID     string            `bson:"placeId,omitempty" json:"place_id,omitempty"`

	// Derived per request, never persisted.
	Distance  string  `bson:"-" json:"distance,omitempty"`
	Relevance float64 `bson:"-" json:"-"`
	Tip       string  `bson:"-" json:"tip,omitempty"`
}

// HasTag reports whether the recommendation carries the given tag.
func (r Recommendation) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
