package types

import "time"

// Well-known values for the prediction form enums. The backend accepts free
// strings, so these are defaults rather than a closed set.
const (
	PropertyHouse     = "House"
	PropertyApartment = "Apartment"

	RegionBishkek = "Bishkek"
	RegionOsh     = "Osh"
)

// PredictionForm holds the raw, per-keystroke field values of a prediction
// form. The numeric fields stay strings until submission, when they must
// parse as integers.
type PredictionForm struct {
	Bedrooms     string
	Bathrooms    string
	Floors       string
	Sqft         string
	HasPool      bool
	PropertyType string
	Region       string
}

// PredictionRequest is the validated wire form of PredictionForm.
type PredictionRequest struct {
	Bedrooms     int    `json:"bedrooms"`
	Bathrooms    int    `json:"bathrooms"`
	Floors       int    `json:"floors"`
	Sqft         int    `json:"sqft"`
	HasPool      bool   `json:"has_pool"`
	PropertyType string `json:"property_type"`
	Region       string `json:"region"`
}

// PredictionRecord is one entry of the server-kept prediction history.
type PredictionRecord struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Result    float64   `json:"result"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

// GraphPoint is one sample of a prediction's trend graph.
type GraphPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
