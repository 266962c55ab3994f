package domain

import "time"

// Station is a transit station entry. Slug is derived from the name by the
// service's create operation and is unique across the catalogue.
type Station struct {
	ID          string
	Name        string
	Slug        string // unique
	Description string
	Icon        string
	CategoryID  string
	CreatedBy   string // user ID of the creating admin
	Region      int64  // administrative region code
	Latitude    float64
	Longitude   float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
