package domain

import "time"

// Category groups stations, e.g. commuter, intercity, airport link.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
