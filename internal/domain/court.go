package domain

import "time"

// Court represents a bookable sports court
type Court struct {
	ID           int64
	Name         string
	Location     string
	PricePerHour float64
	Tags         []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
