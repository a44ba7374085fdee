package enclosures

import "time"

type Enclosure struct {
	ID       string
	Name     string
	Type     string // habitat type: savanna, aquarium, aviary, terrarium, ...
	Capacity int    // always > 0, enforced at the write boundary
	Location string

	// Optional environment readings.
	Temperature *float64 // celsius, -50..60
	Humidity    *float64 // percent, 0..100

	LastCleaned *time.Time
	CaretakerID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
