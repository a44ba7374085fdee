package species

import "time"

// Species is a catalog entry animals reference.
type Species struct {
	ID             string
	CommonName     string
	ScientificName string
	Category       string // same category enum as animals
	Description    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
