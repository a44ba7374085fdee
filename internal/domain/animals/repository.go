package animals

import "context"

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Category    Category
	Status      HealthStatus
	EnclosureID string
	Search      string // case-insensitive match on name
}

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, f ListFilter) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error

	// CountByEnclosure backs enclosure occupancy; occupancy is always derived
	// from this count, never stored.
	CountByEnclosure(ctx context.Context, enclosureID string) (int, error)
}
