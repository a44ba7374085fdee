package feeding

import "context"

type ListFilter struct {
	AnimalID    string
	CaretakerID string
	Active      *bool
}

type Repository interface {
	Create(ctx context.Context, s Schedule) error
	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context, f ListFilter) ([]Schedule, error)
	Update(ctx context.Context, s Schedule) error
	Delete(ctx context.Context, id string) error
}
