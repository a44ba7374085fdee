package enclosures

import "context"

type Repository interface {
	Create(ctx context.Context, e Enclosure) error
	GetByID(ctx context.Context, id string) (Enclosure, error)
	List(ctx context.Context) ([]Enclosure, error)
	Update(ctx context.Context, e Enclosure) error
	Delete(ctx context.Context, id string) error
}
