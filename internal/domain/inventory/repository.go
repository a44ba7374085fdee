package inventory

import "context"

// ListFilter narrows List results. Category filters at the repo; the boolean
// derivations (low stock, expired) are applied by the service with the pure
// classifiers so repo backends don't duplicate that logic.
type ListFilter struct {
	Category Category
	LowStock *bool
	Expired  *bool
}

type Repository interface {
	Create(ctx context.Context, it Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	List(ctx context.Context, category Category) ([]Item, error)
	Update(ctx context.Context, it Item) error
	Delete(ctx context.Context, id string) error
}
