package notifications

import "context"

// ListFilter narrows List. UserID matches targeted notifications plus
// broadcasts (empty UserID on the record).
type ListFilter struct {
	UserID string
	Type   Type
	Read   *bool
}

type Repository interface {
	Create(ctx context.Context, n Notification) error
	GetByID(ctx context.Context, id string) (Notification, error)
	List(ctx context.Context, f ListFilter) ([]Notification, error)
	Update(ctx context.Context, n Notification) error
	Delete(ctx context.Context, id string) error
}
