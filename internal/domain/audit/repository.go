package audit

import "context"

type ListFilter struct {
	Resource string
	Action   Action
	UserID   string
	Limit    int
}

type Repository interface {
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, f ListFilter) ([]Entry, error)
}
