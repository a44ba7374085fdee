package medical

import "context"

type ListFilter struct {
	AnimalID string
	DoctorID string
	Type     RecordType
}

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, f ListFilter) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
