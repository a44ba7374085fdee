package stats

import (
	"context"
	"fmt"
	"time"

	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/enclosures"
	"zoo-ops/internal/domain/feeding"
	"zoo-ops/internal/domain/inventory"
	"zoo-ops/internal/domain/medical"
)

// Service reads across the other domains' repositories. It depends on the
// repository interfaces directly so the dashboard stays a pure read and
// cannot trip domain-level validation or side effects.
type Service struct {
	animals    animals.Repository
	enclosures enclosures.Repository
	inventory  inventory.Repository
	medical    medical.Repository
	feeding    feeding.Repository

	now func() time.Time
}

func NewService(
	ar animals.Repository,
	er enclosures.Repository,
	ir inventory.Repository,
	mr medical.Repository,
	fr feeding.Repository,
) *Service {
	return &Service{
		animals:    ar,
		enclosures: er,
		inventory:  ir,
		medical:    mr,
		feeding:    fr,
		now:        time.Now,
	}
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	as, err := s.animals.List(ctx, animals.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing animals: %w", err)
	}
	encs, err := s.enclosures.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing enclosures: %w", err)
	}
	items, err := s.inventory.List(ctx, "")
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing inventory: %w", err)
	}
	records, err := s.medical.List(ctx, medical.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing medical records: %w", err)
	}
	schedules, err := s.feeding.List(ctx, feeding.ListFilter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing feeding schedules: %w", err)
	}

	return Compute(as, len(encs), items, records, schedules, s.now()), nil
}
