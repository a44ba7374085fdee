package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"zoo-ops/internal/domain/feeding"
)

type feedingRepo struct {
	mu   sync.RWMutex
	byID map[string]feeding.Schedule
}

func NewFeedingRepo() feeding.Repository {
	return &feedingRepo{
		byID: make(map[string]feeding.Schedule),
	}
}

func (r *feedingRepo) Create(ctx context.Context, s feeding.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("schedule id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("schedule already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *feedingRepo) Update(ctx context.Context, s feeding.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *feedingRepo) GetByID(ctx context.Context, id string) (feeding.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return feeding.Schedule{}, ErrNotFound
	}
	return s, nil
}

func (r *feedingRepo) List(ctx context.Context, f feeding.ListFilter) ([]feeding.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feeding.Schedule, 0)
	for _, s := range r.byID {
		if f.AnimalID != "" && s.AnimalID != f.AnimalID {
			continue
		}
		if f.CaretakerID != "" && s.CaretakerID != f.CaretakerID {
			continue
		}
		if f.Active != nil && s.IsActive != *f.Active {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *feedingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
