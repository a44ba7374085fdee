package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"zoo-ops/internal/domain/species"
)

type speciesRepo struct {
	mu   sync.RWMutex
	byID map[string]species.Species
}

func NewSpeciesRepo() species.Repository {
	return &speciesRepo{
		byID: make(map[string]species.Species),
	}
}

func (r *speciesRepo) Create(ctx context.Context, s species.Species) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("species id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("species already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *speciesRepo) Update(ctx context.Context, s species.Species) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *speciesRepo) GetByID(ctx context.Context, id string) (species.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return species.Species{}, ErrNotFound
	}
	return s, nil
}

func (r *speciesRepo) List(ctx context.Context) ([]species.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]species.Species, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *speciesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
