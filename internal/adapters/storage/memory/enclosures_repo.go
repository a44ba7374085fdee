package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"zoo-ops/internal/domain/enclosures"
)

type enclosuresRepo struct {
	mu   sync.RWMutex
	byID map[string]enclosures.Enclosure
}

func NewEnclosuresRepo() enclosures.Repository {
	return &enclosuresRepo{
		byID: make(map[string]enclosures.Enclosure),
	}
}

func (r *enclosuresRepo) Create(ctx context.Context, e enclosures.Enclosure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("enclosure id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("enclosure already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *enclosuresRepo) Update(ctx context.Context, e enclosures.Enclosure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *enclosuresRepo) GetByID(ctx context.Context, id string) (enclosures.Enclosure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return enclosures.Enclosure{}, ErrNotFound
	}
	return e, nil
}

func (r *enclosuresRepo) List(ctx context.Context) ([]enclosures.Enclosure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]enclosures.Enclosure, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *enclosuresRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
