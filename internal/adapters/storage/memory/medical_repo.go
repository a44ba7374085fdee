package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"zoo-ops/internal/domain/medical"
)

type medicalRepo struct {
	mu   sync.RWMutex
	byID map[string]medical.Record
}

func NewMedicalRepo() medical.Repository {
	return &medicalRepo{
		byID: make(map[string]medical.Record),
	}
}

func (r *medicalRepo) Create(ctx context.Context, rec medical.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *medicalRepo) Update(ctx context.Context, rec medical.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *medicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return medical.Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *medicalRepo) List(ctx context.Context, f medical.ListFilter) ([]medical.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medical.Record, 0)
	for _, rec := range r.byID {
		if f.AnimalID != "" && rec.AnimalID != f.AnimalID {
			continue
		}
		if f.DoctorID != "" && rec.DoctorID != f.DoctorID {
			continue
		}
		if f.Type != "" && rec.Type != f.Type {
			continue
		}
		out = append(out, rec)
	}

	// Newest first: medical history reads back from the latest visit.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

func (r *medicalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
