package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("restock quantity must be positive")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Category     Category
	Quantity     int
	Unit         string
	MinThreshold int
	MaxThreshold int
	Cost         float64
	Supplier     string
	ExpiryDate   *time.Time
}

func validThresholds(min, max int) bool {
	if min < 0 || max < 0 {
		return false
	}
	// both configured: min < max
	if min > 0 && max > 0 && min >= max {
		return false
	}
	return true
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Item{}, ErrInvalidInput
	}
	if !ValidCategory(in.Category) {
		return Item{}, ErrInvalidInput
	}
	if in.Quantity < 0 || in.Cost < 0 {
		return Item{}, ErrInvalidInput
	}
	if !validThresholds(in.MinThreshold, in.MaxThreshold) {
		return Item{}, ErrInvalidInput
	}

	now := s.now()
	it := Item{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
		MinThreshold: in.MinThreshold,
		MaxThreshold: in.MaxThreshold,
		Cost:         in.Cost,
		Supplier:     strings.TrimSpace(in.Supplier),
		ExpiryDate:   in.ExpiryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Quantity > 0 {
		it.LastRestocked = &now
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

type UpdateInput struct {
	Name         *string
	Category     *Category
	Quantity     *int
	Unit         *string
	MinThreshold *int
	MaxThreshold *int
	Cost         *float64
	Supplier     *string
	ExpiryDate   *time.Time
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Item, error) {
	it, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Item{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Item{}, ErrInvalidInput
		}
		it.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		if !ValidCategory(*in.Category) {
			return Item{}, ErrInvalidInput
		}
		it.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return Item{}, ErrInvalidInput
		}
		it.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		it.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.MinThreshold != nil {
		it.MinThreshold = *in.MinThreshold
	}
	if in.MaxThreshold != nil {
		it.MaxThreshold = *in.MaxThreshold
	}
	if !validThresholds(it.MinThreshold, it.MaxThreshold) {
		return Item{}, ErrInvalidInput
	}
	if in.Cost != nil {
		if *in.Cost < 0 {
			return Item{}, ErrInvalidInput
		}
		it.Cost = *in.Cost
	}
	if in.Supplier != nil {
		it.Supplier = strings.TrimSpace(*in.Supplier)
	}
	if in.ExpiryDate != nil {
		it.ExpiryDate = in.ExpiryDate
	}

	it.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Restock adds quantity to the current stock. Additive, so restocking q1
// then q2 lands on the same total as a single q1+q2 restock. The returned
// message embeds unit and new total for the UI toast.
func (s *Service) Restock(ctx context.Context, id string, quantity int) (Item, string, error) {
	if quantity <= 0 {
		return Item{}, "", ErrInvalidQuantity
	}

	it, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Item{}, "", ErrNotFound
	}

	now := s.now()
	it.Quantity += quantity
	it.LastRestocked = &now
	it.UpdatedAt = now

	if err := s.repo.Update(ctx, it); err != nil {
		return Item{}, "", err
	}

	msg := fmt.Sprintf("Restocked %d %s of %s. New total: %d %s",
		quantity, it.Unit, it.Name, it.Quantity, it.Unit)
	return it, msg, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	it, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Item{}, ErrNotFound
	}
	return it, nil
}

// List applies the category filter at the repo and the derived boolean
// filters (lowStock, expired) here with the pure classifiers.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Item, error) {
	items, err := s.repo.List(ctx, f.Category)
	if err != nil {
		return nil, err
	}

	if f.LowStock == nil && f.Expired == nil {
		return items, nil
	}

	now := s.now()
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.LowStock != nil && IsLowStock(it) != *f.LowStock {
			continue
		}
		if f.Expired != nil && Expired(it, now) != *f.Expired {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// LowStock returns every item at or below its minimum threshold.
func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	t := true
	return s.List(ctx, ListFilter{LowStock: &t})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}
