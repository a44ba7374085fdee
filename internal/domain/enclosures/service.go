package enclosures

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// OccupancyCounter is implemented by the animals repository. Occupancy is
// always counted from animal assignments at read time; it is never stored on
// the enclosure, so it cannot go stale.
type OccupancyCounter interface {
	CountByEnclosure(ctx context.Context, enclosureID string) (int, error)
}

type Service struct {
	repo      Repository
	occupancy OccupancyCounter
	now       func() time.Time
}

func NewService(repo Repository, occupancy OccupancyCounter) *Service {
	return &Service{
		repo:      repo,
		occupancy: occupancy,
		now:       time.Now,
	}
}

// View is an enclosure plus its derived occupancy numbers.
type View struct {
	Enclosure
	CurrentOccupancy int
	OccupancyPct     int
}

type CreateInput struct {
	Name        string
	Type        string
	Capacity    int
	Location    string
	Temperature *float64
	Humidity    *float64
	CaretakerID string
}

func validEnvironment(temp, hum *float64) bool {
	if temp != nil && (*temp < -50 || *temp > 60) {
		return false
	}
	if hum != nil && (*hum < 0 || *hum > 100) {
		return false
	}
	return true
}

func (s *Service) Create(ctx context.Context, in CreateInput) (View, error) {
	if strings.TrimSpace(in.Name) == "" {
		return View{}, ErrInvalidInput
	}
	// capacity <= 0 is rejected here, not just at form-validation time;
	// OccupancyPercent would otherwise divide by zero
	if in.Capacity <= 0 {
		return View{}, ErrInvalidInput
	}
	if !validEnvironment(in.Temperature, in.Humidity) {
		return View{}, ErrInvalidInput
	}

	now := s.now()
	e := Enclosure{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		Capacity:    in.Capacity,
		Location:    strings.TrimSpace(in.Location),
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		CaretakerID: strings.TrimSpace(in.CaretakerID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return View{}, err
	}
	return View{Enclosure: e}, nil
}

type UpdateInput struct {
	Name        *string
	Type        *string
	Capacity    *int
	Location    *string
	Temperature *float64
	Humidity    *float64
	LastCleaned *time.Time
	CaretakerID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (View, error) {
	e, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return View{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return View{}, ErrInvalidInput
		}
		e.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		e.Type = strings.TrimSpace(*in.Type)
	}
	if in.Capacity != nil {
		if *in.Capacity <= 0 {
			return View{}, ErrInvalidInput
		}
		e.Capacity = *in.Capacity
	}
	if in.Location != nil {
		e.Location = strings.TrimSpace(*in.Location)
	}
	if in.Temperature != nil {
		e.Temperature = in.Temperature
	}
	if in.Humidity != nil {
		e.Humidity = in.Humidity
	}
	if !validEnvironment(e.Temperature, e.Humidity) {
		return View{}, ErrInvalidInput
	}
	if in.LastCleaned != nil {
		e.LastCleaned = in.LastCleaned
	}
	if in.CaretakerID != nil {
		e.CaretakerID = strings.TrimSpace(*in.CaretakerID)
	}

	e.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, e); err != nil {
		return View{}, err
	}
	return s.view(ctx, e), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (View, error) {
	e, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return View{}, ErrNotFound
	}
	return s.view(ctx, e), nil
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(items))
	for _, e := range items {
		out = append(out, s.view(ctx, e))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) view(ctx context.Context, e Enclosure) View {
	v := View{Enclosure: e}
	if s.occupancy != nil {
		if n, err := s.occupancy.CountByEnclosure(ctx, e.ID); err == nil {
			v.CurrentOccupancy = n
		}
	}
	v.OccupancyPct = OccupancyPercent(v.CurrentOccupancy, e.Capacity)
	return v
}
