package feeding

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

// View is a schedule plus its derived overdue flag.
type View struct {
	Schedule
	IsOverdue bool
}

type CreateInput struct {
	AnimalID    string
	ItemID      string
	FoodType    string
	Quantity    float64
	Unit        string
	Frequency   Frequency
	Time        string
	CaretakerID string
	Notes       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (View, error) {
	if strings.TrimSpace(in.AnimalID) == "" {
		return View{}, ErrInvalidInput
	}
	if !ValidFrequency(in.Frequency) {
		return View{}, ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return View{}, ErrInvalidInput
	}
	if in.Time != "" {
		if _, err := time.Parse("15:04", in.Time); err != nil {
			return View{}, ErrInvalidInput
		}
	}

	now := s.now()
	sc := Schedule{
		ID:          uuid.NewString(),
		AnimalID:    strings.TrimSpace(in.AnimalID),
		ItemID:      strings.TrimSpace(in.ItemID),
		FoodType:    strings.TrimSpace(in.FoodType),
		Quantity:    in.Quantity,
		Unit:        strings.TrimSpace(in.Unit),
		Frequency:   in.Frequency,
		Time:        in.Time,
		CaretakerID: strings.TrimSpace(in.CaretakerID),
		IsActive:    true,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, sc); err != nil {
		return View{}, err
	}
	return s.view(sc), nil
}

type UpdateInput struct {
	ItemID      *string
	FoodType    *string
	Quantity    *float64
	Unit        *string
	Frequency   *Frequency
	Time        *string
	CaretakerID *string
	IsActive    *bool
	Notes       *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (View, error) {
	sc, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return View{}, ErrNotFound
	}

	if in.ItemID != nil {
		sc.ItemID = strings.TrimSpace(*in.ItemID)
	}
	if in.FoodType != nil {
		sc.FoodType = strings.TrimSpace(*in.FoodType)
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return View{}, ErrInvalidInput
		}
		sc.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		sc.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Frequency != nil {
		if !ValidFrequency(*in.Frequency) {
			return View{}, ErrInvalidInput
		}
		sc.Frequency = *in.Frequency
	}
	if in.Time != nil {
		if *in.Time != "" {
			if _, err := time.Parse("15:04", *in.Time); err != nil {
				return View{}, ErrInvalidInput
			}
		}
		sc.Time = *in.Time
	}
	if in.CaretakerID != nil {
		sc.CaretakerID = strings.TrimSpace(*in.CaretakerID)
	}
	if in.IsActive != nil {
		sc.IsActive = *in.IsActive
	}
	if in.Notes != nil {
		sc.Notes = strings.TrimSpace(*in.Notes)
	}

	sc.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sc); err != nil {
		return View{}, err
	}
	return s.view(sc), nil
}

// Complete marks the schedule as fed now. Notes, when given, replace the
// schedule's notes.
func (s *Service) Complete(ctx context.Context, id string, notes *string) (View, error) {
	sc, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return View{}, ErrNotFound
	}

	now := s.now()
	sc.LastFed = &now
	if notes != nil {
		sc.Notes = strings.TrimSpace(*notes)
	}
	sc.UpdatedAt = now

	if err := s.repo.Update(ctx, sc); err != nil {
		return View{}, err
	}
	return s.view(sc), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (View, error) {
	sc, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return View{}, ErrNotFound
	}
	return s.view(sc), nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]View, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(items))
	for _, sc := range items {
		out = append(out, s.view(sc))
	}
	return out, nil
}

// DueCount is the number of active schedules currently overdue; the
// dashboard's feedingsDue figure.
func (s *Service) DueCount(ctx context.Context) (int, error) {
	active := true
	items, err := s.repo.List(ctx, ListFilter{Active: &active})
	if err != nil {
		return 0, err
	}
	now := s.now()
	n := 0
	for _, sc := range items {
		if IsOverdue(sc, now) {
			n++
		}
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) view(sc Schedule) View {
	return View{
		Schedule:  sc,
		IsOverdue: IsOverdue(sc, s.now()),
	}
}
