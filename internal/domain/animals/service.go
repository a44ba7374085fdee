package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"zoo-ops/internal/domain/species"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// SpeciesResolver populates bare species ids on reads. Implemented by the
// species service; nil disables population.
type SpeciesResolver interface {
	GetByID(ctx context.Context, id string) (species.Species, error)
}

type Service struct {
	repo     Repository
	resolver SpeciesResolver
	now      func() time.Time
}

func NewService(repo Repository, resolver SpeciesResolver) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name        string
	SpeciesID   string
	Category    Category
	Age         int
	Weight      float64
	Sex         Sex
	Status      HealthStatus
	EnclosureID string
	CaretakerID string
	DoctorID    string
	ArrivalDate *time.Time
	DOB         *time.Time
	Description string
	ImageURL    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}
	if !ValidCategory(in.Category) {
		return Animal{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight < 0 {
		return Animal{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusHealthy
	}
	if !ValidStatus(status) {
		return Animal{}, ErrInvalidInput
	}

	sex := in.Sex
	if sex == "" {
		sex = SexUnknown
	}

	now := s.now()
	a := Animal{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Species:     RefID(in.SpeciesID),
		Category:    in.Category,
		Age:         in.Age,
		Weight:      in.Weight,
		Sex:         sex,
		Status:      status,
		EnclosureID: strings.TrimSpace(in.EnclosureID),
		CaretakerID: strings.TrimSpace(in.CaretakerID),
		DoctorID:    strings.TrimSpace(in.DoctorID),
		ArrivalDate: in.ArrivalDate,
		DOB:         in.DOB,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// UpdateInput uses pointers so PUT bodies can carry any subset of fields.
// nil means "leave alone".
type UpdateInput struct {
	Name        *string
	SpeciesID   *string
	Category    *Category
	Age         *int
	Weight      *float64
	Sex         *Sex
	Status      *HealthStatus
	EnclosureID *string
	CaretakerID *string
	DoctorID    *string
	ArrivalDate *time.Time
	DOB         *time.Time
	LastCheckup *time.Time
	Description *string
	ImageURL    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Animal{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.SpeciesID != nil {
		a.Species = RefID(*in.SpeciesID)
	}
	if in.Category != nil {
		if !ValidCategory(*in.Category) {
			return Animal{}, ErrInvalidInput
		}
		a.Category = *in.Category
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Animal{}, ErrInvalidInput
		}
		a.Age = *in.Age
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Animal{}, ErrInvalidInput
		}
		a.Weight = *in.Weight
	}
	if in.Sex != nil {
		a.Sex = *in.Sex
	}
	if in.Status != nil {
		// any status to any status; transitions are unconstrained
		if !ValidStatus(*in.Status) {
			return Animal{}, ErrInvalidInput
		}
		a.Status = *in.Status
	}
	if in.EnclosureID != nil {
		a.EnclosureID = strings.TrimSpace(*in.EnclosureID)
	}
	if in.CaretakerID != nil {
		a.CaretakerID = strings.TrimSpace(*in.CaretakerID)
	}
	if in.DoctorID != nil {
		a.DoctorID = strings.TrimSpace(*in.DoctorID)
	}
	if in.ArrivalDate != nil {
		a.ArrivalDate = in.ArrivalDate
	}
	if in.DOB != nil {
		a.DOB = in.DOB
	}
	if in.LastCheckup != nil {
		a.LastCheckup = in.LastCheckup
	}
	if in.Description != nil {
		a.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		a.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Animal{}, ErrNotFound
		}
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Animal{}, ErrNotFound
	}
	return s.populate(ctx, a), nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Animal, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = s.populate(ctx, items[i])
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

// populate swaps a bare species id for the catalog object when it resolves.
// Unresolvable ids stay as bare ids; responses are valid either way.
func (s *Service) populate(ctx context.Context, a Animal) Animal {
	if s.resolver == nil || a.Species.Populated != nil || a.Species.IsZero() {
		return a
	}
	sp, err := s.resolver.GetByID(ctx, a.Species.ID)
	if err != nil {
		return a
	}
	a.Species = SpeciesRef{ID: sp.ID, Populated: &sp}
	return a
}
