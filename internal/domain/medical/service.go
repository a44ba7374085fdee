package medical

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

type CreateInput struct {
	AnimalID    string
	DoctorID    string
	Date        time.Time
	Type        RecordType
	Diagnosis   string
	Treatment   string
	Medications []string
	Notes       string
	NextCheckup *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.AnimalID) == "" || strings.TrimSpace(in.DoctorID) == "" {
		return Record{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Record{}, ErrInvalidInput
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	rec := Record{
		ID:          uuid.NewString(),
		AnimalID:    strings.TrimSpace(in.AnimalID),
		DoctorID:    strings.TrimSpace(in.DoctorID),
		Date:        date,
		Type:        in.Type,
		Diagnosis:   strings.TrimSpace(in.Diagnosis),
		Treatment:   strings.TrimSpace(in.Treatment),
		Medications: cleanList(in.Medications),
		Notes:       strings.TrimSpace(in.Notes),
		NextCheckup: in.NextCheckup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

type UpdateInput struct {
	DoctorID    *string
	Date        *time.Time
	Type        *RecordType
	Diagnosis   *string
	Treatment   *string
	Medications *[]string
	Notes       *string
	NextCheckup *time.Time
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	rec, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Record{}, ErrNotFound
	}

	if in.DoctorID != nil {
		if strings.TrimSpace(*in.DoctorID) == "" {
			return Record{}, ErrInvalidInput
		}
		rec.DoctorID = strings.TrimSpace(*in.DoctorID)
	}
	if in.Date != nil {
		rec.Date = *in.Date
	}
	if in.Type != nil {
		if !ValidType(*in.Type) {
			return Record{}, ErrInvalidInput
		}
		rec.Type = *in.Type
	}
	if in.Diagnosis != nil {
		rec.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil {
		rec.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.Medications != nil {
		rec.Medications = cleanList(*in.Medications)
	}
	if in.Notes != nil {
		rec.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.NextCheckup != nil {
		rec.NextCheckup = in.NextCheckup
	}

	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	rec, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Record, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, m := range in {
		if v := strings.TrimSpace(m); v != "" {
			out = append(out, v)
		}
	}
	return out
}
