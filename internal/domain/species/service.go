package species

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
	CommonName     string
	ScientificName string
	Category       string
	Description    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Species, error) {
	if strings.TrimSpace(in.CommonName) == "" {
		return Species{}, ErrInvalidInput
	}

	now := s.now()
	sp := Species{
		ID:             uuid.NewString(),
		CommonName:     strings.TrimSpace(in.CommonName),
		ScientificName: strings.TrimSpace(in.ScientificName),
		Category:       strings.TrimSpace(in.Category),
		Description:    strings.TrimSpace(in.Description),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return Species{}, err
	}
	return sp, nil
}

type UpdateInput struct {
	CommonName     *string
	ScientificName *string
	Category       *string
	Description    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Species, error) {
	sp, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Species{}, ErrNotFound
	}

	if in.CommonName != nil {
		if strings.TrimSpace(*in.CommonName) == "" {
			return Species{}, ErrInvalidInput
		}
		sp.CommonName = strings.TrimSpace(*in.CommonName)
	}
	if in.ScientificName != nil {
		sp.ScientificName = strings.TrimSpace(*in.ScientificName)
	}
	if in.Category != nil {
		sp.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		sp.Description = strings.TrimSpace(*in.Description)
	}
	sp.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sp); err != nil {
		return Species{}, err
	}
	return sp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Species, error) {
	sp, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Species{}, ErrNotFound
	}
	return sp, nil
}

func (s *Service) List(ctx context.Context) ([]Species, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}
