package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"zoo-ops/internal/ports/auth"

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
	Name      string
	Email     string
	Role      string
	Phone     string
	Specialty string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return User{}, ErrInvalidInput
	}
	role := auth.ParseRole(in.Role)
	if role == "" {
		return User{}, ErrInvalidInput
	}

	now := s.now()
	u := User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Role:      role,
		Phone:     strings.TrimSpace(in.Phone),
		Specialty: strings.TrimSpace(in.Specialty),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

type UpdateInput struct {
	Name      *string
	Email     *string
	Role      *string
	Phone     *string
	Specialty *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return User{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return User{}, ErrInvalidInput
		}
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return User{}, ErrInvalidInput
		}
		u.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Role != nil {
		role := auth.ParseRole(*in.Role)
		if role == "" {
			return User{}, ErrInvalidInput
		}
		u.Role = role
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Specialty != nil {
		u.Specialty = strings.TrimSpace(*in.Specialty)
	}

	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

// List returns all users, or only those with the given role.
func (s *Service) List(ctx context.Context, role auth.Role) ([]User, error) {
	return s.repo.List(ctx, role)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}
