package notifications

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
	Type      Type
	Title     string
	Message   string
	Priority  Priority
	UserID    string
	RelatedID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Notification, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Notification{}, ErrInvalidInput
	}

	typ := in.Type
	if typ == "" {
		typ = TypeGeneral
	}
	if !ValidType(typ) {
		return Notification{}, ErrInvalidInput
	}

	prio := in.Priority
	if prio == "" {
		prio = PriorityMedium
	}
	if !ValidPriority(prio) {
		return Notification{}, ErrInvalidInput
	}

	now := s.now()
	n := Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     strings.TrimSpace(in.Title),
		Message:   strings.TrimSpace(in.Message),
		Priority:  prio,
		UserID:    strings.TrimSpace(in.UserID),
		RelatedID: strings.TrimSpace(in.RelatedID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Notification, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) GetByID(ctx context.Context, id string) (Notification, error) {
	n, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Notification{}, ErrNotFound
	}
	return n, nil
}

type UpdateInput struct {
	Type      *Type
	Title     *string
	Message   *string
	Priority  *Priority
	Read      *bool
	RelatedID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Notification, error) {
	n, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Notification{}, ErrNotFound
	}

	if in.Type != nil {
		if !ValidType(*in.Type) {
			return Notification{}, ErrInvalidInput
		}
		n.Type = *in.Type
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return Notification{}, ErrInvalidInput
		}
		n.Title = strings.TrimSpace(*in.Title)
	}
	if in.Message != nil {
		n.Message = strings.TrimSpace(*in.Message)
	}
	if in.Priority != nil {
		if !ValidPriority(*in.Priority) {
			return Notification{}, ErrInvalidInput
		}
		n.Priority = *in.Priority
	}
	if in.Read != nil {
		n.Read = *in.Read
	}
	if in.RelatedID != nil {
		n.RelatedID = strings.TrimSpace(*in.RelatedID)
	}

	n.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// MarkRead is idempotent.
func (s *Service) MarkRead(ctx context.Context, id string) (Notification, error) {
	n, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Notification{}, ErrNotFound
	}
	if n.Read {
		return n, nil
	}

	n.Read = true
	n.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// MarkAllRead marks every unread notification visible to the user and
// returns how many it touched.
func (s *Service) MarkAllRead(ctx context.Context, userID string) (int, error) {
	unread := false
	items, err := s.repo.List(ctx, ListFilter{UserID: userID, Read: &unread})
	if err != nil {
		return 0, err
	}

	now := s.now()
	n := 0
	for _, item := range items {
		item.Read = true
		item.UpdatedAt = now
		if err := s.repo.Update(ctx, item); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	unread := false
	items, err := s.repo.List(ctx, ListFilter{UserID: userID, Read: &unread})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return ErrNotFound
	}
	return nil
}
