package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"zoo-ops/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Record appends an entry. Best-effort: a failed append is logged and
// swallowed so an audit problem never fails the request that caused it.
func (s *Service) Record(ctx context.Context, e Entry) {
	e.ID = uuid.NewString()
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}
	if err := s.repo.Append(ctx, e); err != nil {
		s.log.Error("audit append failed", map[string]any{
			"resource": e.Resource,
			"action":   string(e.Action),
			"err":      err.Error(),
		})
	}
}

// RecordHTTP is the one-liner mutating handlers call after a successful
// write. oldData/newData are marshaled here; nil means absent.
func (s *Service) RecordHTTP(r *http.Request, userID string, action Action, resource, resourceID string, oldData, newData any) {
	var oldRaw, newRaw json.RawMessage
	if oldData != nil {
		oldRaw, _ = json.Marshal(oldData)
	}
	if newData != nil {
		newRaw, _ = json.Marshal(newData)
	}

	s.Record(r.Context(), Entry{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		OldData:    oldRaw,
		NewData:    newRaw,
		IPAddress:  clientIP(r),
	})
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Entry, error) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 100
	}
	return s.repo.List(ctx, f)
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware already rewrote RemoteAddr from X-Forwarded-For.
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
