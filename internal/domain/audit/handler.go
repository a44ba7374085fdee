package audit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"
	"zoo-ops/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/audit-logs", func(ar chi.Router) {
		ar.Use(middleware.RequireRole(auth.RoleAdmin))
		ar.Get("/", listHandler(svc))
	})
}

type entryResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Action     Action          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resourceId"`
	OldData    json.RawMessage `json:"oldData,omitempty"`
	NewData    json.RawMessage `json:"newData,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	IPAddress  string          `json:"ipAddress"`
}

// listHandler godoc
// @Summary List audit log entries
// @Description Admin-only. Filterable by resource, action and userId; newest first.
// @Tags audit
// @Produce json
// @Param resource query string false "Resource name (animals, inventory, ...)"
// @Param action query string false "CREATE, UPDATE or DELETE"
// @Param userId query string false "Acting user id"
// @Param limit query int false "Max entries (default 100, cap 500)"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Router /api/audit-logs [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := ListFilter{
			Resource: q.Get("resource"),
			Action:   Action(q.Get("action")),
			UserID:   q.Get("userId"),
		}
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				f.Limit = n
			}
		}

		entries, err := svc.List(r.Context(), f)
		if err != nil {
			respond.Internal(w, "failed to list audit logs", err)
			return
		}

		out := make([]entryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, entryResponse{
				ID:         e.ID,
				UserID:     e.UserID,
				Action:     e.Action,
				Resource:   e.Resource,
				ResourceID: e.ResourceID,
				OldData:    e.OldData,
				NewData:    e.NewData,
				Timestamp:  e.Timestamp,
				IPAddress:  e.IPAddress,
			})
		}

		respond.OK(w, http.StatusOK, "audit logs fetched", map[string]any{
			"auditLogs": out,
			"count":     len(out),
		})
	}
}
