package stats

import (
	"net/http"

	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.With(middleware.RequireAuth).Get("/api/dashboard/stats", statsHandler(svc))
}

// statsHandler godoc
// @Summary Dashboard statistics
// @Description Derived counters over animals, enclosures, inventory, medical records and feeding schedules. Computed per request, never cached.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context())
		if err != nil {
			respond.Internal(w, "failed to compute dashboard stats", err)
			return
		}
		respond.OK(w, http.StatusOK, "dashboard stats fetched", map[string]any{"stats": d})
	}
}
