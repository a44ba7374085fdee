package enclosures

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"zoo-ops/internal/domain/audit"
	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"
	"zoo-ops/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rec *audit.Service) {
	r.Route("/api/enclosures", func(er chi.Router) {
		er.Use(middleware.RequireAuth)
		er.Get("/", listHandler(svc))
		er.Get("/{enclosureID}", getHandler(svc))

		er.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleCaretaker))
			wr.Post("/", createHandler(svc, rec))
			wr.Put("/{enclosureID}", updateHandler(svc, rec))
			wr.Delete("/{enclosureID}", deleteHandler(svc, rec))
		})
	})
}

type createRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Location    string   `json:"location"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	CaretakerID string   `json:"caretakerId"`
}

type updateRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Capacity    *int     `json:"capacity"`
	Location    *string  `json:"location"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	LastCleaned *string  `json:"lastCleaned"` // RFC3339
	CaretakerID *string  `json:"caretakerId"`
}

type enclosureResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	Capacity         int        `json:"capacity"`
	CurrentOccupancy int        `json:"currentOccupancy"`
	OccupancyPct     int        `json:"occupancyPercentage"`
	Location         string     `json:"location"`
	Temperature      *float64   `json:"temperature,omitempty"`
	Humidity         *float64   `json:"humidity,omitempty"`
	LastCleaned      *time.Time `json:"lastCleaned,omitempty"`
	CaretakerID      string     `json:"caretakerId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// listHandler godoc
// @Summary List enclosures with derived occupancy
// @Tags enclosures
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/enclosures [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Internal(w, "failed to list enclosures", err)
			return
		}

		out := make([]enclosureResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toResponse(v))
		}
		respond.OK(w, http.StatusOK, "enclosures fetched", map[string]any{
			"enclosures": out,
			"count":      len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "enclosureID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "enclosure not found")
			return
		}
		respond.OK(w, http.StatusOK, "enclosure fetched", map[string]any{"enclosure": toResponse(v)})
	}
}

// createHandler godoc
// @Summary Create an enclosure
// @Description Capacity must be positive; temperature -50..60 and humidity 0..100 when present.
// @Tags enclosures
// @Accept json
// @Produce json
// @Param payload body createRequest true "Enclosure fields"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/enclosures [post]
func createHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "name and a positive capacity are required")
				return
			}
			respond.Internal(w, "failed to create enclosure", err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionCreate, "enclosures", v.ID, nil, toResponse(v))

		respond.OK(w, http.StatusOK, "enclosure created", map[string]any{"enclosure": toResponse(v)})
	}
}

func updateHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "enclosureID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "enclosure not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			Name:        req.Name,
			Type:        req.Type,
			Capacity:    req.Capacity,
			Location:    req.Location,
			Temperature: req.Temperature,
			Humidity:    req.Humidity,
			CaretakerID: req.CaretakerID,
		}
		if req.LastCleaned != nil {
			t, err := time.Parse(time.RFC3339, *req.LastCleaned)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "lastCleaned must be RFC3339")
				return
			}
			in.LastCleaned = &t
		}

		v, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid enclosure fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "enclosure not found")
			default:
				respond.Internal(w, "failed to update enclosure", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "enclosures", v.ID, toResponse(old), toResponse(v))

		respond.OK(w, http.StatusOK, "enclosure updated", map[string]any{"enclosure": toResponse(v)})
	}
}

func deleteHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "enclosureID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "enclosure not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "enclosure not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionDelete, "enclosures", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "enclosure deleted", nil)
	}
}

func toResponse(v View) enclosureResponse {
	return enclosureResponse{
		ID:               v.ID,
		Name:             v.Name,
		Type:             v.Type,
		Capacity:         v.Capacity,
		CurrentOccupancy: v.CurrentOccupancy,
		OccupancyPct:     v.OccupancyPct,
		Location:         v.Location,
		Temperature:      v.Temperature,
		Humidity:         v.Humidity,
		LastCleaned:      v.LastCleaned,
		CaretakerID:      v.CaretakerID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}
