package species

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
	r.Route("/api/species", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth)
		sr.Get("/", listHandler(svc))
		sr.Get("/{speciesID}", getHandler(svc))

		sr.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
			wr.Post("/", createHandler(svc, rec))
			wr.Put("/{speciesID}", updateHandler(svc, rec))
			wr.Delete("/{speciesID}", deleteHandler(svc, rec))
		})
	})
}

type createRequest struct {
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Category       string `json:"category"`
	Description    string `json:"description"`
}

type updateRequest struct {
	CommonName     *string `json:"commonName"`
	ScientificName *string `json:"scientificName"`
	Category       *string `json:"category"`
	Description    *string `json:"description"`
}

type speciesResponse struct {
	ID             string    `json:"id"`
	CommonName     string    `json:"commonName"`
	ScientificName string    `json:"scientificName"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// listHandler godoc
// @Summary List species
// @Tags species
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/species [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Internal(w, "failed to list species", err)
			return
		}

		out := make([]speciesResponse, 0, len(items))
		for _, sp := range items {
			out = append(out, toResponse(sp))
		}
		respond.OK(w, http.StatusOK, "species fetched", map[string]any{
			"species": out,
			"count":   len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := svc.GetByID(r.Context(), chi.URLParam(r, "speciesID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "species not found")
			return
		}
		respond.OK(w, http.StatusOK, "species fetched", map[string]any{"species": toResponse(sp)})
	}
}

// createHandler godoc
// @Summary Create a species catalog entry
// @Tags species
// @Accept json
// @Produce json
// @Param payload body createRequest true "Species fields"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/species [post]
func createHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		sp, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "commonName is required")
				return
			}
			respond.Internal(w, "failed to create species", err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionCreate, "species", sp.ID, nil, toResponse(sp))

		respond.OK(w, http.StatusOK, "species created", map[string]any{"species": toResponse(sp)})
	}
}

func updateHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "speciesID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "species not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		sp, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid species fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "species not found")
			default:
				respond.Internal(w, "failed to update species", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "species", sp.ID, toResponse(old), toResponse(sp))

		respond.OK(w, http.StatusOK, "species updated", map[string]any{"species": toResponse(sp)})
	}
}

func deleteHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "speciesID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "species not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "species not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionDelete, "species", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "species deleted", nil)
	}
}

func toResponse(sp Species) speciesResponse {
	return speciesResponse{
		ID:             sp.ID,
		CommonName:     sp.CommonName,
		ScientificName: sp.ScientificName,
		Category:       sp.Category,
		Description:    sp.Description,
		CreatedAt:      sp.CreatedAt,
		UpdatedAt:      sp.UpdatedAt,
	}
}
