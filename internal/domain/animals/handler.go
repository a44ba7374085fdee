package animals

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
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Use(middleware.RequireAuth)
		ar.Get("/", listHandler(svc))
		ar.Get("/{animalID}", getHandler(svc))

		ar.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleCaretaker))
			wr.Post("/", createHandler(svc, rec))
			wr.Put("/{animalID}", updateHandler(svc, rec))
			wr.Delete("/{animalID}", deleteHandler(svc, rec))
		})
	})
}

type createRequest struct {
	Name        string       `json:"name"`
	Species     string       `json:"species"` // species id
	Category    Category     `json:"category" enums:"mammals,reptiles,birds,amphibians,fish,insects"`
	Age         int          `json:"age"`
	Weight      float64      `json:"weight"`
	Sex         Sex          `json:"sex" enums:"Male,Female,Unknown"`
	Status      HealthStatus `json:"status" enums:"healthy,sick,injured,recovering,quarantine,deceased"`
	EnclosureID string       `json:"enclosureId"`
	CaretakerID string       `json:"caretakerId"`
	DoctorID    string       `json:"doctorId"`
	ArrivalDate string       `json:"arrivalDate"` // YYYY-MM-DD or RFC3339
	DOB         string       `json:"dob"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imgUrl"`
}

type updateRequest struct {
	Name        *string       `json:"name"`
	Species     *string       `json:"species"`
	Category    *Category     `json:"category"`
	Age         *int          `json:"age"`
	Weight      *float64      `json:"weight"`
	Sex         *Sex          `json:"sex"`
	Status      *HealthStatus `json:"status"`
	EnclosureID *string       `json:"enclosureId"`
	CaretakerID *string       `json:"caretakerId"`
	DoctorID    *string       `json:"doctorId"`
	ArrivalDate *string       `json:"arrivalDate"`
	DOB         *string       `json:"dob"`
	LastCheckup *string       `json:"lastCheckup"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"imgUrl"`
}

type animalResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Species     SpeciesRef   `json:"species"` // bare id or populated object
	Category    Category     `json:"category"`
	Age         int          `json:"age"`
	Weight      float64      `json:"weight"`
	Sex         Sex          `json:"sex"`
	Status      HealthStatus `json:"status"`
	EnclosureID string       `json:"enclosureId,omitempty"`
	CaretakerID string       `json:"caretakerId,omitempty"`
	DoctorID    string       `json:"doctorId,omitempty"`
	ArrivalDate *time.Time   `json:"arrivalDate,omitempty"`
	DOB         *time.Time   `json:"dob,omitempty"`
	LastCheckup *time.Time   `json:"lastCheckup,omitempty"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"imgUrl,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// listHandler godoc
// @Summary List animals
// @Description Filterable by category, health status, enclosure and a name search term.
// @Tags animals
// @Produce json
// @Param category query string false "mammals, reptiles, birds, amphibians, fish, insects"
// @Param status query string false "healthy, sick, injured, recovering, quarantine, deceased"
// @Param enclosureId query string false "Enclosure id"
// @Param search query string false "Name substring, case-insensitive"
// @Success 200 {object} map[string]any
// @Router /api/animals [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Category:    Category(q.Get("category")),
			Status:      HealthStatus(q.Get("status")),
			EnclosureID: q.Get("enclosureId"),
			Search:      q.Get("search"),
		})
		if err != nil {
			respond.Internal(w, "failed to list animals", err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		respond.OK(w, http.StatusOK, "animals fetched", map[string]any{
			"animals": out,
			"count":   len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "animal not found")
			return
		}
		respond.OK(w, http.StatusOK, "animal fetched", map[string]any{"animal": toResponse(a)})
	}
}

// createHandler godoc
// @Summary Register an animal
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createRequest true "Animal fields; server assigns the id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/animals [post]
func createHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		arrival, err := parseDate(req.ArrivalDate)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "arrivalDate must be YYYY-MM-DD or RFC3339")
			return
		}
		dob, err := parseDate(req.DOB)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "dob must be YYYY-MM-DD or RFC3339")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			SpeciesID:   req.Species,
			Category:    req.Category,
			Age:         req.Age,
			Weight:      req.Weight,
			Sex:         req.Sex,
			Status:      req.Status,
			EnclosureID: req.EnclosureID,
			CaretakerID: req.CaretakerID,
			DoctorID:    req.DoctorID,
			ArrivalDate: arrival,
			DOB:         dob,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "name, valid category and valid status are required")
				return
			}
			respond.Internal(w, "failed to create animal", err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionCreate, "animals", a.ID, nil, toResponse(a))

		respond.OK(w, http.StatusOK, "animal created", map[string]any{"animal": toResponse(a)})
	}
}

func updateHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			Name:        req.Name,
			SpeciesID:   req.Species,
			Category:    req.Category,
			Age:         req.Age,
			Weight:      req.Weight,
			Sex:         req.Sex,
			Status:      req.Status,
			EnclosureID: req.EnclosureID,
			CaretakerID: req.CaretakerID,
			DoctorID:    req.DoctorID,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}

		for _, d := range []struct {
			raw  *string
			dst  **time.Time
			name string
		}{
			{req.ArrivalDate, &in.ArrivalDate, "arrivalDate"},
			{req.DOB, &in.DOB, "dob"},
			{req.LastCheckup, &in.LastCheckup, "lastCheckup"},
		} {
			if d.raw == nil {
				continue
			}
			t, err := parseDate(*d.raw)
			if err != nil || t == nil {
				respond.Error(w, http.StatusBadRequest, d.name+" must be YYYY-MM-DD or RFC3339")
				return
			}
			*d.dst = t
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid animal fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "animal not found")
			default:
				respond.Internal(w, "failed to update animal", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "animals", a.ID, toResponse(old), toResponse(a))

		respond.OK(w, http.StatusOK, "animal updated", map[string]any{"animal": toResponse(a)})
	}
}

func deleteHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionDelete, "animals", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "animal deleted", nil)
	}
}

func toResponse(a Animal) animalResponse {
	return animalResponse{
		ID:          a.ID,
		Name:        a.Name,
		Species:     a.Species,
		Category:    a.Category,
		Age:         a.Age,
		Weight:      a.Weight,
		Sex:         a.Sex,
		Status:      a.Status,
		EnclosureID: a.EnclosureID,
		CaretakerID: a.CaretakerID,
		DoctorID:    a.DoctorID,
		ArrivalDate: a.ArrivalDate,
		DOB:         a.DOB,
		LastCheckup: a.LastCheckup,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// parseDate accepts RFC3339 or bare YYYY-MM-DD. Empty string means absent.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
