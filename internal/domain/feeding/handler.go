package feeding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/audit"
	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"
	"zoo-ops/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service, rec *audit.Service) {
	r.Route("/api/feeding-schedules", func(fr chi.Router) {
		fr.Use(middleware.RequireAuth)
		fr.Get("/", listHandler(svc))
		fr.Get("/{scheduleID}", getHandler(svc))

		fr.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleCaretaker))
			wr.Post("/", createHandler(svc, animalsSvc, rec))
			wr.Put("/{scheduleID}", updateHandler(svc, rec))
			wr.Patch("/{scheduleID}/complete", completeHandler(svc, rec))
			wr.Delete("/{scheduleID}", deleteHandler(svc, rec))
		})
	})
}

type createRequest struct {
	AnimalID    string    `json:"animalId"`
	ItemID      string    `json:"item"`
	FoodType    string    `json:"foodType"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Frequency   Frequency `json:"frequency" enums:"daily,twice_daily,every_2_days,weekly"`
	Time        string    `json:"time"` // HH:MM
	CaretakerID string    `json:"caretakerId"`
	Notes       string    `json:"notes"`
}

type updateRequest struct {
	ItemID      *string    `json:"item"`
	FoodType    *string    `json:"foodType"`
	Quantity    *float64   `json:"quantity"`
	Unit        *string    `json:"unit"`
	Frequency   *Frequency `json:"frequency"`
	Time        *string    `json:"time"`
	CaretakerID *string    `json:"caretakerId"`
	IsActive    *bool      `json:"isActive"`
	Notes       *string    `json:"notes"`
}

type completeRequest struct {
	Notes *string `json:"notes"`
}

type scheduleResponse struct {
	ID          string     `json:"id"`
	AnimalID    string     `json:"animalId"`
	ItemID      string     `json:"item,omitempty"`
	FoodType    string     `json:"foodType,omitempty"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit,omitempty"`
	Frequency   Frequency  `json:"frequency"`
	Time        string     `json:"time,omitempty"`
	CaretakerID string     `json:"caretakerId,omitempty"`
	LastFed     *time.Time `json:"lastFed,omitempty"`
	IsActive    bool       `json:"isActive"`
	IsOverdue   bool       `json:"isOverdue"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// listHandler godoc
// @Summary List feeding schedules
// @Description isOverdue is computed server-side on every read; clients only display it.
// @Tags feeding
// @Produce json
// @Param animalId query string false "Animal id"
// @Param caretakerId query string false "Caretaker id"
// @Param active query bool false "Only active (or inactive) schedules"
// @Success 200 {object} map[string]any
// @Router /api/feeding-schedules [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := ListFilter{
			AnimalID:    q.Get("animalId"),
			CaretakerID: q.Get("caretakerId"),
		}
		if v := q.Get("active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "active must be a boolean")
				return
			}
			f.Active = &b
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			respond.Internal(w, "failed to list feeding schedules", err)
			return
		}

		out := make([]scheduleResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toResponse(v))
		}
		respond.OK(w, http.StatusOK, "feeding schedules fetched", map[string]any{
			"feedingSchedules": out,
			"count":            len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "scheduleID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			return
		}
		respond.OK(w, http.StatusOK, "feeding schedule fetched", map[string]any{"feedingSchedule": toResponse(v)})
	}
}

// createHandler godoc
// @Summary Create a feeding schedule
// @Tags feeding
// @Accept json
// @Produce json
// @Param payload body createRequest true "Schedule fields; time is HH:MM"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/feeding-schedules [post]
func createHandler(svc *Service, animalsSvc *animals.Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		if _, err := animalsSvc.GetByID(r.Context(), req.AnimalID); err != nil {
			respond.Error(w, http.StatusNotFound, "animal not found")
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			AnimalID:    req.AnimalID,
			ItemID:      req.ItemID,
			FoodType:    req.FoodType,
			Quantity:    req.Quantity,
			Unit:        req.Unit,
			Frequency:   req.Frequency,
			Time:        req.Time,
			CaretakerID: req.CaretakerID,
			Notes:       req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "animalId, valid frequency, positive quantity and HH:MM time are required")
				return
			}
			respond.Internal(w, "failed to create feeding schedule", err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionCreate, "feeding-schedules", v.ID, nil, toResponse(v))

		respond.OK(w, http.StatusOK, "feeding schedule created", map[string]any{"feedingSchedule": toResponse(v)})
	}
}

func updateHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "scheduleID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		v, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid feeding schedule fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			default:
				respond.Internal(w, "failed to update feeding schedule", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "feeding-schedules", v.ID, toResponse(old), toResponse(v))

		respond.OK(w, http.StatusOK, "feeding schedule updated", map[string]any{"feedingSchedule": toResponse(v)})
	}
}

// completeHandler godoc
// @Summary Mark a feeding as done
// @Description Stamps lastFed with the current time and clears the overdue state.
// @Tags feeding
// @Accept json
// @Produce json
// @Param scheduleID path string true "Schedule id"
// @Param payload body completeRequest false "{notes?}"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/feeding-schedules/{scheduleID}/complete [patch]
func completeHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "scheduleID")

		var req completeRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respond.Error(w, http.StatusBadRequest, "invalid json")
				return
			}
		}

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			return
		}

		v, err := svc.Complete(r.Context(), id, req.Notes)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "feeding-schedules", v.ID, toResponse(old), toResponse(v))

		respond.OK(w, http.StatusOK, "feeding recorded", map[string]any{"feedingSchedule": toResponse(v)})
	}
}

func deleteHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "scheduleID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "feeding schedule not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionDelete, "feeding-schedules", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "feeding schedule deleted", nil)
	}
}

func toResponse(v View) scheduleResponse {
	return scheduleResponse{
		ID:          v.ID,
		AnimalID:    v.AnimalID,
		ItemID:      v.ItemID,
		FoodType:    v.FoodType,
		Quantity:    v.Quantity,
		Unit:        v.Unit,
		Frequency:   v.Frequency,
		Time:        v.Time,
		CaretakerID: v.CaretakerID,
		LastFed:     v.LastFed,
		IsActive:    v.IsActive,
		IsOverdue:   v.IsOverdue,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
