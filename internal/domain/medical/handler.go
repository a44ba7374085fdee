package medical

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/audit"
	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"
	"zoo-ops/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service, rec *audit.Service) {
	r.Route("/api/medical-records", func(mr chi.Router) {
		mr.Use(middleware.RequireAuth)
		mr.Get("/", listHandler(svc))
		mr.Get("/{recordID}", getHandler(svc))

		mr.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
			wr.Post("/", createHandler(svc, animalsSvc, rec))
			wr.Put("/{recordID}", updateHandler(svc, rec))
			wr.Delete("/{recordID}", deleteHandler(svc, rec))
		})
	})
}

type createRequest struct {
	AnimalID    string     `json:"animalId"`
	DoctorID    string     `json:"doctorId"`
	Date        string     `json:"date"` // RFC3339 or YYYY-MM-DD; default now
	Type        RecordType `json:"type" enums:"checkup,vaccination,treatment,surgery,emergency"`
	Diagnosis   string     `json:"diagnosis"`
	Treatment   string     `json:"treatment"`
	Medications []string   `json:"medications"`
	Notes       string     `json:"notes"`
	NextCheckup string     `json:"nextCheckup"`
}

type updateRequest struct {
	DoctorID    *string     `json:"doctorId"`
	Date        *string     `json:"date"`
	Type        *RecordType `json:"type"`
	Diagnosis   *string     `json:"diagnosis"`
	Treatment   *string     `json:"treatment"`
	Medications *[]string   `json:"medications"`
	Notes       *string     `json:"notes"`
	NextCheckup *string     `json:"nextCheckup"`
}

type recordResponse struct {
	ID          string     `json:"id"`
	AnimalID    string     `json:"animalId"`
	DoctorID    string     `json:"doctorId"`
	Date        time.Time  `json:"date"`
	Type        RecordType `json:"type"`
	Diagnosis   string     `json:"diagnosis,omitempty"`
	Treatment   string     `json:"treatment,omitempty"`
	Medications []string   `json:"medications"`
	Notes       string     `json:"notes,omitempty"`
	NextCheckup *time.Time `json:"nextCheckup,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// listHandler godoc
// @Summary List medical records
// @Tags medical
// @Produce json
// @Param animalId query string false "Animal id"
// @Param doctorId query string false "Doctor id"
// @Param type query string false "checkup, vaccination, treatment, surgery, emergency"
// @Success 200 {object} map[string]any
// @Router /api/medical-records [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		records, err := svc.List(r.Context(), ListFilter{
			AnimalID: q.Get("animalId"),
			DoctorID: q.Get("doctorId"),
			Type:     RecordType(q.Get("type")),
		})
		if err != nil {
			respond.Internal(w, "failed to list medical records", err)
			return
		}

		out := make([]recordResponse, 0, len(records))
		for _, rec := range records {
			out = append(out, toResponse(rec))
		}
		respond.OK(w, http.StatusOK, "medical records fetched", map[string]any{
			"medicalRecords": out,
			"count":          len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "medical record not found")
			return
		}
		respond.OK(w, http.StatusOK, "medical record fetched", map[string]any{"medicalRecord": toResponse(rec)})
	}
}

// createHandler godoc
// @Summary Create a medical record
// @Description The referenced animal must exist. Checkup-type records also stamp the animal's lastCheckup.
// @Tags medical
// @Accept json
// @Produce json
// @Param payload body createRequest true "Record fields"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/medical-records [post]
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

		date, err := parseDate(req.Date)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
			return
		}
		next, err := parseDate(req.NextCheckup)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "nextCheckup must be YYYY-MM-DD or RFC3339")
			return
		}

		in := CreateInput{
			AnimalID:    req.AnimalID,
			DoctorID:    req.DoctorID,
			Type:        req.Type,
			Diagnosis:   req.Diagnosis,
			Treatment:   req.Treatment,
			Medications: req.Medications,
			Notes:       req.Notes,
			NextCheckup: next,
		}
		if date != nil {
			in.Date = *date
		}

		rec, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "animalId, doctorId and a valid type are required")
				return
			}
			respond.Internal(w, "failed to create medical record", err)
			return
		}

		// checkups keep the animal's lastCheckup current
		if rec.Type == TypeCheckup {
			d := rec.Date
			_, _ = animalsSvc.Update(r.Context(), rec.AnimalID, animals.UpdateInput{LastCheckup: &d})
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionCreate, "medical-records", rec.ID, nil, toResponse(rec))

		respond.OK(w, http.StatusOK, "medical record created", map[string]any{"medicalRecord": toResponse(rec)})
	}
}

func updateHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "recordID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "medical record not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			DoctorID:    req.DoctorID,
			Type:        req.Type,
			Diagnosis:   req.Diagnosis,
			Treatment:   req.Treatment,
			Medications: req.Medications,
			Notes:       req.Notes,
		}
		if req.Date != nil {
			t, err := parseDate(*req.Date)
			if err != nil || t == nil {
				respond.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339")
				return
			}
			in.Date = t
		}
		if req.NextCheckup != nil {
			t, err := parseDate(*req.NextCheckup)
			if err != nil || t == nil {
				respond.Error(w, http.StatusBadRequest, "nextCheckup must be YYYY-MM-DD or RFC3339")
				return
			}
			in.NextCheckup = t
		}

		rec, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid medical record fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "medical record not found")
			default:
				respond.Internal(w, "failed to update medical record", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "medical-records", rec.ID, toResponse(old), toResponse(rec))

		respond.OK(w, http.StatusOK, "medical record updated", map[string]any{"medicalRecord": toResponse(rec)})
	}
}

func deleteHandler(svc *Service, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "recordID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "medical record not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "medical record not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		auditSvc.RecordHTTP(r, claims.UserID, audit.ActionDelete, "medical-records", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "medical record deleted", nil)
	}
}

func toResponse(rec Record) recordResponse {
	meds := rec.Medications
	if meds == nil {
		meds = []string{}
	}
	return recordResponse{
		ID:          rec.ID,
		AnimalID:    rec.AnimalID,
		DoctorID:    rec.DoctorID,
		Date:        rec.Date,
		Type:        rec.Type,
		Diagnosis:   rec.Diagnosis,
		Treatment:   rec.Treatment,
		Medications: meds,
		Notes:       rec.Notes,
		NextCheckup: rec.NextCheckup,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

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
