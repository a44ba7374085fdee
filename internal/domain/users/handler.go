package users

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
	r.Route("/api/users", func(ur chi.Router) {
		ur.Use(middleware.RequireRole(auth.RoleAdmin))
		ur.Get("/", listHandler(svc, ""))
		ur.Get("/{userID}", getHandler(svc))
		ur.Post("/", createHandler(svc, rec))
		ur.Put("/{userID}", updateHandler(svc, rec))
		ur.Delete("/{userID}", deleteHandler(svc, rec))
	})

	// Caretaker directory is readable by any staff member (assignment
	// dropdowns on animal/enclosure forms).
	r.With(middleware.RequireAuth).Get("/api/caretakers", listHandler(svc, auth.RoleCaretaker))
}

type createRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role" enums:"admin,doctor,caretaker"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

type updateRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listHandler doubles as /api/users (admin, all roles) and /api/caretakers
// (any staff, fixed role filter).
func listHandler(svc *Service, fixedRole auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := fixedRole
		if role == "" {
			role = auth.ParseRole(r.URL.Query().Get("role"))
		}

		items, err := svc.List(r.Context(), role)
		if err != nil {
			respond.Internal(w, "failed to list users", err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toResponse(u))
		}

		field := "users"
		if fixedRole == auth.RoleCaretaker {
			field = "caretakers"
		}
		respond.OK(w, http.StatusOK, field+" fetched", map[string]any{
			field:   out,
			"count": len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		respond.OK(w, http.StatusOK, "user fetched", map[string]any{"user": toResponse(u)})
	}
}

// createHandler godoc
// @Summary Create a staff user
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createRequest true "User fields; role is admin, doctor or caretaker"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/users [post]
func createHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "name, email and a valid role are required")
				return
			}
			respond.Internal(w, "failed to create user", err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionCreate, "users", u.ID, nil, toResponse(u))

		respond.OK(w, http.StatusOK, "user created", map[string]any{"user": toResponse(u)})
	}
}

func updateHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "userID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid user fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "user not found")
			default:
				respond.Internal(w, "failed to update user", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "users", u.ID, toResponse(old), toResponse(u))

		respond.OK(w, http.StatusOK, "user updated", map[string]any{"user": toResponse(u)})
	}
}

func deleteHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "userID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionDelete, "users", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "user deleted", nil)
	}
}

func toResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		Specialty: u.Specialty,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
