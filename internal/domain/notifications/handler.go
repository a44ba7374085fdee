package notifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/notifications", func(nr chi.Router) {
		nr.Use(middleware.RequireAuth)
		nr.Get("/", listHandler(svc))
		nr.Get("/unread-count", unreadCountHandler(svc))
		nr.Put("/mark-all-read", markAllReadHandler(svc))
		nr.Put("/{notificationID}/read", markReadHandler(svc))
		nr.Get("/{notificationID}", getHandler(svc))
		nr.Post("/", createHandler(svc))
		nr.Put("/{notificationID}", updateHandler(svc))
		nr.Delete("/{notificationID}", deleteHandler(svc))
	})
}

type createRequest struct {
	Type      Type     `json:"type" enums:"low_inventory,medical_checkup,feeding_due,alert,health_alert,maintenance,general,system"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Priority  Priority `json:"priority" enums:"low,medium,high,critical"`
	UserID    string   `json:"userId"`
	RelatedID string   `json:"relatedId"`
}

type updateRequest struct {
	Type      *Type     `json:"type"`
	Title     *string   `json:"title"`
	Message   *string   `json:"message"`
	Priority  *Priority `json:"priority"`
	Read      *bool     `json:"read"`
	RelatedID *string   `json:"relatedId"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  Priority  `json:"priority"`
	Read      bool      `json:"read"`
	UserID    string    `json:"userId,omitempty"`
	RelatedID string    `json:"relatedId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listHandler godoc
// @Summary List notifications visible to the caller
// @Description Returns targeted notifications plus broadcasts, newest first.
// @Tags notifications
// @Produce json
// @Param type query string false "Notification type"
// @Param read query bool false "Read state"
// @Success 200 {object} map[string]any
// @Router /api/notifications [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		q := r.URL.Query()
		f := ListFilter{
			UserID: claims.UserID,
			Type:   Type(q.Get("type")),
		}
		if v := q.Get("read"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "read must be a boolean")
				return
			}
			f.Read = &b
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			respond.Internal(w, "failed to list notifications", err)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, toResponse(n))
		}
		respond.OK(w, http.StatusOK, "notifications fetched", map[string]any{
			"notifications": out,
			"count":         len(out),
		})
	}
}

func unreadCountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		n, err := svc.UnreadCount(r.Context(), claims.UserID)
		if err != nil {
			respond.Internal(w, "failed to count unread notifications", err)
			return
		}
		respond.OK(w, http.StatusOK, "unread count fetched", map[string]any{"unreadCount": n})
	}
}

func markAllReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		n, err := svc.MarkAllRead(r.Context(), claims.UserID)
		if err != nil {
			respond.Internal(w, "failed to mark notifications read", err)
			return
		}
		respond.OK(w, http.StatusOK, "all notifications marked read", map[string]any{"updated": n})
	}
}

func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.MarkRead(r.Context(), chi.URLParam(r, "notificationID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "notification not found")
			return
		}
		respond.OK(w, http.StatusOK, "notification marked read", map[string]any{"notification": toResponse(n)})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.GetByID(r.Context(), chi.URLParam(r, "notificationID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "notification not found")
			return
		}
		respond.OK(w, http.StatusOK, "notification fetched", map[string]any{"notification": toResponse(n)})
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		n, err := svc.Update(r.Context(), chi.URLParam(r, "notificationID"), UpdateInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid notification fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "notification not found")
			default:
				respond.Internal(w, "failed to update notification", err)
			}
			return
		}
		respond.OK(w, http.StatusOK, "notification updated", map[string]any{"notification": toResponse(n)})
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		n, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "title and valid type/priority are required")
				return
			}
			respond.Internal(w, "failed to create notification", err)
			return
		}
		respond.OK(w, http.StatusOK, "notification created", map[string]any{"notification": toResponse(n)})
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "notificationID")); err != nil {
			respond.Error(w, http.StatusNotFound, "notification not found")
			return
		}
		respond.OK(w, http.StatusOK, "notification deleted", nil)
	}
}

func toResponse(n Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Priority:  n.Priority,
		Read:      n.Read,
		UserID:    n.UserID,
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
