package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"zoo-ops/internal/domain/audit"
	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/respond"
	"zoo-ops/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rec *audit.Service) {
	r.Route("/api/inventory", func(ir chi.Router) {
		ir.Use(middleware.RequireAuth)
		ir.Get("/", listHandler(svc))
		ir.Get("/{itemID}", getHandler(svc))

		ir.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleCaretaker))
			wr.Post("/", createHandler(svc, rec))
			wr.Put("/{itemID}", updateHandler(svc, rec))
			wr.Put("/{itemID}/restock", restockHandler(svc, rec))
			wr.Delete("/{itemID}", deleteHandler(svc, rec))
		})
	})
}

type createRequest struct {
	Name         string   `json:"name"`
	Category     Category `json:"category" enums:"food,medicine,supplies,equipment"`
	Quantity     int      `json:"quantity"`
	Unit         string   `json:"unit"`
	MinThreshold int      `json:"minThreshold"`
	MaxThreshold int      `json:"maxThreshold"`
	Cost         float64  `json:"cost"`
	Supplier     string   `json:"supplier"`
	ExpiryDate   string   `json:"expiryDate"` // YYYY-MM-DD or RFC3339
}

type updateRequest struct {
	Name         *string   `json:"name"`
	Category     *Category `json:"category"`
	Quantity     *int      `json:"quantity"`
	Unit         *string   `json:"unit"`
	MinThreshold *int      `json:"minThreshold"`
	MaxThreshold *int      `json:"maxThreshold"`
	Cost         *float64  `json:"cost"`
	Supplier     *string   `json:"supplier"`
	ExpiryDate   *string   `json:"expiryDate"`
}

type restockRequest struct {
	Quantity *int `json:"quantity"`
}

type itemResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      Category    `json:"category"`
	Quantity      int         `json:"quantity"`
	Unit          string      `json:"unit"`
	MinThreshold  int         `json:"minThreshold"`
	MaxThreshold  int         `json:"maxThreshold"`
	Cost          float64     `json:"cost"`
	Supplier      string      `json:"supplier,omitempty"`
	ExpiryDate    *time.Time  `json:"expiryDate,omitempty"`
	LastRestocked *time.Time  `json:"lastRestocked,omitempty"`
	StockStatus   StockStatus `json:"stockStatus"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// listHandler godoc
// @Summary List inventory items
// @Description Filterable by category and the derived lowStock / expired booleans.
// @Tags inventory
// @Produce json
// @Param category query string false "food, medicine, supplies, equipment"
// @Param lowStock query bool false "Only items at or below their minimum threshold"
// @Param expired query bool false "Only items past their expiry date"
// @Success 200 {object} map[string]any
// @Router /api/inventory [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := ListFilter{Category: Category(q.Get("category"))}
		if v := q.Get("lowStock"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "lowStock must be a boolean")
				return
			}
			f.LowStock = &b
		}
		if v := q.Get("expired"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "expired must be a boolean")
				return
			}
			f.Expired = &b
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			respond.Internal(w, "failed to list inventory", err)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toResponse(it))
		}
		respond.OK(w, http.StatusOK, "inventory items fetched", map[string]any{
			"inventoryItems": out,
			"count":          len(out),
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, err := svc.GetByID(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			respond.Error(w, http.StatusNotFound, "inventory item not found")
			return
		}
		respond.OK(w, http.StatusOK, "inventory item fetched", map[string]any{"inventoryItem": toResponse(it)})
	}
}

// createHandler godoc
// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param payload body createRequest true "Item fields; server assigns the id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/inventory [post]
func createHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		expiry, err := parseDate(req.ExpiryDate)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "expiryDate must be YYYY-MM-DD or RFC3339")
			return
		}

		it, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Category:     req.Category,
			Quantity:     req.Quantity,
			Unit:         req.Unit,
			MinThreshold: req.MinThreshold,
			MaxThreshold: req.MaxThreshold,
			Cost:         req.Cost,
			Supplier:     req.Supplier,
			ExpiryDate:   expiry,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "name, valid category and non-negative quantity/cost are required; minThreshold must be below maxThreshold")
				return
			}
			respond.Internal(w, "failed to create inventory item", err)
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionCreate, "inventory", it.ID, nil, toResponse(it))

		respond.OK(w, http.StatusOK, "inventory item created", map[string]any{"inventoryItem": toResponse(it)})
	}
}

func updateHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "itemID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "inventory item not found")
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			Name:         req.Name,
			Category:     req.Category,
			Quantity:     req.Quantity,
			Unit:         req.Unit,
			MinThreshold: req.MinThreshold,
			MaxThreshold: req.MaxThreshold,
			Cost:         req.Cost,
			Supplier:     req.Supplier,
		}
		if req.ExpiryDate != nil {
			t, err := parseDate(*req.ExpiryDate)
			if err != nil || t == nil {
				respond.Error(w, http.StatusBadRequest, "expiryDate must be YYYY-MM-DD or RFC3339")
				return
			}
			in.ExpiryDate = t
		}

		it, err := svc.Update(r.Context(), id, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				respond.Error(w, http.StatusBadRequest, "invalid inventory fields")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "inventory item not found")
			default:
				respond.Internal(w, "failed to update inventory item", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "inventory", it.ID, toResponse(old), toResponse(it))

		respond.OK(w, http.StatusOK, "inventory item updated", map[string]any{"inventoryItem": toResponse(it)})
	}
}

// restockHandler godoc
// @Summary Restock an inventory item
// @Description Adds quantity to the current stock and stamps lastRestocked. Quantity must be positive.
// @Tags inventory
// @Accept json
// @Produce json
// @Param itemID path string true "Item id"
// @Param payload body restockRequest true "{quantity}"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/inventory/{itemID}/restock [put]
func restockHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "itemID")

		var req restockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Quantity == nil {
			respond.Error(w, http.StatusBadRequest, "quantity is required")
			return
		}

		old, _ := svc.GetByID(r.Context(), id)

		it, msg, err := svc.Restock(r.Context(), id, *req.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidQuantity):
				respond.Error(w, http.StatusBadRequest, "quantity must be a positive number")
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "inventory item not found")
			default:
				respond.Internal(w, "failed to restock inventory item", err)
			}
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionUpdate, "inventory", it.ID, toResponse(old), toResponse(it))

		respond.OK(w, http.StatusOK, msg, map[string]any{"inventoryItem": toResponse(it)})
	}
}

func deleteHandler(svc *Service, rec *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "itemID")

		old, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, http.StatusNotFound, "inventory item not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, http.StatusNotFound, "inventory item not found")
			return
		}

		claims, _ := middleware.GetClaims(r.Context())
		rec.RecordHTTP(r, claims.UserID, audit.ActionDelete, "inventory", id, toResponse(old), nil)

		respond.OK(w, http.StatusOK, "inventory item deleted", nil)
	}
}

func toResponse(it Item) itemResponse {
	return itemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Quantity:      it.Quantity,
		Unit:          it.Unit,
		MinThreshold:  it.MinThreshold,
		MaxThreshold:  it.MaxThreshold,
		Cost:          it.Cost,
		Supplier:      it.Supplier,
		ExpiryDate:    it.ExpiryDate,
		LastRestocked: it.LastRestocked,
		StockStatus:   Classify(it),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
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
