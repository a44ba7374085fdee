package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"zoo-ops/internal/domain/inventory"
)

type InventoryItem struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Category      inventory.Category    `json:"category"`
	Quantity      int                   `json:"quantity"`
	Unit          string                `json:"unit"`
	MinThreshold  int                   `json:"minThreshold"`
	MaxThreshold  int                   `json:"maxThreshold"`
	Cost          float64               `json:"cost"`
	Supplier      string                `json:"supplier,omitempty"`
	ExpiryDate    *time.Time            `json:"expiryDate,omitempty"`
	LastRestocked *time.Time            `json:"lastRestocked,omitempty"`
	StockStatus   inventory.StockStatus `json:"stockStatus"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// ToDomain converts the wire shape back to the domain type so the pure
// classifiers apply client-side too.
func (it InventoryItem) ToDomain() inventory.Item {
	return inventory.Item{
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
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

type InventoryFilter struct {
	Category string
	LowStock bool
	Expired  bool
}

func (c *Client) ListInventory(ctx context.Context, f InventoryFilter) ([]InventoryItem, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.LowStock {
		q.Set("lowStock", "true")
	}
	if f.Expired {
		q.Set("expired", "true")
	}

	path := "/api/inventory"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out struct {
		InventoryItems []InventoryItem `json:"inventoryItems"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, path, c.headers(), nil, &out); err != nil {
		return nil, apiError(err)
	}
	return out.InventoryItems, nil
}

// Restock adds quantity to an item's stock. Returns the updated item and the
// server's human-readable confirmation.
func (c *Client) Restock(ctx context.Context, id string, quantity int) (InventoryItem, string, error) {
	body := map[string]int{"quantity": quantity}

	var out struct {
		Message       string        `json:"message"`
		InventoryItem InventoryItem `json:"inventoryItem"`
	}
	err := c.http.DoJSON(ctx, http.MethodPut, "/api/inventory/"+url.PathEscape(id)+"/restock", c.headers(), body, &out)
	if err != nil {
		return InventoryItem{}, "", apiError(err)
	}
	return out.InventoryItem, out.Message, nil
}
