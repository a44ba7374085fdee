package client

import (
	"context"
	"net/http"

	"zoo-ops/internal/domain/stats"
)

func (c *Client) DashboardStats(ctx context.Context) (stats.Dashboard, error) {
	var out struct {
		Stats stats.Dashboard `json:"stats"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/dashboard/stats", c.headers(), nil, &out); err != nil {
		return stats.Dashboard{}, apiError(err)
	}
	return out.Stats, nil
}
