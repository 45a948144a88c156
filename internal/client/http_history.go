package client

import (
	"context"
	"net/http"

	"github.com/freshcms/payadm/internal/model"
)

// Histories fetches the effective-dated version timeline of one record.
func (c *HTTPClient) Histories(ctx context.Context, component model.Component, id string) ([]model.HistoryItem, error) {
	if !component.IsValid() {
		return nil, &APIError{StatusCode: http.StatusBadRequest, Message: "unknown component " + string(component)}
	}
	var out []model.HistoryItem
	path := "/api/v1/tracking-history/" + string(component) + "/" + id
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
