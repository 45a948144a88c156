package client

import (
	"context"
	"net/http"

	"github.com/freshcms/payadm/internal/model"
)

const elementsPath = "/api/v1/payroll-elements"

func (c *HTTPClient) ListElements(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollElement], error) {
	return getPage[model.PayrollElement](ctx, c, elementsPath, criteria)
}

// ListElementsCbx returns the combo-box projection of all elements.
// Options may exclude one element (used when picking a retro element so an
// element cannot reference itself) and include input-value names.
func (c *HTTPClient) ListElementsCbx(ctx context.Context, opts *CbxOptions) ([]model.PayrollElementCbx, error) {
	criteria := &model.SearchCriteria{}
	if opts != nil && opts.ExcludeID != "" {
		criteria.Filters = []model.FilterCriteria{{
			Field:    "element_id",
			Operator: model.OpNotIn,
			Value:    []string{opts.ExcludeID},
		}}
	}
	q, err := criteriaQuery(criteria)
	if err != nil {
		return nil, err
	}
	if opts != nil && opts.IncludeValues {
		q.Set("include-values", "1")
	}
	return getRows[model.PayrollElementCbx](ctx, c, elementsPath+"/list-cbx", q)
}

func (c *HTTPClient) GetElement(ctx context.Context, id string, effective model.Date) (*model.PayrollElement, error) {
	var out model.PayrollElement
	if err := c.doJSON(ctx, http.MethodGet, elementsPath+"/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateElement(ctx context.Context, item *model.PayrollElement) (*InsertResponse, error) {
	if err := item.ValidateInsert(); err != nil {
		return nil, err
	}
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, elementsPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateElement(ctx context.Context, id string, item *model.PayrollElement, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, elementsPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteElement(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, elementsPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetInputValue(ctx context.Context, id string, effective model.Date) (*model.InputValue, error) {
	var out model.InputValue
	if err := c.doJSON(ctx, http.MethodGet, elementsPath+"/values/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertInputValue(ctx context.Context, elementID string, item *model.InputValue) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, elementsPath+"/"+elementID+"/values", nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateInputValue(ctx context.Context, id string, item *model.InputValue, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, elementsPath+"/values/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteInputValue(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, elementsPath+"/values/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
