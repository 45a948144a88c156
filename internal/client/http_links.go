package client

import (
	"context"
	"net/http"

	"github.com/freshcms/payadm/internal/model"
)

const linksPath = "/api/v1/element-links"

func (c *HTTPClient) ListLinks(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.ElementLink], error) {
	return getPage[model.ElementLink](ctx, c, linksPath, criteria)
}

func (c *HTTPClient) GetLink(ctx context.Context, id string, effective model.Date) (*model.ElementLink, error) {
	var out model.ElementLink
	if err := c.doJSON(ctx, http.MethodGet, linksPath+"/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateLink(ctx context.Context, item *model.ElementLink) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, linksPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateLink(ctx context.Context, id string, item *model.ElementLink, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, linksPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteLink(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, linksPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetLinkValue(ctx context.Context, id string, effective model.Date) (*model.LinkValue, error) {
	var out model.LinkValue
	if err := c.doJSON(ctx, http.MethodGet, linksPath+"/values/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertLinkValue(ctx context.Context, linkID string, item *model.LinkValue) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, linksPath+"/"+linkID+"/values", nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateLinkValue(ctx context.Context, id string, item *model.LinkValue, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, linksPath+"/values/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteLinkValue(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, linksPath+"/values/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
