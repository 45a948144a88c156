package client

import (
	"context"
	"net/http"

	"github.com/freshcms/payadm/internal/model"
)

const balancesPath = "/api/v1/payroll-balances"

func (c *HTTPClient) ListBalances(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollBalance], error) {
	return getPage[model.PayrollBalance](ctx, c, balancesPath, criteria)
}

func (c *HTTPClient) GetBalance(ctx context.Context, id string) (*model.PayrollBalance, error) {
	var out model.PayrollBalance
	if err := c.doJSON(ctx, http.MethodGet, balancesPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateBalance(ctx context.Context, item *model.PayrollBalance) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, balancesPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateBalance(ctx context.Context, id string, item *model.PayrollBalance, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, balancesPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteBalance(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, balancesPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetBalanceFeed(ctx context.Context, id string, effective model.Date) (*model.BalanceFeed, error) {
	var out model.BalanceFeed
	if err := c.doJSON(ctx, http.MethodGet, balancesPath+"/feeds/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertBalanceFeed(ctx context.Context, balanceID string, item *model.BalanceFeed) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, balancesPath+"/"+balanceID+"/feeds", nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateBalanceFeed(ctx context.Context, id string, item *model.BalanceFeed, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, balancesPath+"/feeds/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteBalanceFeed(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, balancesPath+"/feeds/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
