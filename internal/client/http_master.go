package client

import (
	"context"
	"net/http"

	"github.com/freshcms/payadm/internal/model"
)

const (
	classificationsPath = "/api/v1/element-classifications"
	groupsPath          = "/api/v1/payroll-groups"
	salaryBasesPath     = "/api/v1/salary-bases"
)

func (c *HTTPClient) ListClassifications(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.ElementClassification], error) {
	return getPage[model.ElementClassification](ctx, c, classificationsPath, criteria)
}

func (c *HTTPClient) ListClassificationsCbx(ctx context.Context) ([]model.ElementClassificationCbx, error) {
	return getRows[model.ElementClassificationCbx](ctx, c, classificationsPath+"/list-cbx", nil)
}

func (c *HTTPClient) GetClassification(ctx context.Context, id string) (*model.ElementClassification, error) {
	var out model.ElementClassification
	if err := c.doJSON(ctx, http.MethodGet, classificationsPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateClassification(ctx context.Context, item *model.ElementClassification) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, classificationsPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateClassification(ctx context.Context, id string, item *model.ElementClassification, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, classificationsPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteClassification(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, classificationsPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListGroups(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollGroup], error) {
	return getPage[model.PayrollGroup](ctx, c, groupsPath, criteria)
}

func (c *HTTPClient) ListGroupsCbx(ctx context.Context) ([]model.PayrollGroupCbx, error) {
	return getRows[model.PayrollGroupCbx](ctx, c, groupsPath+"/list-cbx", nil)
}

func (c *HTTPClient) GetGroup(ctx context.Context, id string, effective model.Date) (*model.PayrollGroup, error) {
	var out model.PayrollGroup
	if err := c.doJSON(ctx, http.MethodGet, groupsPath+"/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, item *model.PayrollGroup) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, groupsPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateGroup(ctx context.Context, id string, item *model.PayrollGroup, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, groupsPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteGroup(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, groupsPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListSalaryBases(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.SalaryBasis], error) {
	return getPage[model.SalaryBasis](ctx, c, salaryBasesPath, criteria)
}

func (c *HTTPClient) GetSalaryBasis(ctx context.Context, id string) (*model.SalaryBasis, error) {
	var out model.SalaryBasis
	if err := c.doJSON(ctx, http.MethodGet, salaryBasesPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateSalaryBasis(ctx context.Context, item *model.SalaryBasis) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, salaryBasesPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSalaryBasis(ctx context.Context, id string, item *model.SalaryBasis, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, salaryBasesPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteSalaryBasis(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, salaryBasesPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
