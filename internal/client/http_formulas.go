package client

import (
	"context"
	"net/http"

	"github.com/freshcms/payadm/internal/model"
)

const formulasPath = "/api/v1/payroll-formulas"

func (c *HTTPClient) ListFormulas(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollFormula], error) {
	return getPage[model.PayrollFormula](ctx, c, formulasPath, criteria)
}

func (c *HTTPClient) ListFormulasCbx(ctx context.Context) ([]model.PayrollFormulaCbx, error) {
	return getRows[model.PayrollFormulaCbx](ctx, c, formulasPath+"/list-cbx", nil)
}

func (c *HTTPClient) GetFormula(ctx context.Context, id string, effective model.Date) (*model.PayrollFormula, error) {
	var out model.PayrollFormula
	if err := c.doJSON(ctx, http.MethodGet, formulasPath+"/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateFormula(ctx context.Context, item *model.PayrollFormula) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, formulasPath, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateFormula(ctx context.Context, id string, item *model.PayrollFormula, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, formulasPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteFormula(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, formulasPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetFormulaResult(ctx context.Context, id string, effective model.Date) (*model.FormulaResult, error) {
	var out model.FormulaResult
	if err := c.doJSON(ctx, http.MethodGet, formulasPath+"/results/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertFormulaResult(ctx context.Context, formulaID string, item *model.FormulaResult) (*InsertResponse, error) {
	var out InsertResponse
	if err := c.doJSON(ctx, http.MethodPost, formulasPath+"/"+formulaID+"/results", nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateFormulaResult(ctx context.Context, id string, item *model.FormulaResult, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, formulasPath+"/results/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteFormulaResult(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, formulasPath+"/results/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
