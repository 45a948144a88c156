package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/freshcms/payadm/internal/model"
)

const (
	entriesPath   = "/api/v1/payroll-entries"
	processesPath = "/api/v1/payroll-processes"
)

// perEntryEnvelope is the employee-page wire shape. On top of the standard
// paging envelope it carries the element projections the entry forms need.
type perEntryEnvelope struct {
	pageEnvelope[model.PayrollPerEntry]
	Elements []model.PayrollElementCbx `json:"elements"`
}

func (e *perEntryEnvelope) toPage() *PerEntryPageResponse {
	return &PerEntryPageResponse{
		PageResponse: *e.pageEnvelope.toPage(),
		Elements:     e.Elements,
	}
}

// ListEntryEmployees pages through the employees of the entry screen. With
// includeEntries set, each row carries the entries in effect.
func (c *HTTPClient) ListEntryEmployees(ctx context.Context, criteria *model.SearchCriteria, includeEntries bool) (*PerEntryPageResponse, error) {
	q, err := criteriaQuery(criteria)
	if err != nil {
		return nil, err
	}
	if includeEntries {
		q.Set("include-entries", "1")
	}
	var env perEntryEnvelope
	if err := c.doJSON(ctx, http.MethodGet, entriesPath+"/employees", q, nil, &env); err != nil {
		return nil, err
	}
	return env.toPage(), nil
}

func (c *HTTPClient) GetEntryEmployee(ctx context.Context, employeeID int, effective model.Date) (*PerEntryResponse, error) {
	var out PerEntryResponse
	path := entriesPath + "/employees/" + strconv.Itoa(employeeID)
	if err := c.doJSON(ctx, http.MethodGet, path, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetEntries(ctx context.Context, employeeID int, effective model.Date) ([]model.PayrollEntry, error) {
	path := entriesPath + "/employees/" + strconv.Itoa(employeeID) + "/entries"
	return getRows[model.PayrollEntry](ctx, c, path, effectiveQuery(effective))
}

func (c *HTTPClient) GetEntry(ctx context.Context, id string, effective model.Date) (*model.PayrollEntry, error) {
	var out model.PayrollEntry
	if err := c.doJSON(ctx, http.MethodGet, entriesPath+"/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) InsertEntry(ctx context.Context, employeeID int, item *model.PayrollEntry) (*InsertResponse, error) {
	var out InsertResponse
	path := entriesPath + "/employees/" + strconv.Itoa(employeeID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id string, item *model.PayrollEntry, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, entriesPath+"/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, entriesPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetEntryValue(ctx context.Context, id string, effective model.Date) (*model.PayrollEntry, error) {
	var out model.PayrollEntry
	if err := c.doJSON(ctx, http.MethodGet, entriesPath+"/values/"+id, effectiveQuery(effective), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEntryValue(ctx context.Context, id string, item *model.PayrollEntry, opts *UpdateOptions) (*UpdateResponse, error) {
	var out UpdateResponse
	if err := c.doJSON(ctx, http.MethodPut, entriesPath+"/values/"+id, updateQuery(opts), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListProcesses(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollProcess], error) {
	return getPage[model.PayrollProcess](ctx, c, processesPath, criteria)
}

// ListNewProcessEmployees pages through the employees eligible for a new
// payroll run.
func (c *HTTPClient) ListNewProcessEmployees(ctx context.Context, criteria *model.SearchCriteria) (*PerEntryPageResponse, error) {
	q, err := criteriaQuery(criteria)
	if err != nil {
		return nil, err
	}
	var env perEntryEnvelope
	if err := c.doJSON(ctx, http.MethodGet, processesPath+"/new-process", q, nil, &env); err != nil {
		return nil, err
	}
	return env.toPage(), nil
}
