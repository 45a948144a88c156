// Package client provides a transport-agnostic interface for the payroll
// administration API and an HTTP/JSON implementation that talks to its REST
// endpoints.
package client

import (
	"context"

	"github.com/freshcms/payadm/internal/model"
)

// PayrollClient is the interface every payadm command uses to talk to the
// payroll backend. It is implemented by HTTPClient.
type PayrollClient interface {
	// Element classifications
	ListClassifications(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.ElementClassification], error)
	ListClassificationsCbx(ctx context.Context) ([]model.ElementClassificationCbx, error)
	GetClassification(ctx context.Context, id string) (*model.ElementClassification, error)
	CreateClassification(ctx context.Context, item *model.ElementClassification) (*InsertResponse, error)
	UpdateClassification(ctx context.Context, id string, item *model.ElementClassification, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteClassification(ctx context.Context, id string) (*DeleteResponse, error)

	// Payroll groups
	ListGroups(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollGroup], error)
	ListGroupsCbx(ctx context.Context) ([]model.PayrollGroupCbx, error)
	GetGroup(ctx context.Context, id string, effective model.Date) (*model.PayrollGroup, error)
	CreateGroup(ctx context.Context, item *model.PayrollGroup) (*InsertResponse, error)
	UpdateGroup(ctx context.Context, id string, item *model.PayrollGroup, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteGroup(ctx context.Context, id string) (*DeleteResponse, error)

	// Salary bases
	ListSalaryBases(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.SalaryBasis], error)
	GetSalaryBasis(ctx context.Context, id string) (*model.SalaryBasis, error)
	CreateSalaryBasis(ctx context.Context, item *model.SalaryBasis) (*InsertResponse, error)
	UpdateSalaryBasis(ctx context.Context, id string, item *model.SalaryBasis, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteSalaryBasis(ctx context.Context, id string) (*DeleteResponse, error)

	// Payroll elements and their input values
	ListElements(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollElement], error)
	ListElementsCbx(ctx context.Context, opts *CbxOptions) ([]model.PayrollElementCbx, error)
	GetElement(ctx context.Context, id string, effective model.Date) (*model.PayrollElement, error)
	CreateElement(ctx context.Context, item *model.PayrollElement) (*InsertResponse, error)
	UpdateElement(ctx context.Context, id string, item *model.PayrollElement, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteElement(ctx context.Context, id string) (*DeleteResponse, error)
	GetInputValue(ctx context.Context, id string, effective model.Date) (*model.InputValue, error)
	InsertInputValue(ctx context.Context, elementID string, item *model.InputValue) (*InsertResponse, error)
	UpdateInputValue(ctx context.Context, id string, item *model.InputValue, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteInputValue(ctx context.Context, id string) (*DeleteResponse, error)

	// Payroll formulas and their results
	ListFormulas(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollFormula], error)
	ListFormulasCbx(ctx context.Context) ([]model.PayrollFormulaCbx, error)
	GetFormula(ctx context.Context, id string, effective model.Date) (*model.PayrollFormula, error)
	CreateFormula(ctx context.Context, item *model.PayrollFormula) (*InsertResponse, error)
	UpdateFormula(ctx context.Context, id string, item *model.PayrollFormula, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteFormula(ctx context.Context, id string) (*DeleteResponse, error)
	GetFormulaResult(ctx context.Context, id string, effective model.Date) (*model.FormulaResult, error)
	InsertFormulaResult(ctx context.Context, formulaID string, item *model.FormulaResult) (*InsertResponse, error)
	UpdateFormulaResult(ctx context.Context, id string, item *model.FormulaResult, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteFormulaResult(ctx context.Context, id string) (*DeleteResponse, error)

	// Payroll balances and their feeds
	ListBalances(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollBalance], error)
	GetBalance(ctx context.Context, id string) (*model.PayrollBalance, error)
	CreateBalance(ctx context.Context, item *model.PayrollBalance) (*InsertResponse, error)
	UpdateBalance(ctx context.Context, id string, item *model.PayrollBalance, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteBalance(ctx context.Context, id string) (*DeleteResponse, error)
	GetBalanceFeed(ctx context.Context, id string, effective model.Date) (*model.BalanceFeed, error)
	InsertBalanceFeed(ctx context.Context, balanceID string, item *model.BalanceFeed) (*InsertResponse, error)
	UpdateBalanceFeed(ctx context.Context, id string, item *model.BalanceFeed, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteBalanceFeed(ctx context.Context, id string) (*DeleteResponse, error)

	// Element links and their values
	ListLinks(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.ElementLink], error)
	GetLink(ctx context.Context, id string, effective model.Date) (*model.ElementLink, error)
	CreateLink(ctx context.Context, item *model.ElementLink) (*InsertResponse, error)
	UpdateLink(ctx context.Context, id string, item *model.ElementLink, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteLink(ctx context.Context, id string) (*DeleteResponse, error)
	GetLinkValue(ctx context.Context, id string, effective model.Date) (*model.LinkValue, error)
	InsertLinkValue(ctx context.Context, linkID string, item *model.LinkValue) (*InsertResponse, error)
	UpdateLinkValue(ctx context.Context, id string, item *model.LinkValue, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteLinkValue(ctx context.Context, id string) (*DeleteResponse, error)

	// Payroll entries (per employee)
	ListEntryEmployees(ctx context.Context, criteria *model.SearchCriteria, includeEntries bool) (*PerEntryPageResponse, error)
	GetEntryEmployee(ctx context.Context, employeeID int, effective model.Date) (*PerEntryResponse, error)
	GetEntries(ctx context.Context, employeeID int, effective model.Date) ([]model.PayrollEntry, error)
	GetEntry(ctx context.Context, id string, effective model.Date) (*model.PayrollEntry, error)
	InsertEntry(ctx context.Context, employeeID int, item *model.PayrollEntry) (*InsertResponse, error)
	UpdateEntry(ctx context.Context, id string, item *model.PayrollEntry, opts *UpdateOptions) (*UpdateResponse, error)
	DeleteEntry(ctx context.Context, id string) (*DeleteResponse, error)
	GetEntryValue(ctx context.Context, id string, effective model.Date) (*model.PayrollEntry, error)
	UpdateEntryValue(ctx context.Context, id string, item *model.PayrollEntry, opts *UpdateOptions) (*UpdateResponse, error)

	// Payroll processes
	ListProcesses(ctx context.Context, criteria *model.SearchCriteria) (*PageResponse[model.PayrollProcess], error)
	ListNewProcessEmployees(ctx context.Context, criteria *model.SearchCriteria) (*PerEntryPageResponse, error)

	// Tracking history
	Histories(ctx context.Context, component model.Component, id string) ([]model.HistoryItem, error)

	// Lifecycle
	Close() error
}

// PageResponse is one page of a list endpoint, with PageNo converted to
// 0-based.
type PageResponse[T any] struct {
	PageNo   int
	PerPage  int
	TotalRow int
	Rows     []T
}

// PerEntryPageResponse is the employee page of the payroll-entry screens,
// which additionally carries the element projections used to build entry
// forms.
type PerEntryPageResponse struct {
	PageResponse[model.PayrollPerEntry]
	Elements []model.PayrollElementCbx
}

// PerEntryResponse is a single employee with the entries in effect.
type PerEntryResponse struct {
	Employee *model.PayrollPerEntry `json:"employee,omitempty"`
	Entries  []model.PayrollEntry   `json:"entries,omitempty"`
}

// InsertResponse reports the server-assigned ID of an inserted record.
type InsertResponse struct {
	NewID string `json:"new_id"`
}

// UpdateResponse reports the affected row count; NewHistory is set when the
// update created a new effective-dated version.
type UpdateResponse struct {
	Count      int        `json:"count"`
	NewHistory model.Flag `json:"new_history,omitempty"`
}

// DeleteResponse reports the affected row count.
type DeleteResponse struct {
	Count int `json:"count"`
}

// UpdateOptions steer an effective-dated update. Effective is the version
// selector (the record's existing effective start); when zero the
// beginning-of-time sentinel is sent so the update covers the whole
// timeline rather than only future rows. Mode is set when the user chose
// change-insert over correction.
type UpdateOptions struct {
	Mode      model.ChangeInsertMode
	Effective model.Date
}

// CbxOptions narrow a combo-box projection list.
type CbxOptions struct {
	ExcludeID     string
	IncludeValues bool
}
