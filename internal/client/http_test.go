package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/progress"
)

// testHandler records the last request and replies with a canned response.
type testHandler struct {
	method string
	path   string
	query  url.Values
	body   []byte

	status   int
	response string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.Query()
	h.body, _ = io.ReadAll(r.Body)
	if h.status == 0 {
		h.status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(h.status)
	if h.response != "" {
		io.WriteString(w, h.response)
	}
}

func newTestClient(t *testing.T, h *testHandler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "test-token", nil)
}

func TestListElementsQuery(t *testing.T) {
	h := &testHandler{response: `{"meta":{"current_page":3,"per_page":10,"total_row":95},"rows":[{"element_id":"e1","element_name":"Basic Salary"}]}`}
	c := newTestClient(t, h)

	criteria := &model.SearchCriteria{
		PageNo:     2,
		PerPage:    10,
		SearchText: "salary",
		Filters: []model.FilterCriteria{
			{Field: "element_code", Operator: model.OpContain, Value: "BAS"},
		},
		Sorts: []string{"element_code", "-effective_start"},
	}
	page, err := c.ListElements(context.Background(), criteria)
	if err != nil {
		t.Fatalf("ListElements: %v", err)
	}

	if h.method != http.MethodGet || h.path != "/api/v1/payroll-elements" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if got := h.query.Get("page"); got != "3" {
		t.Errorf("page = %q, want 3 (1-based)", got)
	}
	if got := h.query.Get("per-page"); got != "10" {
		t.Errorf("per-page = %q", got)
	}
	if got := h.query.Get("q"); got != "salary" {
		t.Errorf("q = %q", got)
	}
	if got := h.query.Get("sorts"); got != "element_code,-effective_start" {
		t.Errorf("sorts = %q", got)
	}

	var filters []model.FilterCriteria
	if err := json.Unmarshal([]byte(h.query.Get("filters")), &filters); err != nil {
		t.Fatalf("filters param not JSON: %v", err)
	}
	if len(filters) != 1 || filters[0].Field != "element_code" || filters[0].Operator != model.OpContain {
		t.Errorf("filters = %+v", filters)
	}

	if page.PageNo != 2 {
		t.Errorf("PageNo = %d, want 2 (0-based)", page.PageNo)
	}
	if page.TotalRow != 95 || page.PerPage != 10 {
		t.Errorf("meta = %+v", page)
	}
	if len(page.Rows) != 1 || page.Rows[0].ElementName != "Basic Salary" {
		t.Errorf("rows = %+v", page.Rows)
	}
}

func TestListEmptyCriteria(t *testing.T) {
	h := &testHandler{response: `{"meta":{"current_page":1,"per_page":10,"total_row":0},"rows":[]}`}
	c := newTestClient(t, h)

	page, err := c.ListGroups(context.Background(), &model.SearchCriteria{PerPage: 10})
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if h.query.Get("page") != "1" {
		t.Errorf("page = %q, want 1", h.query.Get("page"))
	}
	if h.query.Has("q") || h.query.Has("filters") || h.query.Has("sorts") {
		t.Errorf("empty criteria leaked params: %v", h.query)
	}
	if page.PageNo != 0 || len(page.Rows) != 0 {
		t.Errorf("page = %+v", page)
	}
}

func TestUpdateCarriesExistingEffective(t *testing.T) {
	h := &testHandler{response: `{"count":1,"new_history":1}`}
	c := newTestClient(t, h)

	item := &model.PayrollElement{
		ElementName:    "Basic Salary",
		EffectiveStart: model.NewDate(2026, 3, 1),
	}
	resp, err := c.UpdateElement(context.Background(), "e1", item, &UpdateOptions{
		Mode:      model.ModeChangeInsert,
		Effective: model.NewDate(2025, 1, 1), // the version being edited, not the new date
	})
	if err != nil {
		t.Fatalf("UpdateElement: %v", err)
	}

	if h.method != http.MethodPut || h.path != "/api/v1/payroll-elements/e1" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if got := h.query.Get("effective"); got != "2025-01-01" {
		t.Errorf("effective = %q, want existing version date 2025-01-01", got)
	}
	if got := h.query.Get("mode"); got != "change-insert" {
		t.Errorf("mode = %q", got)
	}
	if resp.Count != 1 || !resp.NewHistory.Bool() {
		t.Errorf("resp = %+v", resp)
	}
}

func TestUpdateWithoutHistorySendsBOT(t *testing.T) {
	h := &testHandler{response: `{"count":1}`}
	c := newTestClient(t, h)

	if _, err := c.UpdateGroup(context.Background(), "g1", &model.PayrollGroup{}, nil); err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}
	if got := h.query.Get("effective"); got != "1000-01-01" {
		t.Errorf("effective = %q, want beginning-of-time sentinel", got)
	}
	if h.query.Has("mode") {
		t.Errorf("mode param present when no mode chosen")
	}
}

func TestInsertAndDelete(t *testing.T) {
	h := &testHandler{response: `{"new_id":"42"}`}
	c := newTestClient(t, h)

	ins, err := c.CreateGroup(context.Background(), &model.PayrollGroup{PayGroupName: "Monthly"})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if h.method != http.MethodPost || h.path != "/api/v1/payroll-groups" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if ins.NewID != "42" {
		t.Errorf("NewID = %q", ins.NewID)
	}
	var sent model.PayrollGroup
	if err := json.Unmarshal(h.body, &sent); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if sent.PayGroupName != "Monthly" {
		t.Errorf("sent = %+v", sent)
	}

	h.response = `{"count":1}`
	del, err := c.DeleteGroup(context.Background(), "42")
	if err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if h.method != http.MethodDelete || h.path != "/api/v1/payroll-groups/42" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if del.Count != 1 {
		t.Errorf("Count = %d", del.Count)
	}
}

func TestCreateElementRequiresValues(t *testing.T) {
	h := &testHandler{}
	c := newTestClient(t, h)

	_, err := c.CreateElement(context.Background(), &model.PayrollElement{ElementName: "Basic"})
	if !errors.Is(err, model.ErrNoInputValues) {
		t.Fatalf("err = %v, want ErrNoInputValues", err)
	}
	if h.method != "" {
		t.Errorf("request reached server despite validation failure")
	}
}

func TestAPIErrorEnvelope(t *testing.T) {
	h := &testHandler{
		status:   http.StatusConflict,
		response: `{"key":"duplicate-code","message":"element code already exists","trace":"pay-element:insert"}`,
	}
	c := newTestClient(t, h)

	_, err := c.CreateGroup(context.Background(), &model.PayrollGroup{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T (%v), want *APIError", err, err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Key != "duplicate-code" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if apiErr.Trace != "pay-element:insert" {
		t.Errorf("Trace = %q", apiErr.Trace)
	}
}

func TestAPIErrorPlainBody(t *testing.T) {
	h := &testHandler{status: http.StatusInternalServerError, response: "boom"}
	c := newTestClient(t, h)

	_, err := c.DeleteGroup(context.Background(), "1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != "boom" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestListElementsCbxExclude(t *testing.T) {
	h := &testHandler{response: `{"meta":{"current_page":1,"per_page":0,"total_row":2},"rows":[{"element_id":"e2","element_name":"Overtime"}]}`}
	c := newTestClient(t, h)

	rows, err := c.ListElementsCbx(context.Background(), &CbxOptions{ExcludeID: "e1", IncludeValues: true})
	if err != nil {
		t.Fatalf("ListElementsCbx: %v", err)
	}
	if h.path != "/api/v1/payroll-elements/list-cbx" {
		t.Errorf("path = %s", h.path)
	}
	if h.query.Get("include-values") != "1" {
		t.Errorf("include-values = %q", h.query.Get("include-values"))
	}
	var filters []model.FilterCriteria
	if err := json.Unmarshal([]byte(h.query.Get("filters")), &filters); err != nil {
		t.Fatalf("filters param not JSON: %v", err)
	}
	if len(filters) != 1 || filters[0].Operator != model.OpNotIn {
		t.Errorf("filters = %+v", filters)
	}
	ids, ok := filters[0].Value.([]any)
	if !ok || len(ids) != 1 || ids[0] != "e1" {
		t.Errorf("exclusion value = %#v, want [e1]", filters[0].Value)
	}
	if len(rows) != 1 || rows[0].ElementID != "e2" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestGetWithEffectiveDate(t *testing.T) {
	h := &testHandler{response: `{"element_id":"e1","effective_start":"2025-01-01","effective_end":"9000-12-31"}`}
	c := newTestClient(t, h)

	el, err := c.GetElement(context.Background(), "e1", model.NewDate(2025, 6, 15))
	if err != nil {
		t.Fatalf("GetElement: %v", err)
	}
	if got := h.query.Get("effective"); got != "2025-06-15" {
		t.Errorf("effective = %q", got)
	}
	if !el.EffectiveEnd.IsZero() {
		t.Errorf("end-of-time sentinel decoded as %v, want unset", el.EffectiveEnd)
	}
	if el.EffectiveStart.IsZero() {
		t.Errorf("effective_start not decoded")
	}
}

func TestHistories(t *testing.T) {
	h := &testHandler{response: `[{"effective_start":"2024-01-01","effective_end":"2024-12-31"},{"effective_start":"2025-01-01"}]`}
	c := newTestClient(t, h)

	items, err := c.Histories(context.Background(), model.ComponentPayrollElement, "e1")
	if err != nil {
		t.Fatalf("Histories: %v", err)
	}
	if h.path != "/api/v1/tracking-history/pay-element/e1" {
		t.Errorf("path = %s", h.path)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if model.NoHistory(items) {
		t.Errorf("two versions reported as no history")
	}

	if _, err := c.Histories(context.Background(), model.Component("bogus"), "e1"); err == nil {
		t.Errorf("unknown component accepted")
	}
}

func TestListEntryEmployees(t *testing.T) {
	h := &testHandler{response: `{"meta":{"current_page":1,"per_page":10,"total_row":1},"rows":[{"employee_id":7,"employee_name":"Ada Pay"}],"elements":[{"element_id":"e1","element_name":"Basic Salary"}]}`}
	c := newTestClient(t, h)

	page, err := c.ListEntryEmployees(context.Background(), &model.SearchCriteria{PerPage: 10}, true)
	if err != nil {
		t.Fatalf("ListEntryEmployees: %v", err)
	}
	if h.path != "/api/v1/payroll-entries/employees" {
		t.Errorf("path = %s", h.path)
	}
	if h.query.Get("include-entries") != "1" {
		t.Errorf("include-entries = %q", h.query.Get("include-entries"))
	}
	if len(page.Rows) != 1 || page.Rows[0].EmployeeID != 7 {
		t.Errorf("rows = %+v", page.Rows)
	}
	if len(page.Elements) != 1 || page.Elements[0].ElementID != "e1" {
		t.Errorf("elements = %+v", page.Elements)
	}
}

func TestRequestCounter(t *testing.T) {
	h := &testHandler{response: `{"count":1}`}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	var counter progress.Counter
	c := NewHTTPClient(srv.URL, "", &counter)

	if _, err := c.DeleteGroup(context.Background(), "1"); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if counter.Count() != 0 {
		t.Errorf("count = %d after request completed, want 0", counter.Count())
	}
}

func TestAuthHeader(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		io.WriteString(w, `{"count":1}`)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "sekret", nil)
	if _, err := c.DeleteGroup(context.Background(), "1"); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if auth != "Bearer sekret" {
		t.Errorf("Authorization = %q", auth)
	}
}
