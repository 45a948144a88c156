package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/progress"
)

var _ PayrollClient = (*HTTPClient)(nil)

// HTTPClient implements PayrollClient over the payroll REST API.
type HTTPClient struct {
	baseURL string
	token   string
	httpc   *http.Client
	counter *progress.Counter
}

// NewHTTPClient creates a client for the payroll API at baseURL. The token,
// if non-empty, is sent as a bearer credential. A nil counter disables
// request accounting.
func NewHTTPClient(baseURL, token string, counter *progress.Counter) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		counter: counter,
	}
}

// SetTimeout overrides the per-request timeout.
func (c *HTTPClient) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpc.Timeout = d
	}
}

// Close implements PayrollClient.
func (c *HTTPClient) Close() error { return nil }

// APIError is a structured error returned by the payroll API.
type APIError struct {
	StatusCode int
	Key        string `json:"key"`
	Message    string `json:"message"`
	Trace      string `json:"trace"`
}

func (e *APIError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("api error (status %d, key %s): %s", e.StatusCode, e.Key, e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the
// JSON response into out (if non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.counter != nil {
		c.counter.Add()
		defer c.counter.Done()
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
			if apiErr.Message == "" {
				apiErr.Message = resp.Status
			}
		}
		return apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// pageEnvelope is the wire shape of every list endpoint: a meta block with
// 1-based paging plus the rows.
type pageEnvelope[T any] struct {
	Meta struct {
		CurrentPage int `json:"current_page"`
		PerPage     int `json:"per_page"`
		TotalRow    int `json:"total_row"`
	} `json:"meta"`
	Rows []T `json:"rows"`
}

func (e *pageEnvelope[T]) toPage() *PageResponse[T] {
	page := &PageResponse[T]{
		PerPage:  e.Meta.PerPage,
		TotalRow: e.Meta.TotalRow,
		Rows:     e.Rows,
	}
	// The server counts pages from 1; everything above this layer counts
	// from 0.
	if e.Meta.CurrentPage > 0 {
		page.PageNo = e.Meta.CurrentPage - 1
	}
	return page
}

// criteriaQuery encodes search criteria as list-endpoint query parameters.
// The page number goes over the wire 1-based; filters travel as a JSON
// array, sorts as a comma-separated list.
func criteriaQuery(criteria *model.SearchCriteria) (url.Values, error) {
	q := url.Values{}
	if criteria == nil {
		return q, nil
	}
	q.Set("page", strconv.Itoa(criteria.PageNo+1))
	if criteria.PerPage > 0 {
		q.Set("per-page", strconv.Itoa(criteria.PerPage))
	}
	if criteria.SearchText != "" {
		q.Set("q", criteria.SearchText)
	}
	if len(criteria.Filters) > 0 {
		data, err := json.Marshal(criteria.Filters)
		if err != nil {
			return nil, fmt.Errorf("marshaling filters: %w", err)
		}
		q.Set("filters", string(data))
	}
	if len(criteria.Sorts) > 0 {
		q.Set("sorts", strings.Join(criteria.Sorts, ","))
	}
	return q, nil
}

// effectiveQuery returns query parameters selecting the record version in
// effect at the given date. A zero date selects the current version.
func effectiveQuery(effective model.Date) url.Values {
	q := url.Values{}
	if !effective.IsZero() {
		q.Set("effective", effective.Format(model.DateFormat))
	}
	return q
}

// updateQuery returns the query parameters of an effective-dated update:
// the existing version's effective date (beginning-of-time when the record
// had none) plus the change-insert mode when one was chosen.
func updateQuery(opts *UpdateOptions) url.Values {
	q := url.Values{}
	if opts == nil {
		opts = &UpdateOptions{}
	}
	eff := model.EffectiveParam(opts.Effective)
	q.Set("effective", eff.Format(model.DateFormat))
	if opts.Mode != "" {
		q.Set("mode", string(opts.Mode))
	}
	return q
}

// getPage fetches one page of a list endpoint.
func getPage[T any](ctx context.Context, c *HTTPClient, path string, criteria *model.SearchCriteria) (*PageResponse[T], error) {
	q, err := criteriaQuery(criteria)
	if err != nil {
		return nil, err
	}
	var env pageEnvelope[T]
	if err := c.doJSON(ctx, http.MethodGet, path, q, nil, &env); err != nil {
		return nil, err
	}
	return env.toPage(), nil
}

// getRows fetches an unpaged row list (combo-box projections and the like).
func getRows[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) ([]T, error) {
	var env pageEnvelope[T]
	if err := c.doJSON(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return nil, err
	}
	return env.Rows, nil
}
