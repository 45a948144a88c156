package list

import (
	"context"
	"log/slog"
	"sync"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/state"
)

// Fetcher loads one page of rows for the given criteria.
type Fetcher[T any] func(ctx context.Context, criteria *model.SearchCriteria) (*client.PageResponse[T], error)

// Controller drives one paginated list screen: it owns the current page
// position, applies the search form, persists list state between
// invocations and keeps at most one fetch outstanding. It is safe for
// concurrent use.
type Controller[T any] struct {
	name  string
	fetch Fetcher[T]
	form  *SearchForm
	store state.Store

	mu       sync.Mutex
	sorts    []string
	pageNo   int
	perPage  int
	totalRow int
	rows     []T
	cancel   context.CancelFunc
	gen      int
}

// NewController creates a controller for a named list. The name keys the
// persisted state; an empty name disables persistence of search and page
// position but still shares the durable rows-per-page choice.
func NewController[T any](name string, fetch Fetcher[T], form *SearchForm, store state.Store) *Controller[T] {
	return &Controller[T]{
		name:    name,
		fetch:   fetch,
		form:    form,
		store:   store,
		perPage: DefaultPerPage,
	}
}

// Form returns the controller's search form.
func (c *Controller[T]) Form() *SearchForm { return c.form }

// SetSorts sets the sort order applied to every fetch.
func (c *Controller[T]) SetSorts(sorts ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sorts = sorts
}

// Start restores the persisted list state and loads the first page.
func (c *Controller[T]) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.store != nil {
		st := c.store.LoadList(c.name)
		c.form.SetCriteria(st.SearchText, st.Filters)
		c.pageNo = st.PageNo
		if pp := c.store.PerPage(c.name); pp > 0 {
			c.perPage = pp
		}
	}
	c.mu.Unlock()
	return c.load(ctx)
}

// OnSearch applies the form's current values: the page resets to the
// first, the state is persisted and the page is reloaded with the
// rows-per-page unchanged.
func (c *Controller[T]) OnSearch(ctx context.Context) error {
	c.form.Commit()
	searchText, filters := c.form.Criteria()

	c.mu.Lock()
	c.pageNo = 0
	c.persistSearch(searchText, filters)
	c.persistPage()
	c.mu.Unlock()
	return c.load(ctx)
}

// OnPageChange moves to another page and reloads. Negative pages clamp to
// the first.
func (c *Controller[T]) OnPageChange(ctx context.Context, pageNo int) error {
	if pageNo < 0 {
		pageNo = 0
	}
	c.mu.Lock()
	c.pageNo = pageNo
	c.persistPage()
	c.mu.Unlock()
	return c.load(ctx)
}

// SetPerPage changes the rows-per-page, resets to the first page and
// reloads.
func (c *Controller[T]) SetPerPage(ctx context.Context, perPage int) error {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	c.mu.Lock()
	c.perPage = perPage
	c.pageNo = 0
	c.persistPage()
	c.mu.Unlock()
	return c.load(ctx)
}

// Refresh reloads the current page with unchanged criteria.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.load(ctx)
}

// ReplaceItem patches the first row matched by match in place, avoiding a
// round trip after an edit. It reports whether a row matched.
func (c *Controller[T]) ReplaceItem(match func(T) bool, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, row := range c.rows {
		if match(row) {
			c.rows[i] = item
			return true
		}
	}
	return false
}

// Rows returns the rows of the current page.
func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Page returns the derived pagination view of the current position.
func (c *Controller[T]) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CalculatePage(c.pageNo, c.perPage, c.totalRow, PagesToShow)
}

// Close cancels any in-flight fetch.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// load fetches the current page, cancelling any fetch already in flight.
// A fetch superseded while running discards its result.
func (c *Controller[T]) load(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	gen := c.gen
	searchText, filters := c.form.Criteria()
	criteria := &model.SearchCriteria{
		PageNo:     c.pageNo,
		PerPage:    c.perPage,
		SearchText: searchText,
		Filters:    filters,
		Sorts:      c.sorts,
	}
	c.mu.Unlock()

	page, err := c.fetch(ctx, criteria)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer fetch owns the screen now.
		return nil
	}
	if err != nil {
		return err
	}
	c.rows = page.Rows
	c.totalRow = page.TotalRow
	c.pageNo = page.PageNo
	if page.PerPage > 0 {
		c.perPage = page.PerPage
	}
	return nil
}

func (c *Controller[T]) persistSearch(searchText string, filters []model.FilterCriteria) {
	if c.store == nil {
		return
	}
	if err := c.store.SaveSearch(c.name, searchText, filters); err != nil {
		slog.Warn("persisting list search failed", "list", c.name, "error", err)
	}
}

func (c *Controller[T]) persistPage() {
	if c.store == nil {
		return
	}
	if err := c.store.SavePage(c.name, c.pageNo, c.perPage); err != nil {
		slog.Warn("persisting list page failed", "list", c.name, "error", err)
	}
}
