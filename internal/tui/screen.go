// Package tui renders the interactive list browser: a paginated table
// with incremental search, an advanced-filter popup and a version
// timeline panel, all backed by the same controllers the one-shot
// commands use.
package tui

import (
	"context"

	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
)

// Screen is one browsable resource, with the typed controller hidden
// behind closures so the browser model stays free of type parameters.
type Screen struct {
	title     string
	columns   []string
	component model.Component
	form      *list.SearchForm

	start      func(context.Context) error
	search     func(context.Context) error
	refresh    func(context.Context) error
	goTo       func(context.Context, int) error
	setPerPage func(context.Context, int) error
	page       func() list.Page
	rows       func() [][]string
	rowID      func(int) string
	reloadAsOf func(context.Context, int, model.Date) error
	close      func()
}

// NewScreen wraps a controller for browsing. render turns one row into
// table cells in column order; id yields the key used for history
// lookups. component may be empty for resources without a timeline.
// asOf re-fetches one record as of a date when a history version is
// picked; nil for resources that are not effective-dated.
func NewScreen[T any](
	title string,
	columns []string,
	component model.Component,
	ctrl *list.Controller[T],
	render func(T) []string,
	id func(T) string,
	asOf func(context.Context, string, model.Date) (T, error),
) *Screen {
	return &Screen{
		title:      title,
		columns:    columns,
		component:  component,
		form:       ctrl.Form(),
		start:      ctrl.Start,
		search:     ctrl.OnSearch,
		refresh:    ctrl.Refresh,
		goTo:       ctrl.OnPageChange,
		setPerPage: ctrl.SetPerPage,
		page:       ctrl.Page,
		rows: func() [][]string {
			items := ctrl.Rows()
			cells := make([][]string, len(items))
			for i, item := range items {
				cells[i] = render(item)
			}
			return cells
		},
		rowID: func(i int) string {
			items := ctrl.Rows()
			if i < 0 || i >= len(items) {
				return ""
			}
			return id(items[i])
		},
		reloadAsOf: func(ctx context.Context, i int, effective model.Date) error {
			if asOf == nil {
				return nil
			}
			items := ctrl.Rows()
			if i < 0 || i >= len(items) {
				return nil
			}
			key := id(items[i])
			item, err := asOf(ctx, key, effective)
			if err != nil {
				return err
			}
			ctrl.ReplaceItem(func(t T) bool { return id(t) == key }, item)
			return nil
		},
		close: ctrl.Close,
	}
}

// Title returns the screen heading.
func (s *Screen) Title() string { return s.title }

// Columns returns the table header cells.
func (s *Screen) Columns() []string { return s.columns }

// Component returns the history component of the rows, "" when the
// resource keeps no timeline.
func (s *Screen) Component() model.Component { return s.component }

// Form returns the screen's search form.
func (s *Screen) Form() *list.SearchForm { return s.form }

// Start restores persisted state and loads the first page.
func (s *Screen) Start(ctx context.Context) error { return s.start(ctx) }

// Search applies the form and reloads from the first page.
func (s *Screen) Search(ctx context.Context) error { return s.search(ctx) }

// Refresh reloads the current page.
func (s *Screen) Refresh(ctx context.Context) error { return s.refresh(ctx) }

// GoTo moves to another page.
func (s *Screen) GoTo(ctx context.Context, pageNo int) error { return s.goTo(ctx, pageNo) }

// SetPerPage changes the rows-per-page and reloads.
func (s *Screen) SetPerPage(ctx context.Context, perPage int) error {
	return s.setPerPage(ctx, perPage)
}

// Page returns the pagination view of the current position.
func (s *Screen) Page() list.Page { return s.page() }

// Rows returns the current page rendered as table cells.
func (s *Screen) Rows() [][]string { return s.rows() }

// RowID returns the history key of the row at index i, "" out of range.
func (s *Screen) RowID(i int) string { return s.rowID(i) }

// ReloadAsOf re-fetches the row at index i as of the given date and
// swaps it into the current page. A no-op on resources that are not
// effective-dated.
func (s *Screen) ReloadAsOf(ctx context.Context, i int, effective model.Date) error {
	return s.reloadAsOf(ctx, i, effective)
}

// Close cancels any fetch in flight.
func (s *Screen) Close() { s.close() }
