package list

import (
	"fmt"

	"github.com/freshcms/payadm/internal/model"
)

// SearchKey is the reserved field name carrying the free-text search. It
// never appears in the filter list and never counts as a filter.
const SearchKey = "__search"

// SearchForm holds the filter values of one list screen. Values are edited
// freely and turned into wire criteria on demand; the committed baseline
// remembers what was last applied so the filter badge reflects applied
// filters, not half-typed ones.
type SearchForm struct {
	options   []model.SearchOption
	values    map[string]any
	ops       map[string]model.Operator
	committed map[string]any
}

// NewSearchForm creates a form over the given filterable fields. A field
// named SearchKey is rejected.
func NewSearchForm(options ...model.SearchOption) (*SearchForm, error) {
	for _, opt := range options {
		if opt.Name == SearchKey {
			return nil, fmt.Errorf("field name %q is reserved", SearchKey)
		}
	}
	return &SearchForm{
		options:   options,
		values:    map[string]any{},
		ops:       map[string]model.Operator{},
		committed: map[string]any{},
	}, nil
}

// Options returns the form's field configuration.
func (f *SearchForm) Options() []model.SearchOption { return f.options }

// Option looks up one field by name.
func (f *SearchForm) Option(name string) (model.SearchOption, bool) {
	for _, opt := range f.options {
		if opt.Name == name {
			return opt, true
		}
	}
	return model.SearchOption{}, false
}

// SetSearch sets the free-text search.
func (f *SearchForm) SetSearch(text string) {
	if text == "" {
		delete(f.values, SearchKey)
		return
	}
	f.values[SearchKey] = text
}

// Search returns the free-text search.
func (f *SearchForm) Search() string {
	s, _ := f.values[SearchKey].(string)
	return s
}

// SetValue sets a filter field's value. Unknown fields are an error; empty
// values clear the field.
func (f *SearchForm) SetValue(name string, value any) error {
	if _, ok := f.Option(name); !ok {
		return fmt.Errorf("unknown filter field %q", name)
	}
	if emptyValue(value) {
		delete(f.values, name)
		return nil
	}
	f.values[name] = value
	return nil
}

// Value returns a filter field's current value, nil when unset.
func (f *SearchForm) Value(name string) any { return f.values[name] }

// SetOperatorKey sets a field's operator from its short key. Keys outside
// the field's allowed set fall back to the field default.
func (f *SearchForm) SetOperatorKey(name, key string) error {
	opt, ok := f.Option(name)
	if !ok {
		return fmt.Errorf("unknown filter field %q", name)
	}
	op := model.DefaultOperator(opt)
	for _, allowed := range model.AllowedOperatorKeys(opt) {
		if key == allowed {
			op = model.OperatorForKey(opt, key)
			break
		}
	}
	f.ops[name] = op
	return nil
}

// Operator returns the operator in effect for a field.
func (f *SearchForm) Operator(name string) model.Operator {
	if op, ok := f.ops[name]; ok {
		return op
	}
	opt, _ := f.Option(name)
	return model.DefaultOperator(opt)
}

// Criteria builds the wire criteria from the current values: the search
// text plus one filter per non-empty field, in field order.
func (f *SearchForm) Criteria() (string, []model.FilterCriteria) {
	var filters []model.FilterCriteria
	for _, opt := range f.options {
		v, ok := f.values[opt.Name]
		if !ok {
			continue
		}
		filters = append(filters, model.FilterCriteria{
			Field:    opt.Name,
			Operator: f.Operator(opt.Name),
			Value:    v,
		})
	}
	return f.Search(), filters
}

// SetCriteria restores the form from persisted criteria and commits it.
// Filters on unknown fields are dropped.
func (f *SearchForm) SetCriteria(searchText string, filters []model.FilterCriteria) {
	f.values = map[string]any{}
	f.ops = map[string]model.Operator{}
	f.SetSearch(searchText)
	for _, fc := range filters {
		if _, ok := f.Option(fc.Field); !ok {
			continue
		}
		if emptyValue(fc.Value) {
			continue
		}
		f.values[fc.Field] = fc.Value
		if fc.Operator != "" {
			f.ops[fc.Field] = fc.Operator
		}
	}
	f.Commit()
}

// Commit snapshots the current filter values as the applied baseline.
func (f *SearchForm) Commit() {
	f.committed = map[string]any{}
	for name, v := range f.values {
		if name == SearchKey {
			continue
		}
		f.committed[name] = v
	}
}

// FilterCount returns the number of applied filters. The free-text search
// never counts.
func (f *SearchForm) FilterCount() int { return len(f.committed) }

// Reset clears all filter values and operators, leaving the free-text
// search untouched.
func (f *SearchForm) Reset() {
	search := f.Search()
	f.values = map[string]any{}
	f.ops = map[string]model.Operator{}
	f.SetSearch(search)
}

// snapshot captures the editable state for a cancellable popup session.
type snapshot struct {
	values map[string]any
	ops    map[string]model.Operator
}

// Snapshot captures the current values so a popup can be cancelled.
func (f *SearchForm) Snapshot() snapshot {
	s := snapshot{values: map[string]any{}, ops: map[string]model.Operator{}}
	for k, v := range f.values {
		s.values[k] = v
	}
	for k, v := range f.ops {
		s.ops[k] = v
	}
	return s
}

// Restore rolls the values back to a snapshot, discarding edits made since.
func (f *SearchForm) Restore(s snapshot) {
	f.values = map[string]any{}
	f.ops = map[string]model.Operator{}
	for k, v := range s.values {
		f.values[k] = v
	}
	for k, v := range s.ops {
		f.ops[k] = v
	}
}

func emptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case model.Date:
		return t.IsZero()
	}
	return false
}
