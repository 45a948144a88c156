package list

import (
	"reflect"
	"testing"

	"github.com/freshcms/payadm/internal/model"
)

func elementForm(t *testing.T) *SearchForm {
	t.Helper()
	form, err := NewSearchForm(
		model.SearchOption{Name: "element_code", Label: "Code"},
		model.SearchOption{Name: "classification_id", Label: "Classification", Options: []model.OptionItem{
			{ID: "c1", Label: "Earnings"},
			{ID: "c2", Label: "Deductions"},
		}},
		model.SearchOption{Name: "processing_priority", Label: "Priority", Type: model.OptionNumber},
		model.SearchOption{Name: "effective_start", Label: "Effective", Type: model.OptionDate},
	)
	if err != nil {
		t.Fatalf("NewSearchForm: %v", err)
	}
	return form
}

func TestSearchFormReservedName(t *testing.T) {
	if _, err := NewSearchForm(model.SearchOption{Name: SearchKey}); err == nil {
		t.Fatalf("reserved field name accepted")
	}
}

func TestSearchFormCriteria(t *testing.T) {
	form := elementForm(t)
	form.SetSearch("salary")
	if err := form.SetValue("element_code", "BAS"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := form.SetValue("classification_id", "c1"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := form.SetValue("processing_priority", 100); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := form.SetOperatorKey("processing_priority", model.KeyGreaterThanEqual); err != nil {
		t.Fatalf("SetOperatorKey: %v", err)
	}

	search, filters := form.Criteria()
	if search != "salary" {
		t.Errorf("search = %q", search)
	}
	want := []model.FilterCriteria{
		{Field: "element_code", Operator: model.OpContain, Value: "BAS"},
		{Field: "classification_id", Operator: model.OpEqual, Value: "c1"},
		{Field: "processing_priority", Operator: model.OpGreaterThanEqual, Value: 100},
	}
	if !reflect.DeepEqual(filters, want) {
		t.Errorf("filters = %+v, want %+v", filters, want)
	}
}

func TestSearchFormEmptyValuesDropped(t *testing.T) {
	form := elementForm(t)
	if err := form.SetValue("element_code", "BAS"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := form.SetValue("element_code", ""); err != nil {
		t.Fatalf("clearing value: %v", err)
	}
	if err := form.SetValue("effective_start", model.Date{}); err != nil {
		t.Fatalf("zero date: %v", err)
	}
	if _, filters := form.Criteria(); len(filters) != 0 {
		t.Errorf("filters = %+v, want none", filters)
	}
}

func TestSearchFormUnknownField(t *testing.T) {
	form := elementForm(t)
	if err := form.SetValue("bogus", "x"); err == nil {
		t.Errorf("unknown field accepted")
	}
	if err := form.SetOperatorKey("bogus", model.KeyEqual); err == nil {
		t.Errorf("unknown field operator accepted")
	}
}

func TestSearchFormDisallowedOperatorFallsBack(t *testing.T) {
	form := elementForm(t)
	// Option-list fields only allow = and <>; contain falls back to =.
	if err := form.SetOperatorKey("classification_id", model.KeyContain); err != nil {
		t.Fatalf("SetOperatorKey: %v", err)
	}
	if op := form.Operator("classification_id"); op != model.OpEqual {
		t.Errorf("operator = %q, want fallback to =", op)
	}
}

func TestSearchFormFilterCount(t *testing.T) {
	form := elementForm(t)
	form.SetSearch("salary")
	form.SetValue("element_code", "BAS")
	form.SetValue("classification_id", "c1")

	if got := form.FilterCount(); got != 0 {
		t.Errorf("FilterCount before commit = %d, want 0", got)
	}
	form.Commit()
	if got := form.FilterCount(); got != 2 {
		t.Errorf("FilterCount = %d, want 2 (search never counts)", got)
	}

	// Edits after commit do not move the badge until the next commit.
	form.SetValue("processing_priority", 5)
	if got := form.FilterCount(); got != 2 {
		t.Errorf("FilterCount after uncommitted edit = %d, want 2", got)
	}
}

func TestSearchFormReset(t *testing.T) {
	form := elementForm(t)
	form.SetSearch("salary")
	form.SetValue("element_code", "BAS")
	form.SetOperatorKey("element_code", model.KeyEqual)

	form.Reset()
	if form.Search() != "salary" {
		t.Errorf("reset cleared the search text")
	}
	if form.Value("element_code") != nil {
		t.Errorf("reset kept filter value")
	}
	if op := form.Operator("element_code"); op != model.OpContain {
		t.Errorf("operator after reset = %q, want default", op)
	}
}

func TestSearchFormSnapshotRestore(t *testing.T) {
	form := elementForm(t)
	form.SetValue("element_code", "BAS")

	snap := form.Snapshot()
	form.SetValue("element_code", "OVT")
	form.SetValue("classification_id", "c2")
	form.Restore(snap)

	if got := form.Value("element_code"); got != "BAS" {
		t.Errorf("element_code = %v, want BAS", got)
	}
	if form.Value("classification_id") != nil {
		t.Errorf("cancelled popup edit survived restore")
	}
}

func TestSearchFormCriteriaRoundTrip(t *testing.T) {
	form := elementForm(t)
	form.SetSearch("salary")
	form.SetValue("element_code", "BAS")
	form.SetValue("processing_priority", 100)
	form.SetOperatorKey("processing_priority", model.KeyLessThan)

	search, filters := form.Criteria()

	restored := elementForm(t)
	restored.SetCriteria(search, filters)
	gotSearch, gotFilters := restored.Criteria()
	if gotSearch != search || !reflect.DeepEqual(gotFilters, filters) {
		t.Errorf("round trip changed criteria:\n got %q %+v\nwant %q %+v", gotSearch, gotFilters, search, filters)
	}
	if restored.FilterCount() != 2 {
		t.Errorf("FilterCount after restore = %d, want 2", restored.FilterCount())
	}
}
