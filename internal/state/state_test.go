package state

import (
	"testing"

	"github.com/freshcms/payadm/internal/model"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	return Open(t.TempDir(), t.TempDir())
}

func TestLoadListEmpty(t *testing.T) {
	s := newTestStore(t)
	if st := s.LoadList("pay-element"); st.SearchText != "" || st.PageNo != 0 || len(st.Filters) != 0 {
		t.Errorf("unknown list should load zero state, got %+v", st)
	}
	if st := s.LoadList(""); st.SearchText != "" {
		t.Errorf("empty name should load zero state, got %+v", st)
	}
}

func TestSaveSearchRoundTrip(t *testing.T) {
	s := newTestStore(t)
	filters := []model.FilterCriteria{
		{Field: "classification_id", Operator: model.OpEqual, Value: "C1"},
	}
	if err := s.SaveSearch("pay-element", "basic", filters); err != nil {
		t.Fatal(err)
	}

	st := s.LoadList("pay-element")
	if st.SearchText != "basic" {
		t.Errorf("SearchText = %q", st.SearchText)
	}
	if len(st.Filters) != 1 || st.Filters[0].Field != "classification_id" {
		t.Errorf("Filters = %+v", st.Filters)
	}

	// Unnamed lists do not persist search state.
	if err := s.SaveSearch("", "ignored", nil); err != nil {
		t.Fatal(err)
	}
}

func TestSavePageKeepsSearch(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveSearch("pay-formula", "tax", nil); err != nil {
		t.Fatal(err)
	}
	if err := s.SavePage("pay-formula", 3, 20); err != nil {
		t.Fatal(err)
	}

	st := s.LoadList("pay-formula")
	if st.PageNo != 3 {
		t.Errorf("PageNo = %d, want 3", st.PageNo)
	}
	if st.SearchText != "tax" {
		t.Errorf("SavePage must not clobber search text, got %q", st.SearchText)
	}
	if got := s.PerPage("pay-formula"); got != 20 {
		t.Errorf("PerPage = %d, want 20", got)
	}
}

func TestSharedPerPage(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePage("", 0, 50); err != nil {
		t.Fatal(err)
	}
	if got := s.PerPage(""); got != 50 {
		t.Errorf("shared PerPage = %d, want 50", got)
	}
	// A named list does not see the shared value.
	if got := s.PerPage("pay-balance"); got != 0 {
		t.Errorf("named PerPage = %d, want 0", got)
	}
}
