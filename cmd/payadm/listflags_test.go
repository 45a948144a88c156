package main

import (
	"context"
	"testing"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		expr    string
		field   string
		opKey   string
		value   string
		wantErr bool
	}{
		{expr: "element_code=BASIC", field: "element_code", opKey: "=", value: "BASIC"},
		{expr: "element_name~overtime", field: "element_name", opKey: "~", value: "overtime"},
		{expr: "processing_priority<>100", field: "processing_priority", opKey: "<>", value: "100"},
		{expr: "processing_priority<=100", field: "processing_priority", opKey: "<=", value: "100"},
		{expr: "processing_priority>=100", field: "processing_priority", opKey: ">=", value: "100"},
		{expr: "effective_start>2025-01-01", field: "effective_start", opKey: ">", value: "2025-01-01"},
		{expr: "priority < 5", field: "priority", opKey: "<", value: "5"},
		{expr: "no operator here", wantErr: true},
		{expr: "=value", wantErr: true},
		{expr: "field=", wantErr: true},
		{expr: "", wantErr: true},
	}
	for _, tt := range tests {
		field, opKey, value, err := parseFilter(tt.expr)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFilter(%q) expected error, got %q %q %q", tt.expr, field, opKey, value)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFilter(%q): %v", tt.expr, err)
			continue
		}
		if field != tt.field || opKey != tt.opKey || value != tt.value {
			t.Errorf("parseFilter(%q) = %q %q %q, want %q %q %q",
				tt.expr, field, opKey, value, tt.field, tt.opKey, tt.value)
		}
	}
}

func TestParseValueSpec(t *testing.T) {
	v, err := parseValueSpec("AMT:Amount:n:0")
	if err != nil {
		t.Fatalf("parseValueSpec: %v", err)
	}
	if v.ValueCode != "AMT" || v.ValueName != "Amount" {
		t.Fatalf("parsed %+v", v)
	}
	if v.DataType != model.DataNumber {
		t.Fatalf("DataType = %q, want N", v.DataType)
	}
	if v.DefaultValue != "0" {
		t.Fatalf("DefaultValue = %q, want 0", v.DefaultValue)
	}

	if _, err := parseValueSpec("AMT:Amount"); err == nil {
		t.Fatal("two-part spec accepted")
	}
	if _, err := parseValueSpec("AMT:Amount:X"); err == nil {
		t.Fatal("bad data type accepted")
	}

	v, err = parseValueSpec("PCT:Percent:C")
	if err != nil {
		t.Fatalf("parseValueSpec without default: %v", err)
	}
	if v.DefaultValue != "" {
		t.Fatalf("DefaultValue = %q, want empty", v.DefaultValue)
	}
}

func TestParseEntryValues(t *testing.T) {
	values, err := parseEntryValues([]string{"iv-1=5000", "iv-2=2.5"})
	if err != nil {
		t.Fatalf("parseEntryValues: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("values = %d, want 2", len(values))
	}
	if values[0].InputValueID != "iv-1" || values[0].EntryValue != "5000" {
		t.Fatalf("first value = %+v", values[0])
	}

	if _, err := parseEntryValues([]string{"no-separator"}); err == nil {
		t.Fatal("spec without = accepted")
	}
	if _, err := parseEntryValues([]string{"=5000"}); err == nil {
		t.Fatal("spec without id accepted")
	}
}

func TestFetchAllSweepsEveryPage(t *testing.T) {
	const total = 230
	var calls []*model.SearchCriteria
	fetch := func(ctx context.Context, c *model.SearchCriteria) (*client.PageResponse[int], error) {
		calls = append(calls, c)
		start := c.PageNo * c.PerPage
		end := start + c.PerPage
		if end > total {
			end = total
		}
		var rows []int
		for i := start; i < end; i++ {
			rows = append(rows, i)
		}
		return &client.PageResponse[int]{PageNo: c.PageNo, PerPage: c.PerPage, TotalRow: total, Rows: rows}, nil
	}

	form, err := list.NewSearchForm(model.SearchOption{Name: "code", Type: model.OptionString, Label: "Code"})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	form.SetSearch("basic")

	rows, err := fetchAll(context.Background(), form, []string{"-code"}, fetch)
	if err != nil {
		t.Fatalf("fetchAll: %v", err)
	}
	if len(rows) != total {
		t.Fatalf("rows = %d, want %d", len(rows), total)
	}
	if len(calls) != 3 {
		t.Fatalf("fetch calls = %d, want 3", len(calls))
	}
	for i, c := range calls {
		if c.PageNo != i || c.SearchText != "basic" || len(c.Sorts) != 1 {
			t.Fatalf("call %d criteria = %+v", i, c)
		}
	}
}
