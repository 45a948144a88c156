package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "PlainDate", in: "2024-06-01", want: "2024-06-01"},
		{name: "DateTime", in: "2024-06-01 08:30:00", want: "2024-06-01 08:30:00"},
		{name: "TimeOnly", in: "08:30:00", want: "08:30:00"},
		{name: "Empty", in: "", want: ""},
		{name: "SentinelBOT", in: "1000-01-01", want: ""},
		{name: "SentinelEOT", in: "9000-12-31", want: ""},
		{name: "SentinelBOTDateTime", in: "1000-01-01 00:00:00", want: ""},
		{name: "Garbage", in: "not-a-date", wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %q", tc.in, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if d.String() != tc.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tc.in, d, tc.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	type rec struct {
		Start Date `json:"start,omitzero"`
		End   Date `json:"end,omitzero"`
	}

	var r rec
	if err := json.Unmarshal([]byte(`{"start":"2024-01-01","end":"9000-12-31"}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.Start.IsZero() {
		t.Error("start should be set")
	}
	if !r.End.IsZero() {
		t.Errorf("sentinel end should decode as unset, got %q", r.End)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"start":"2024-01-01"}` {
		t.Errorf("marshal = %s", out)
	}
}

func TestDateDisplay(t *testing.T) {
	d := NewDate(2024, time.June, 1)
	if got := d.Display(); got != "01-Jun-2024" {
		t.Errorf("Display = %q", got)
	}
	if got := (Date{}).Display(); got != "" {
		t.Errorf("zero Display = %q, want empty", got)
	}
	if got := (Date{BOT}).String(); got != "1000-01-01" {
		t.Errorf("BOT wire string = %q", got)
	}
}

func TestFlagUnmarshal(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{`0`, false}, {`1`, true}, {`"0"`, false}, {`"1"`, true},
		{`true`, true}, {`false`, false}, {`null`, false},
	} {
		var f Flag
		if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if f.Bool() != tc.want {
			t.Errorf("unmarshal %s = %v, want %v", tc.in, f, tc.want)
		}
	}

	var f Flag
	if err := json.Unmarshal([]byte(`"yes"`), &f); err == nil {
		t.Error("expected error for non-flag value")
	}
}

func TestNeedsChangeInsertConfirm(t *testing.T) {
	d1 := NewDate(2024, time.January, 1)
	d2 := NewDate(2024, time.June, 1)

	for _, tc := range []struct {
		name                string
		existing, candidate Date
		want                bool
	}{
		{name: "BothUnset", want: false},
		{name: "CandidateOnly", candidate: d2, want: true},
		{name: "ExistingOnly", existing: d1, want: false},
		{name: "CandidateAfter", existing: d1, candidate: d2, want: true},
		{name: "CandidateBefore", existing: d2, candidate: d1, want: false},
		{name: "SameDate", existing: d1, candidate: d1, want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := NeedsChangeInsertConfirm(tc.existing, tc.candidate); got != tc.want {
				t.Errorf("NeedsChangeInsertConfirm(%v, %v) = %v, want %v",
					tc.existing, tc.candidate, got, tc.want)
			}
		})
	}
}

func TestEffectiveParam(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	if got := EffectiveParam(d); got != d {
		t.Errorf("EffectiveParam(set) = %v, want %v", got, d)
	}
	if got := EffectiveParam(Date{}); got.String() != "1000-01-01" {
		t.Errorf("EffectiveParam(unset) = %q, want BOT sentinel", got)
	}
}

func TestNoHistory(t *testing.T) {
	open := HistoryItem{}
	dated := HistoryItem{EffectiveStart: NewDate(2024, time.January, 1)}

	for _, tc := range []struct {
		name  string
		items []HistoryItem
		want  bool
	}{
		{name: "Empty", items: nil, want: true},
		{name: "SingleOpen", items: []HistoryItem{open}, want: true},
		{name: "OpenPlusDated", items: []HistoryItem{open, dated}, want: false},
		{name: "SingleClosed", items: []HistoryItem{{EffectiveStart: NewDate(2024, time.January, 1), EffectiveEnd: NewDate(2024, time.December, 31)}}, want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := NoHistory(tc.items); got != tc.want {
				t.Errorf("NoHistory = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHistoryItemEffective(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.December, 31)

	if got := (HistoryItem{EffectiveStart: start, EffectiveEnd: end}).Effective(); got != start {
		t.Errorf("Effective = %v, want start", got)
	}
	if got := (HistoryItem{EffectiveEnd: end}).Effective(); got != end {
		t.Errorf("Effective = %v, want end when start unset", got)
	}
}

func TestDefaultOperator(t *testing.T) {
	for _, tc := range []struct {
		name string
		opt  SearchOption
		want Operator
	}{
		{name: "PlainString", opt: SearchOption{Name: "element_name"}, want: OpContain},
		{name: "ExplicitString", opt: SearchOption{Name: "code", Type: OptionString}, want: OpContain},
		{name: "Number", opt: SearchOption{Name: "priority", Type: OptionNumber}, want: OpEqual},
		{name: "Date", opt: SearchOption{Name: "effective_start", Type: OptionDate}, want: OpEqual},
		{name: "OptionList", opt: SearchOption{Name: "data_type", Options: []OptionItem{{ID: "N"}}}, want: OpEqual},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := DefaultOperator(tc.opt); got != tc.want {
				t.Errorf("DefaultOperator = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOperatorForKey(t *testing.T) {
	opt := SearchOption{Name: "priority", Type: OptionNumber}
	for key, want := range map[string]Operator{
		"~":  OpContain,
		"=":  OpEqual,
		"<>": OpNotEqual,
		"<":  OpLessThan,
		"<=": OpLessThanEqual,
		">":  OpGreaterThan,
		">=": OpGreaterThanEqual,
	} {
		if got := OperatorForKey(opt, key); got != want {
			t.Errorf("OperatorForKey(%q) = %q, want %q", key, got, want)
		}
	}
	// Unknown keys resolve to the field default.
	if got := OperatorForKey(opt, "between"); got != OpEqual {
		t.Errorf("OperatorForKey(unknown) = %q, want default %q", got, OpEqual)
	}
	if got := OperatorKey(OpIn); got != "" {
		t.Errorf("OperatorKey(in) = %q, want empty", got)
	}
}

func TestAllowedOperatorKeys(t *testing.T) {
	listOpt := SearchOption{Name: "data_type", Options: []OptionItem{{ID: "N"}}}
	if got := AllowedOperatorKeys(listOpt); len(got) != 2 || got[0] != "=" || got[1] != "<>" {
		t.Errorf("option-list keys = %v", got)
	}
	strOpt := SearchOption{Name: "name"}
	if got := AllowedOperatorKeys(strOpt); len(got) != 3 || got[0] != "~" {
		t.Errorf("string keys = %v", got)
	}
	numOpt := SearchOption{Name: "priority", Type: OptionNumber}
	if got := AllowedOperatorKeys(numOpt); len(got) != 6 {
		t.Errorf("number keys = %v", got)
	}
}

func TestValidateElementInsert(t *testing.T) {
	e := &PayrollElement{ElementCode: "BASIC"}
	if err := e.ValidateInsert(); err == nil {
		t.Error("insert without values should be rejected")
	}
	e.Values = []InputValue{{ValueCode: "AMOUNT"}}
	if err := e.ValidateInsert(); err != nil {
		t.Errorf("insert with values: %v", err)
	}
}
