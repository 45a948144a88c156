package model

// Operator is a filter comparison operator as it appears on the wire.
type Operator string

const (
	OpContain          Operator = "like"
	OpEqual            Operator = "="
	OpNotEqual         Operator = "<>"
	OpLessThan         Operator = "<"
	OpLessThanEqual    Operator = "<="
	OpGreaterThan      Operator = ">"
	OpGreaterThanEqual Operator = ">="
	OpIn               Operator = "in"
	OpNotIn            Operator = "not in"
)

// Operation joins nested filter criteria.
type Operation string

const (
	OperationAnd Operation = "and"
	OperationOr  Operation = "or"
)

// FilterCriteria is one typed filter on a list endpoint. Items, when set,
// nest further criteria joined by Operation.
type FilterCriteria struct {
	Field     string           `json:"field"`
	Operator  Operator         `json:"operator,omitempty"`
	Value     any              `json:"value,omitempty"`
	Operation Operation        `json:"operation,omitempty"`
	Items     []FilterCriteria `json:"items,omitempty"`
}

// SearchCriteria is the request half of every paginated list call.
// PageNo is 0-based internally; the wire is 1-based.
type SearchCriteria struct {
	PageNo     int
	PerPage    int
	SearchText string
	Filters    []FilterCriteria
	Sorts      []string
}

// OptionType is the semantic type of a filterable field.
type OptionType string

const (
	OptionString OptionType = "string"
	OptionNumber OptionType = "number"
	OptionDate   OptionType = "date"
)

// Placement says where a filter control is rendered relative to the main
// search box. The empty placement means the advanced-filter popup.
type Placement string

const (
	PlacePopup  Placement = "popup"
	PlaceBefore Placement = "before"
	PlaceAfter  Placement = "after"
)

// OptionItem is one entry of a fixed value list for a filter field.
type OptionItem struct {
	ID    any
	Label string
}

// SearchOption is the static configuration of one filterable field on a
// list screen.
type SearchOption struct {
	Name      string
	Type      OptionType
	Label     string
	Placement Placement
	Options   []OptionItem
}

// HasOptions reports whether the field carries a fixed value list.
func (o SearchOption) HasOptions() bool {
	return len(o.Options) > 0
}

// InPopup reports whether the field lives in the advanced-filter popup.
func (o SearchOption) InPopup() bool {
	return o.Placement == "" || o.Placement == PlacePopup
}

// Operator keys are the short codes users pick in the operator selector.
const (
	KeyContain          = "~"
	KeyEqual            = "="
	KeyNotEqual         = "<>"
	KeyLessThan         = "<"
	KeyLessThanEqual    = "<="
	KeyGreaterThan      = ">"
	KeyGreaterThanEqual = ">="
)

// OperatorKey returns the short key for an operator, or "" for operators
// without one (in / not in are never user-selected).
func OperatorKey(op Operator) string {
	switch op {
	case OpContain:
		return KeyContain
	case OpEqual:
		return KeyEqual
	case OpNotEqual:
		return KeyNotEqual
	case OpLessThan:
		return KeyLessThan
	case OpLessThanEqual:
		return KeyLessThanEqual
	case OpGreaterThan:
		return KeyGreaterThan
	case OpGreaterThanEqual:
		return KeyGreaterThanEqual
	}
	return ""
}

// OperatorForKey resolves a short key against a field, falling back to the
// field's default operator for unknown or empty keys.
func OperatorForKey(opt SearchOption, key string) Operator {
	switch key {
	case KeyContain:
		return OpContain
	case KeyEqual:
		return OpEqual
	case KeyNotEqual:
		return OpNotEqual
	case KeyLessThan:
		return OpLessThan
	case KeyLessThanEqual:
		return OpLessThanEqual
	case KeyGreaterThan:
		return OpGreaterThan
	case KeyGreaterThanEqual:
		return OpGreaterThanEqual
	}
	return DefaultOperator(opt)
}

// DefaultOperator returns the operator used when the user has not picked
// one: EQUAL for option-list and number/date fields, CONTAIN for plain
// string fields.
func DefaultOperator(opt SearchOption) Operator {
	if opt.HasOptions() {
		return OpEqual
	}
	if opt.Type == "" || opt.Type == OptionString {
		return OpContain
	}
	return OpEqual
}

// AllowedOperatorKeys returns the operator keys a field may use: =/<> for
// option-list fields, ~/=/<> for free-text fields, the full relational set
// for number and date fields.
func AllowedOperatorKeys(opt SearchOption) []string {
	if opt.HasOptions() {
		return []string{KeyEqual, KeyNotEqual}
	}
	if opt.Type == "" || opt.Type == OptionString {
		return []string{KeyContain, KeyEqual, KeyNotEqual}
	}
	return []string{
		KeyEqual, KeyNotEqual,
		KeyLessThan, KeyLessThanEqual,
		KeyGreaterThan, KeyGreaterThanEqual,
	}
}
