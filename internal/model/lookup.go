package model

// LovType names a static lookup-value list used by radio/select inputs.
type LovType string

const (
	LovDataTypes        LovType = "DATA_TYPES"
	LovFormulaTypes     LovType = "FORMULA_TYPES"
	LovBalanceFeedType  LovType = "BALANCE_FEED_TYPE"
	LovAddSubtract      LovType = "ADD_SUBTRACT"
	LovPeopleGroup      LovType = "PEOPLE_GROUP"
	LovEmployeeCategory LovType = "EMPLOYEE_CATEGORY"
)

// LovItem is one entry of a lookup list.
type LovItem struct {
	ID    string
	Label string
}

// LOV holds the static lookup lists.
var LOV = map[LovType][]LovItem{
	LovDataTypes: {
		{ID: "N", Label: "Numeric"},
		{ID: "C", Label: "Character"},
		{ID: "D", Label: "Date"},
	},
	LovFormulaTypes: {
		{ID: "FX", Label: "Simple Formula"},
		{ID: "SP", Label: "Stored Procedure"},
	},
	LovBalanceFeedType: {
		{ID: "C", Label: "Classification"},
		{ID: "E", Label: "Element"},
	},
	LovAddSubtract: {
		{ID: "+", Label: "Add"},
		{ID: "-", Label: "Subtract"},
	},
	LovPeopleGroup: {
		{ID: "1", Label: "Head Office"},
		{ID: "2", Label: "Branch Office"},
	},
	LovEmployeeCategory: {
		{ID: "F", Label: "Full Time"},
		{ID: "P", Label: "Part Time"},
		{ID: "C", Label: "Contract"},
		{ID: "O", Label: "Outsource"},
	},
}

// LovLabel resolves the display label for a lookup key, or "" when the key
// is unknown.
func LovLabel(typ LovType, key string) string {
	for _, item := range LOV[typ] {
		if item.ID == key {
			return item.Label
		}
	}
	return ""
}

// LovOptions converts a lookup list into search-option items.
func LovOptions(typ LovType) []OptionItem {
	items := LOV[typ]
	opts := make([]OptionItem, 0, len(items))
	for _, item := range items {
		opts = append(opts, OptionItem{ID: item.ID, Label: item.Label})
	}
	return opts
}
