package model

// FormulaType says how a formula is evaluated server-side.
type FormulaType string

const (
	FormulaSimple    FormulaType = "FX"
	FormulaStoredPrc FormulaType = "SP"
)

// PayrollFormula is a calculation rule attached to an element. Formulas are
// configuration metadata; nothing is computed client-side.
type PayrollFormula struct {
	FormulaID      string          `json:"formula_id,omitempty"`
	ReadOnly       Flag            `json:"is_read_only,omitempty"`
	EffectiveStart Date            `json:"effective_start,omitzero"`
	EffectiveEnd   Date            `json:"effective_end,omitzero"`
	FormulaName    string          `json:"formula_name,omitempty"`
	ElementID      string          `json:"element_id,omitempty"`
	ElementName    string          `json:"element_name,omitempty"`
	ResultElements string          `json:"result_elements,omitempty"`
	FormulaType    FormulaType     `json:"formula_type,omitempty"`
	FormulaDef     string          `json:"formula_def,omitempty"`
	Description    string          `json:"description,omitempty"`
	Results        []FormulaResult `json:"results,omitempty"`
}

// FormulaResult maps a formula output onto an element input value.
type FormulaResult struct {
	ResultID       string `json:"result_id,omitempty"`
	ReadOnly       Flag   `json:"is_read_only,omitempty"`
	EffectiveStart Date   `json:"effective_start,omitzero"`
	EffectiveEnd   Date   `json:"effective_end,omitzero"`
	ResultCode     string `json:"result_code,omitempty"`
	ElementID      string `json:"element_id,omitempty"`
	ElementName    string `json:"element_name,omitempty"`
	InputValueID   string `json:"input_value_id,omitempty"`
	InputValueName string `json:"input_value_name,omitempty"`
	FormulaExpr    string `json:"formula_expr,omitempty"`
}

// PayrollFormulaCbx is the reduced formula read-model for selection inputs.
type PayrollFormulaCbx struct {
	FormulaID   string `json:"formula_id"`
	FormulaName string `json:"formula_name"`
}
