package model

// PayrollGroup batches employees paid on the same cycle.
type PayrollGroup struct {
	PayGroupID     string `json:"pay_group_id,omitempty"`
	ReadOnly       Flag   `json:"is_read_only,omitempty"`
	EffectiveStart Date   `json:"effective_start,omitzero"`
	EffectiveEnd   Date   `json:"effective_end,omitzero"`
	PayGroupName   string `json:"pay_group_name,omitempty"`
	Description    string `json:"description,omitempty"`
}

// PayrollGroupCbx is the reduced group read-model for selection inputs.
type PayrollGroupCbx struct {
	PayGroupID   string `json:"pay_group_id"`
	PayGroupName string `json:"pay_group_name"`
}

// ElementClassification orders elements for processing.
type ElementClassification struct {
	ClassificationID   string `json:"classification_id,omitempty"`
	ReadOnly           Flag   `json:"is_read_only,omitempty"`
	ClassificationName string `json:"classification_name,omitempty"`
	DefaultPriority    int    `json:"default_priority,omitempty"`
	Description        string `json:"description,omitempty"`
}

// ElementClassificationCbx is the reduced classification read-model.
type ElementClassificationCbx struct {
	ClassificationID   string `json:"classification_id"`
	ClassificationName string `json:"classification_name"`
	DefaultPriority    int    `json:"default_priority"`
}

// SalaryBasis ties a basic-salary element input to a pay frequency basis.
type SalaryBasis struct {
	SalaryBasisID   string `json:"salary_basis_id,omitempty"`
	ReadOnly        Flag   `json:"is_read_only,omitempty"`
	SalaryBasisCode string `json:"salary_basis_code,omitempty"`
	SalaryBasisName string `json:"salary_basis_name,omitempty"`
	ElementID       string `json:"element_id,omitempty"`
	ElementName     string `json:"element_name,omitempty"`
	InputValueID    string `json:"input_value_id,omitempty"`
	InputValueName  string `json:"input_value_name,omitempty"`
	Description     string `json:"description,omitempty"`
}
