package model

import "errors"

// PayrollElement is a compensation element definition. Elements are
// effective-dated; edits route through the change-insert workflow.
type PayrollElement struct {
	ElementID          string       `json:"element_id,omitempty"`
	ReadOnly           Flag         `json:"is_read_only,omitempty"`
	EffectiveStart     Date         `json:"effective_start,omitzero"`
	EffectiveEnd       Date         `json:"effective_end,omitzero"`
	ElementCode        string       `json:"element_code,omitempty"`
	ElementName        string       `json:"element_name,omitempty"`
	InputValueNames    string       `json:"input_value_names,omitempty"`
	ClassificationID   string       `json:"classification_id,omitempty"`
	ClassificationName string       `json:"classification_name,omitempty"`
	ProcessingPriority int          `json:"processing_priority,omitempty"`
	RetroElementID     string       `json:"retro_element_id,omitempty"`
	RetroElementName   string       `json:"retro_element_name,omitempty"`
	Recurring          Flag         `json:"is_recurring,omitempty"`
	OncePerPeriod      Flag         `json:"is_once_per_period,omitempty"`
	Description        string       `json:"description,omitempty"`
	Values             []InputValue `json:"values,omitempty"`
}

// ErrNoInputValues rejects element inserts without at least one input value.
var ErrNoInputValues = errors.New("element must define at least one input value")

// ValidateInsert checks the invariants the client enforces before an
// element insert reaches the network.
func (e *PayrollElement) ValidateInsert() error {
	if len(e.Values) == 0 {
		return ErrNoInputValues
	}
	return nil
}

// DataType classifies an input value: character, number or date.
type DataType string

const (
	DataCharacter DataType = "C"
	DataNumber    DataType = "N"
	DataDate      DataType = "D"
)

// InputValue is one input slot of an element (e.g. amount, percentage).
type InputValue struct {
	InputValueID   string   `json:"input_value_id,omitempty"`
	ReadOnly       Flag     `json:"is_read_only,omitempty"`
	EffectiveStart Date     `json:"effective_start,omitzero"`
	EffectiveEnd   Date     `json:"effective_end,omitzero"`
	ValueCode      string   `json:"value_code,omitempty"`
	ValueName      string   `json:"value_name,omitempty"`
	DataType       DataType `json:"data_type,omitempty"`
	DefaultValue   string   `json:"default_value,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// PayrollElementCbx is the reduced element read-model for selection inputs.
type PayrollElementCbx struct {
	ElementID          string          `json:"element_id"`
	ElementCode        string          `json:"element_code"`
	ElementName        string          `json:"element_name"`
	ClassificationName string          `json:"classification_name,omitempty"`
	Values             []InputValueCbx `json:"values,omitempty"`
}

// InputValueCbx is the reduced input-value read-model for selection inputs.
type InputValueCbx struct {
	InputValueID string   `json:"input_value_id"`
	ValueCode    string   `json:"value_code"`
	ValueName    string   `json:"value_name"`
	DataType     DataType `json:"data_type,omitempty"`
	DefaultValue string   `json:"default_value,omitempty"`
}
