package model

// ElementLink scopes an element to a slice of the workforce (office,
// location, department, project, position, grade, pay group, people group,
// employee category). Links and their values are effective-dated.
type ElementLink struct {
	LinkID             string      `json:"link_id,omitempty"`
	ReadOnly           Flag        `json:"is_read_only,omitempty"`
	EffectiveStart     Date        `json:"effective_start,omitzero"`
	EffectiveEnd       Date        `json:"effective_end,omitzero"`
	ElementID          string      `json:"element_id,omitempty"`
	ElementName        string      `json:"element_name,omitempty"`
	ClassificationName string      `json:"classification_name,omitempty"`
	OfficeID           int         `json:"office_id,omitempty"`
	OfficeName         string      `json:"office_name,omitempty"`
	LocationID         int         `json:"location_id,omitempty"`
	LocationName       string      `json:"location_name,omitempty"`
	DepartmentID       int         `json:"department_id,omitempty"`
	DepartmentName     string      `json:"department_name,omitempty"`
	ProjectID          int         `json:"project_id,omitempty"`
	ProjectName        string      `json:"project_name,omitempty"`
	PositionID         int         `json:"position_id,omitempty"`
	PositionName       string      `json:"position_name,omitempty"`
	GradeID            int         `json:"grade_id,omitempty"`
	GradeName          string      `json:"grade_name,omitempty"`
	PayGroupID         string      `json:"pay_group_id,omitempty"`
	PayGroupName       string      `json:"pay_group_name,omitempty"`
	PeopleGroup        string      `json:"people_group,omitempty"`
	EmployeeCategory   string      `json:"employee_category,omitempty"`
	Description        string      `json:"description,omitempty"`
	Values             []LinkValue `json:"values,omitempty"`
}

// LinkValue overrides an input value's default for the linked population.
type LinkValue struct {
	ValueID        string `json:"value_id,omitempty"`
	ReadOnly       Flag   `json:"is_read_only,omitempty"`
	EffectiveStart Date   `json:"effective_start,omitzero"`
	EffectiveEnd   Date   `json:"effective_end,omitzero"`
	InputValueID   string `json:"input_value_id,omitempty"`
	InputValueName string `json:"input_value_name,omitempty"`
	DefaultValue   string `json:"default_value,omitempty"`
	LinkValue      string `json:"link_value,omitempty"`
	Description    string `json:"description,omitempty"`
}
