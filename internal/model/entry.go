package model

// EntrySource says where a payroll entry value originates.
type EntrySource string

const (
	EntryFromPerEntry EntrySource = "pay-per-entry"
	EntryFromLink     EntrySource = "element-link"
	EntryFromElement  EntrySource = "element"
)

// PayrollPerEntry is the per-employee view of payroll entries: the employee
// snapshot plus the element entries in effect.
type PayrollPerEntry struct {
	EmployeeID       int            `json:"employee_id,omitempty"`
	EmployeeNo       string         `json:"employee_no,omitempty"`
	EmployeeName     string         `json:"employee_name,omitempty"`
	GenderID         int            `json:"gender_id,omitempty"`
	GenderName       string         `json:"gender_name,omitempty"`
	ReligionName     string         `json:"religion_name,omitempty"`
	MaritalStatus    string         `json:"marital_status,omitempty"`
	ChildCount       int            `json:"child_count,omitempty"`
	PhoneNo          string         `json:"phone_no,omitempty"`
	JoinDate         Date           `json:"join_date,omitzero"`
	TerminationDate  Date           `json:"termination_date,omitzero"`
	DepartmentID     int            `json:"department_id,omitempty"`
	DepartmentName   string         `json:"department_name,omitempty"`
	ProjectID        int            `json:"project_id,omitempty"`
	ProjectName      string         `json:"project_name,omitempty"`
	OfficeID         int            `json:"office_id,omitempty"`
	OfficeName       string         `json:"office_name,omitempty"`
	LocationID       int            `json:"location_id,omitempty"`
	LocationName     string         `json:"location_name,omitempty"`
	PositionID       int            `json:"position_id,omitempty"`
	PositionName     string         `json:"position_name,omitempty"`
	GradeID          int            `json:"grade_id,omitempty"`
	GradeName        string         `json:"grade_name,omitempty"`
	PayGroupID       string         `json:"pay_group_id,omitempty"`
	PayGroupName     string         `json:"pay_group_name,omitempty"`
	PeopleGroup      string         `json:"people_group,omitempty"`
	EmployeeCategory string         `json:"employee_category,omitempty"`
	SalaryBasisID    string         `json:"salary_basis_id,omitempty"`
	BasicSalary      float64        `json:"basic_salary,omitempty"`
	Entries          []PayrollEntry `json:"entries,omitempty"`
}

// PayrollEntry is one element entry for an employee.
type PayrollEntry struct {
	ElementID      string              `json:"element_id,omitempty"`
	ElementName    string              `json:"element_name,omitempty"`
	EntryID        string              `json:"entry_id,omitempty"`
	EffectiveStart Date                `json:"effective_start,omitzero"`
	EffectiveEnd   Date                `json:"effective_end,omitzero"`
	ValueFrom      EntrySource         `json:"value_from,omitempty"`
	Values         []PayrollEntryValue `json:"values,omitempty"`
}

// PayrollEntryValue is one input value of an entry, with the default, link
// override and per-entry override visible side by side.
type PayrollEntryValue struct {
	InputValueID   string   `json:"input_value_id,omitempty"`
	ValueCode      string   `json:"value_code,omitempty"`
	ValueName      string   `json:"value_name,omitempty"`
	DataType       DataType `json:"data_type,omitempty"`
	ValueID        string   `json:"value_id,omitempty"`
	EffectiveStart Date     `json:"effective_start,omitzero"`
	EffectiveEnd   Date     `json:"effective_end,omitzero"`
	DefaultValue   string   `json:"default_value,omitempty"`
	LinkValue      string   `json:"link_value,omitempty"`
	EntryValue     string   `json:"entry_value,omitempty"`
}
