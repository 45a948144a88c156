package model

// PayrollProcess is a summary row of a payroll run batch.
type PayrollProcess struct {
	ProcessID     int    `json:"process_id,omitempty"`
	BatchName     string `json:"batch_name,omitempty"`
	ProcessDate   Date   `json:"process_date,omitzero"`
	PeriodStart   Date   `json:"period_start,omitzero"`
	PeriodEnd     Date   `json:"period_end,omitzero"`
	SuccessCount  int    `json:"success_count,omitempty"`
	FailedCount   int    `json:"failed_count,omitempty"`
	TotalCount    int    `json:"total_count,omitempty"`
	ProcessStatus string `json:"process_status,omitempty"`
	Description   string `json:"description,omitempty"`
}
