package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/model"
)

var processSearchOptions = []model.SearchOption{
	{Name: "batch_name", Label: "Batch"},
	{Name: "process_date", Type: model.OptionDate, Label: "Process date"},
	{Name: "process_status", Label: "Status"},
}

var processCmd = &cobra.Command{
	Use:     "process",
	Short:   "Inspect payroll process batches",
	GroupID: "payroll",
}

var processListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past payroll runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "processes", processSearchOptions, payClient.ListProcesses,
			func(rows []model.PayrollProcess) {
				t := newTable("ID", "BATCH", "DATE", "PERIOD", "STATUS", "OK", "FAILED", "TOTAL")
				for _, p := range rows {
					period := fmt.Sprintf("%s .. %s", displayDate(p.PeriodStart), displayDate(p.PeriodEnd))
					t.AddRow(p.ProcessID, p.BatchName, displayDate(p.ProcessDate), period,
						p.ProcessStatus, p.SuccessCount, p.FailedCount, p.TotalCount)
				}
				fmt.Println(t)
			})
	},
}

var processNewCmd = &cobra.Command{
	Use:   "new-process",
	Short: "List employees eligible for a new payroll run",
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch := func(ctx context.Context, criteria *model.SearchCriteria) (*client.PageResponse[model.PayrollPerEntry], error) {
			page, err := payClient.ListNewProcessEmployees(ctx, criteria)
			if err != nil {
				return nil, err
			}
			return &page.PageResponse, nil
		}
		return runList(cmd, "new-process", entrySearchOptions, fetch,
			func(rows []model.PayrollPerEntry) {
				renderEmployeeTable(rows, false)
			})
	},
}

func init() {
	addListFlags(processListCmd)
	addListFlags(processNewCmd)
	processCmd.AddCommand(processListCmd)
	processCmd.AddCommand(processNewCmd)
}
