package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/model"
)

var entrySearchOptions = []model.SearchOption{
	{Name: "employee_no", Label: "Employee no"},
	{Name: "employee_name", Label: "Name"},
	{Name: "department_name", Label: "Department"},
	{Name: "pay_group_name", Label: "Pay group"},
	{Name: "employee_category", Label: "Category", Placement: model.PlaceBefore,
		Options: model.LovOptions(model.LovEmployeeCategory)},
}

var entryCmd = &cobra.Command{
	Use:     "entry",
	Short:   "Manage per-employee payroll entries",
	GroupID: "payroll",
}

func renderEmployeeTable(rows []model.PayrollPerEntry, withEntries bool) {
	t := newTable("EMP NO", "NAME", "DEPARTMENT", "PAY GROUP", "BASIC SALARY")
	for _, e := range rows {
		t.AddRow(e.EmployeeNo, e.EmployeeName, e.DepartmentName, e.PayGroupName, e.BasicSalary)
	}
	fmt.Println(t)
	if !withEntries {
		return
	}
	for _, e := range rows {
		if len(e.Entries) == 0 {
			continue
		}
		fmt.Printf("\n%s:\n", e.EmployeeName)
		et := newTable("ENTRY", "ELEMENT", "SOURCE", "EFFECTIVE")
		for _, en := range e.Entries {
			et.AddRow(en.EntryID, en.ElementName, string(en.ValueFrom), displayDate(en.EffectiveStart))
		}
		fmt.Println(et)
	}
}

var entryEmployeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees with their entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		withEntries, _ := cmd.Flags().GetBool("with-entries")
		fetch := func(ctx context.Context, criteria *model.SearchCriteria) (*client.PageResponse[model.PayrollPerEntry], error) {
			page, err := payClient.ListEntryEmployees(ctx, criteria, withEntries)
			if err != nil {
				return nil, err
			}
			return &page.PageResponse, nil
		}
		return runList(cmd, "entry-employees", entrySearchOptions, fetch,
			func(rows []model.PayrollPerEntry) {
				renderEmployeeTable(rows, withEntries)
			})
	},
}

var entryShowCmd = &cobra.Command{
	Use:   "show <employee-id>",
	Short: "Show one employee and the entries in effect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id %q", args[0])
		}
		effStr, _ := cmd.Flags().GetString("effective")
		resp, err := payClient.GetEntryEmployee(cmd.Context(), employeeID, dateFlag(effStr))
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		e := resp.Employee
		if e != nil {
			fmt.Printf("Employee:   %s (%s)\n", e.EmployeeName, e.EmployeeNo)
			fmt.Printf("Department: %s\n", e.DepartmentName)
			fmt.Printf("Position:   %s\n", e.PositionName)
			fmt.Printf("Pay group:  %s\n", e.PayGroupName)
			fmt.Printf("Joined:     %s\n", displayDate(e.JoinDate))
		}
		for _, en := range resp.Entries {
			fmt.Printf("\n%s (%s, effective %s .. %s)\n", en.ElementName, en.ValueFrom,
				displayDate(en.EffectiveStart), displayDate(en.EffectiveEnd))
			t := newTable("VALUE", "DEFAULT", "LINK", "ENTRY")
			for _, v := range en.Values {
				t.AddRow(v.ValueName, v.DefaultValue, v.LinkValue, v.EntryValue)
			}
			fmt.Println(t)
		}
		return nil
	},
}

// parseEntryValues reads --value flags of the form input-value-id=value.
func parseEntryValues(specs []string) ([]model.PayrollEntryValue, error) {
	var values []model.PayrollEntryValue
	for _, spec := range specs {
		id, val, ok := strings.Cut(spec, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid value %q (expected input-value-id=value)", spec)
		}
		values = append(values, model.PayrollEntryValue{InputValueID: id, EntryValue: val})
	}
	return values, nil
}

var entryAddCmd = &cobra.Command{
	Use:   "add <employee-id>",
	Short: "Add an element entry to an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id %q", args[0])
		}
		element, _ := cmd.Flags().GetString("element")
		effStr, _ := cmd.Flags().GetString("effective")
		valueSpecs, _ := cmd.Flags().GetStringArray("value")
		values, err := parseEntryValues(valueSpecs)
		if err != nil {
			return err
		}

		entry := &model.PayrollEntry{
			ElementID:      element,
			EffectiveStart: dateFlag(effStr),
			Values:         values,
		}
		resp, err := payClient.InsertEntry(cmd.Context(), employeeID, entry)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created entry %s\n", resp.NewID)
		return nil
	},
}

var entryUpdateCmd = &cobra.Command{
	Use:   "update <entry-id>",
	Short: "Update an element entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetEntry(ctx, args[0], model.Date{})
		if err != nil {
			return err
		}

		entry := *current
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			entry.EffectiveStart = dateFlag(effStr)
		}
		if cmd.Flags().Changed("value") {
			valueSpecs, _ := cmd.Flags().GetStringArray("value")
			values, err := parseEntryValues(valueSpecs)
			if err != nil {
				return err
			}
			entry.Values = values
		}

		opts, proceed, err := decideUpdate(ctx, current.EffectiveStart, entry.EffectiveStart)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("cancelled")
			return nil
		}
		resp, err := payClient.UpdateEntry(ctx, args[0], &entry, opts)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete an element entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteEntry(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var entryValueUpdateCmd = &cobra.Command{
	Use:   "set-value <value-id> <value>",
	Short: "Set one entry value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetEntryValue(ctx, args[0], model.Date{})
		if err != nil {
			return err
		}

		entry := *current
		for i := range entry.Values {
			entry.Values[i].EntryValue = args[1]
		}
		candidate := entry.EffectiveStart
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			candidate = dateFlag(effStr)
			entry.EffectiveStart = candidate
		}

		opts, proceed, err := decideUpdate(ctx, current.EffectiveStart, candidate)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("cancelled")
			return nil
		}
		resp, err := payClient.UpdateEntryValue(ctx, args[0], &entry, opts)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

func init() {
	addListFlags(entryEmployeesCmd)
	entryEmployeesCmd.Flags().Bool("with-entries", false, "include each employee's entries")
	entryShowCmd.Flags().String("effective", "", "entries in effect at this date (yyyy-MM-dd)")

	entryAddCmd.Flags().String("element", "", "element id")
	entryAddCmd.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	entryAddCmd.Flags().StringArray("value", nil, "entry value (input-value-id=value, repeatable)")

	entryUpdateCmd.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	entryUpdateCmd.Flags().StringArray("value", nil, "entry value (input-value-id=value, repeatable)")

	entryValueUpdateCmd.Flags().String("effective", "", "effective start (yyyy-MM-dd)")

	entryCmd.AddCommand(entryEmployeesCmd)
	entryCmd.AddCommand(entryShowCmd)
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryUpdateCmd)
	entryCmd.AddCommand(entryDeleteCmd)
	entryCmd.AddCommand(entryValueUpdateCmd)
}
