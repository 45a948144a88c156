package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/history"
	"github.com/freshcms/payadm/internal/list"
	"github.com/freshcms/payadm/internal/model"
	"github.com/freshcms/payadm/internal/tui"
)

var browseResources = []string{
	"elements", "classifications", "groups", "salary-bases",
	"formulas", "balances", "links", "employees", "processes",
}

var browseCmd = &cobra.Command{
	Use:       "browse <resource>",
	Short:     "Browse a resource interactively",
	Long:      "Browse a resource in a full-screen table with incremental search,\nfilters, pagination and per-record version history.",
	GroupID:   "views",
	Args:      cobra.ExactArgs(1),
	ValidArgs: browseResources,
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := buildScreen(args[0])
		if err != nil {
			return err
		}
		return tui.Run(screen, history.NewViewer(payClient), &reqCounter)
	},
}

func newBrowseScreen[T any](
	name, title string,
	columns []string,
	component model.Component,
	opts []model.SearchOption,
	fetch list.Fetcher[T],
	render func(T) []string,
	id func(T) string,
	asOf func(context.Context, string, model.Date) (T, error),
) (*tui.Screen, error) {
	form, err := list.NewSearchForm(opts...)
	if err != nil {
		return nil, err
	}
	ctrl := list.NewController(name, fetch, form, listStore)
	return tui.NewScreen(title, columns, component, ctrl, render, id, asOf), nil
}

// asOfGet adapts an effective-dated client getter to the by-value shape
// the browse screens replace rows with.
func asOfGet[T any](get func(context.Context, string, model.Date) (*T, error)) func(context.Context, string, model.Date) (T, error) {
	return func(ctx context.Context, id string, effective model.Date) (T, error) {
		item, err := get(ctx, id, effective)
		if err != nil {
			var zero T
			return zero, err
		}
		return *item, nil
	}
}

func buildScreen(resource string) (*tui.Screen, error) {
	switch resource {
	case "elements":
		return newBrowseScreen("elements", "Payroll Elements",
			[]string{"CODE", "NAME", "CLASSIFICATION", "PRIORITY", "EFFECTIVE"},
			model.ComponentPayrollElement, elementSearchOptions, payClient.ListElements,
			func(e model.PayrollElement) []string {
				return []string{e.ElementCode, e.ElementName, e.ClassificationName,
					strconv.Itoa(e.ProcessingPriority), displayDate(e.EffectiveStart)}
			},
			func(e model.PayrollElement) string { return e.ElementID },
			asOfGet(payClient.GetElement))

	case "classifications":
		opts := []model.SearchOption{
			{Name: "classification_name", Label: "Name"},
			{Name: "default_priority", Label: "Priority", Type: model.OptionNumber},
		}
		return newBrowseScreen("classifications", "Element Classifications",
			[]string{"NAME", "DEFAULT PRIORITY", "DESCRIPTION"},
			model.ComponentElementClassification, opts, payClient.ListClassifications,
			func(c model.ElementClassification) []string {
				return []string{c.ClassificationName, strconv.Itoa(c.DefaultPriority), c.Description}
			},
			func(c model.ElementClassification) string { return c.ClassificationID },
			nil)

	case "groups":
		opts := []model.SearchOption{
			{Name: "pay_group_name", Label: "Name"},
			{Name: "effective_start", Label: "Effective from", Type: model.OptionDate},
		}
		return newBrowseScreen("groups", "Payroll Groups",
			[]string{"NAME", "EFFECTIVE", "DESCRIPTION"},
			model.ComponentPayrollGroup, opts, payClient.ListGroups,
			func(g model.PayrollGroup) []string {
				return []string{g.PayGroupName, displayDate(g.EffectiveStart), g.Description}
			},
			func(g model.PayrollGroup) string { return g.PayGroupID },
			asOfGet(payClient.GetGroup))

	case "salary-bases":
		opts := []model.SearchOption{
			{Name: "salary_basis_name", Label: "Name"},
			{Name: "element_name", Label: "Element"},
		}
		return newBrowseScreen("salary-bases", "Salary Bases",
			[]string{"CODE", "NAME", "ELEMENT", "INPUT VALUE"},
			model.ComponentSalaryBasis, opts, payClient.ListSalaryBases,
			func(s model.SalaryBasis) []string {
				return []string{s.SalaryBasisCode, s.SalaryBasisName, s.ElementName, s.InputValueName}
			},
			func(s model.SalaryBasis) string { return s.SalaryBasisID },
			nil)

	case "formulas":
		return newBrowseScreen("formulas", "Payroll Formulas",
			[]string{"NAME", "ELEMENT", "TYPE", "EFFECTIVE"},
			model.ComponentPayrollFormula, formulaSearchOptions, payClient.ListFormulas,
			func(f model.PayrollFormula) []string {
				return []string{f.FormulaName, f.ElementName, string(f.FormulaType),
					displayDate(f.EffectiveStart)}
			},
			func(f model.PayrollFormula) string { return f.FormulaID },
			asOfGet(payClient.GetFormula))

	case "balances":
		return newBrowseScreen("balances", "Payroll Balances",
			[]string{"NAME", "FED BY", "DESCRIPTION"},
			model.ComponentPayrollBalance, balanceSearchOptions, payClient.ListBalances,
			func(b model.PayrollBalance) []string {
				return []string{b.BalanceName, string(b.BalanceFeedType), b.Description}
			},
			func(b model.PayrollBalance) string { return b.BalanceID },
			nil)

	case "links":
		return newBrowseScreen("links", "Element Links",
			[]string{"ELEMENT", "CLASSIFICATION", "SCOPE", "EFFECTIVE"},
			model.ComponentElementLink, linkSearchOptions, payClient.ListLinks,
			func(l model.ElementLink) []string {
				return []string{l.ElementName, l.ClassificationName, linkScope(l),
					displayDate(l.EffectiveStart)}
			},
			func(l model.ElementLink) string { return l.LinkID },
			asOfGet(payClient.GetLink))

	case "employees":
		fetch := func(ctx context.Context, criteria *model.SearchCriteria) (*client.PageResponse[model.PayrollPerEntry], error) {
			page, err := payClient.ListEntryEmployees(ctx, criteria, false)
			if err != nil {
				return nil, err
			}
			return &page.PageResponse, nil
		}
		return newBrowseScreen("entry-employees", "Employee Entries",
			[]string{"EMP NO", "NAME", "DEPARTMENT", "PAY GROUP", "BASIC SALARY"},
			model.ComponentPayrollEntry, entrySearchOptions, fetch,
			func(e model.PayrollPerEntry) []string {
				return []string{e.EmployeeNo, e.EmployeeName, e.DepartmentName, e.PayGroupName,
					strconv.FormatFloat(e.BasicSalary, 'f', 2, 64)}
			},
			func(e model.PayrollPerEntry) string { return strconv.Itoa(e.EmployeeID) },
			func(ctx context.Context, id string, effective model.Date) (model.PayrollPerEntry, error) {
				employeeID, err := strconv.Atoi(id)
				if err != nil {
					return model.PayrollPerEntry{}, err
				}
				resp, err := payClient.GetEntryEmployee(ctx, employeeID, effective)
				if err != nil {
					return model.PayrollPerEntry{}, err
				}
				return *resp.Employee, nil
			})

	case "processes":
		return newBrowseScreen("processes", "Payroll Processes",
			[]string{"BATCH", "DATE", "PERIOD", "STATUS", "TOTAL"},
			model.ComponentPayrollProcess, processSearchOptions, payClient.ListProcesses,
			func(p model.PayrollProcess) []string {
				period := fmt.Sprintf("%s .. %s", displayDate(p.PeriodStart), displayDate(p.PeriodEnd))
				return []string{p.BatchName, displayDate(p.ProcessDate), period,
					p.ProcessStatus, strconv.Itoa(p.TotalCount)}
			},
			func(p model.PayrollProcess) string { return strconv.Itoa(p.ProcessID) },
			nil)
	}
	return nil, fmt.Errorf("unknown resource %q (one of %v)", resource, browseResources)
}
