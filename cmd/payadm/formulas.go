package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/editor"
	"github.com/freshcms/payadm/internal/model"
)

var formulaSearchOptions = []model.SearchOption{
	{Name: "formula_name", Label: "Name"},
	{Name: "element_name", Label: "Element"},
	{Name: "formula_type", Label: "Type", Options: model.LovOptions(model.LovFormulaTypes)},
	{Name: "effective_start", Label: "Effective", Type: model.OptionDate},
}

var formulaCmd = &cobra.Command{
	Use:     "formula",
	Short:   "Manage payroll formulas",
	GroupID: "catalog",
}

var formulaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payroll formulas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "formulas", formulaSearchOptions, payClient.ListFormulas,
			func(rows []model.PayrollFormula) {
				t := newTable("NAME", "ELEMENT", "TYPE", "RESULTS", "EFFECTIVE")
				for _, f := range rows {
					t.AddRow(f.FormulaName, f.ElementName,
						model.LovLabel(model.LovFormulaTypes, string(f.FormulaType)),
						f.ResultElements, displayDate(f.EffectiveStart))
				}
				fmt.Println(t)
			})
	},
}

var formulaShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one payroll formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		effStr, _ := cmd.Flags().GetString("effective")
		f, err := payClient.GetFormula(cmd.Context(), args[0], dateFlag(effStr))
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(f)
			return nil
		}
		fmt.Printf("ID:        %s\n", f.FormulaID)
		fmt.Printf("Name:      %s\n", f.FormulaName)
		fmt.Printf("Element:   %s\n", f.ElementName)
		fmt.Printf("Type:      %s\n", model.LovLabel(model.LovFormulaTypes, string(f.FormulaType)))
		fmt.Printf("Effective: %s .. %s\n", displayDate(f.EffectiveStart), displayDate(f.EffectiveEnd))
		if f.FormulaDef != "" {
			fmt.Printf("Definition:\n%s\n", f.FormulaDef)
		}
		if len(f.Results) > 0 {
			fmt.Println("\nResults:")
			t := newTable("ID", "CODE", "ELEMENT", "INPUT VALUE", "EXPRESSION", "EFFECTIVE")
			for _, r := range f.Results {
				t.AddRow(r.ResultID, r.ResultCode, r.ElementName, r.InputValueName,
					r.FormulaExpr, displayDate(r.EffectiveStart))
			}
			fmt.Println(t)
		}
		return nil
	},
}

var formulaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a payroll formula",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		element, _ := cmd.Flags().GetString("element")
		ftype, _ := cmd.Flags().GetString("type")
		def, _ := cmd.Flags().GetString("definition")
		description, _ := cmd.Flags().GetString("description")
		effStr, _ := cmd.Flags().GetString("effective")

		f := &model.PayrollFormula{
			FormulaName:    name,
			ElementID:      element,
			FormulaType:    model.FormulaType(ftype),
			FormulaDef:     def,
			Description:    description,
			EffectiveStart: dateFlag(effStr),
		}
		resp, err := payClient.CreateFormula(cmd.Context(), f)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created formula %s\n", resp.NewID)
		return nil
	},
}

var formulaUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a payroll formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetFormula(ctx, args[0], model.Date{})
		if err != nil {
			return err
		}

		f := *current
		f.Results = nil
		if cmd.Flags().Changed("name") {
			f.FormulaName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("element") {
			f.ElementID, _ = cmd.Flags().GetString("element")
		}
		if cmd.Flags().Changed("type") {
			v, _ := cmd.Flags().GetString("type")
			f.FormulaType = model.FormulaType(v)
		}
		if cmd.Flags().Changed("definition") {
			f.FormulaDef, _ = cmd.Flags().GetString("definition")
		}
		if cmd.Flags().Changed("description") {
			f.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			f.EffectiveStart = dateFlag(effStr)
		}

		opts, proceed, err := decideUpdate(ctx, current.EffectiveStart, f.EffectiveStart)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("cancelled")
			return nil
		}
		resp, err := payClient.UpdateFormula(ctx, args[0], &f, opts)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var formulaDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payroll formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteFormula(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var formulaResultCmd = &cobra.Command{
	Use:   "result",
	Short: "Manage formula results",
}

func formulaResultEditor(ctx context.Context, formulaID string) (*editor.DetailList[model.FormulaResult], *childResponses, error) {
	f, err := payClient.GetFormula(ctx, formulaID, model.Date{})
	if err != nil {
		return nil, nil, err
	}
	rec := &childResponses{}
	dl := editor.NewDetailList(editor.DetailConfig[model.FormulaResult]{
		Ops: childDetailOps(rec,
			func(ctx context.Context, r *model.FormulaResult) (*client.InsertResponse, error) {
				return payClient.InsertFormulaResult(ctx, formulaID, r)
			},
			payClient.UpdateFormulaResult,
			payClient.DeleteFormulaResult,
		),
		ID:        func(r model.FormulaResult) string { return r.ResultID },
		SetID:     func(r *model.FormulaResult, id string) { r.ResultID = id },
		Key:       func(r model.FormulaResult) string { return r.ResultCode },
		Effective: func(r model.FormulaResult) model.Date { return r.EffectiveStart },
		Confirmer: terminalConfirmer(),
		Rows:      f.Results,
	})
	return dl, rec, nil
}

var formulaResultAddCmd = &cobra.Command{
	Use:   "add <formula-id>",
	Short: "Add a result to a formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, _ := cmd.Flags().GetString("code")
		element, _ := cmd.Flags().GetString("element")
		inputValue, _ := cmd.Flags().GetString("input-value")
		expr, _ := cmd.Flags().GetString("expression")
		effStr, _ := cmd.Flags().GetString("effective")

		r := model.FormulaResult{
			ResultCode:     code,
			ElementID:      element,
			InputValueID:   inputValue,
			FormulaExpr:    expr,
			EffectiveStart: dateFlag(effStr),
		}
		ctx := cmd.Context()
		dl, rec, err := formulaResultEditor(ctx, args[0])
		if err != nil {
			return err
		}
		if err := dl.Add(ctx, r); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(rec.inserted)
			return nil
		}
		fmt.Printf("created formula result %s\n", rec.inserted.NewID)
		return nil
	},
}

var formulaResultUpdateCmd = &cobra.Command{
	Use:   "update <formula-id> <result-id>",
	Short: "Update a formula result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := formulaResultEditor(ctx, args[0])
		if err != nil {
			return err
		}
		current, ok := dl.Get(args[1])
		if !ok {
			return fmt.Errorf("no result %q on formula %q", args[1], args[0])
		}

		r := current
		if cmd.Flags().Changed("code") {
			r.ResultCode, _ = cmd.Flags().GetString("code")
		}
		if cmd.Flags().Changed("element") {
			r.ElementID, _ = cmd.Flags().GetString("element")
		}
		if cmd.Flags().Changed("input-value") {
			r.InputValueID, _ = cmd.Flags().GetString("input-value")
		}
		if cmd.Flags().Changed("expression") {
			r.FormulaExpr, _ = cmd.Flags().GetString("expression")
		}
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			r.EffectiveStart = dateFlag(effStr)
		}

		if err := dl.Edit(ctx, args[1], r); err != nil {
			if errors.Is(err, editor.ErrEditCancelled) {
				fmt.Println("cancelled")
				return nil
			}
			return err
		}
		reportUpdate(rec.updated)
		return nil
	},
}

var formulaResultDeleteCmd = &cobra.Command{
	Use:   "delete <formula-id> <result-id>",
	Short: "Delete a formula result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := formulaResultEditor(ctx, args[0])
		if err != nil {
			return err
		}
		if err := dl.Delete(ctx, args[1]); err != nil {
			return err
		}
		reportDelete(rec.deleted)
		return nil
	},
}

func init() {
	addListFlags(formulaListCmd)
	formulaShowCmd.Flags().String("effective", "", "show the version in effect at this date (yyyy-MM-dd)")

	for _, c := range []*cobra.Command{formulaCreateCmd, formulaUpdateCmd} {
		c.Flags().String("name", "", "formula name")
		c.Flags().String("element", "", "element id")
		c.Flags().String("type", string(model.FormulaSimple), "formula type (FX or SP)")
		c.Flags().String("definition", "", "formula definition")
		c.Flags().String("description", "", "description")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}

	for _, c := range []*cobra.Command{formulaResultAddCmd, formulaResultUpdateCmd} {
		c.Flags().String("code", "", "result code")
		c.Flags().String("element", "", "target element id")
		c.Flags().String("input-value", "", "target input value id")
		c.Flags().String("expression", "", "result expression")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}

	formulaResultCmd.AddCommand(formulaResultAddCmd)
	formulaResultCmd.AddCommand(formulaResultUpdateCmd)
	formulaResultCmd.AddCommand(formulaResultDeleteCmd)

	formulaCmd.AddCommand(formulaListCmd)
	formulaCmd.AddCommand(formulaShowCmd)
	formulaCmd.AddCommand(formulaCreateCmd)
	formulaCmd.AddCommand(formulaUpdateCmd)
	formulaCmd.AddCommand(formulaDeleteCmd)
	formulaCmd.AddCommand(formulaResultCmd)
}
