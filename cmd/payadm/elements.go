package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/editor"
	"github.com/freshcms/payadm/internal/model"
)

var elementSearchOptions = []model.SearchOption{
	{Name: "element_code", Label: "Code"},
	{Name: "element_name", Label: "Name"},
	{Name: "classification_name", Label: "Classification"},
	{Name: "processing_priority", Label: "Priority", Type: model.OptionNumber},
	{Name: "effective_start", Label: "Effective", Type: model.OptionDate},
}

var elementCmd = &cobra.Command{
	Use:     "element",
	Short:   "Manage payroll elements",
	GroupID: "catalog",
}

var elementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payroll elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "elements", elementSearchOptions, payClient.ListElements,
			func(rows []model.PayrollElement) {
				t := newTable("CODE", "NAME", "CLASSIFICATION", "PRIORITY", "RECURRING", "EFFECTIVE")
				for _, e := range rows {
					t.AddRow(e.ElementCode, e.ElementName, e.ClassificationName,
						e.ProcessingPriority, displayFlag(e.Recurring), displayDate(e.EffectiveStart))
				}
				fmt.Println(t)
			})
	},
}

var elementShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one payroll element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		effStr, _ := cmd.Flags().GetString("effective")
		e, err := payClient.GetElement(cmd.Context(), args[0], dateFlag(effStr))
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(e)
			return nil
		}
		fmt.Printf("ID:             %s\n", e.ElementID)
		fmt.Printf("Code:           %s\n", e.ElementCode)
		fmt.Printf("Name:           %s\n", e.ElementName)
		fmt.Printf("Classification: %s\n", e.ClassificationName)
		fmt.Printf("Priority:       %d\n", e.ProcessingPriority)
		fmt.Printf("Recurring:      %s\n", displayFlag(e.Recurring))
		fmt.Printf("Once/period:    %s\n", displayFlag(e.OncePerPeriod))
		if e.RetroElementName != "" {
			fmt.Printf("Retro element:  %s\n", e.RetroElementName)
		}
		fmt.Printf("Effective:      %s .. %s\n", displayDate(e.EffectiveStart), displayDate(e.EffectiveEnd))
		if e.Description != "" {
			fmt.Printf("Description:    %s\n", e.Description)
		}
		if len(e.Values) > 0 {
			fmt.Println("\nInput values:")
			t := newTable("ID", "CODE", "NAME", "TYPE", "DEFAULT", "EFFECTIVE")
			for _, v := range e.Values {
				t.AddRow(v.InputValueID, v.ValueCode, v.ValueName, string(v.DataType),
					v.DefaultValue, displayDate(v.EffectiveStart))
			}
			fmt.Println(t)
		}
		return nil
	},
}

// parseValueSpec reads a --value flag: code:name:type[:default].
func parseValueSpec(spec string) (model.InputValue, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return model.InputValue{}, fmt.Errorf("invalid value spec %q (expected code:name:type[:default])", spec)
	}
	v := model.InputValue{
		ValueCode: parts[0],
		ValueName: parts[1],
		DataType:  model.DataType(strings.ToUpper(parts[2])),
	}
	if len(parts) == 4 {
		v.DefaultValue = parts[3]
	}
	switch v.DataType {
	case model.DataCharacter, model.DataNumber, model.DataDate:
	default:
		return model.InputValue{}, fmt.Errorf("invalid data type %q (C, N or D)", parts[2])
	}
	return v, nil
}

var elementCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a payroll element",
	RunE: func(cmd *cobra.Command, args []string) error {
		code, _ := cmd.Flags().GetString("code")
		name, _ := cmd.Flags().GetString("name")
		classification, _ := cmd.Flags().GetString("classification")
		priority, _ := cmd.Flags().GetInt("priority")
		recurring, _ := cmd.Flags().GetBool("recurring")
		oncePerPeriod, _ := cmd.Flags().GetBool("once-per-period")
		retro, _ := cmd.Flags().GetString("retro-element")
		description, _ := cmd.Flags().GetString("description")
		effStr, _ := cmd.Flags().GetString("effective")
		valueSpecs, _ := cmd.Flags().GetStringArray("value")

		e := &model.PayrollElement{
			ElementCode:        code,
			ElementName:        name,
			ClassificationID:   classification,
			ProcessingPriority: priority,
			Recurring:          model.Flag(recurring),
			OncePerPeriod:      model.Flag(oncePerPeriod),
			RetroElementID:     retro,
			Description:        description,
			EffectiveStart:     dateFlag(effStr),
		}
		for _, spec := range valueSpecs {
			v, err := parseValueSpec(spec)
			if err != nil {
				return err
			}
			e.Values = append(e.Values, v)
		}

		resp, err := payClient.CreateElement(cmd.Context(), e)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created element %s\n", resp.NewID)
		return nil
	},
}

var elementUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a payroll element",
	Long: `Update a payroll element. Moving --effective later than the current
version's start prompts whether to correct the version in place or insert
a new one from the given date.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetElement(ctx, args[0], model.Date{})
		if err != nil {
			return err
		}

		e := *current
		e.Values = nil // input values are edited through their own commands
		if cmd.Flags().Changed("code") {
			e.ElementCode, _ = cmd.Flags().GetString("code")
		}
		if cmd.Flags().Changed("name") {
			e.ElementName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("classification") {
			e.ClassificationID, _ = cmd.Flags().GetString("classification")
		}
		if cmd.Flags().Changed("priority") {
			e.ProcessingPriority, _ = cmd.Flags().GetInt("priority")
		}
		if cmd.Flags().Changed("recurring") {
			v, _ := cmd.Flags().GetBool("recurring")
			e.Recurring = model.Flag(v)
		}
		if cmd.Flags().Changed("once-per-period") {
			v, _ := cmd.Flags().GetBool("once-per-period")
			e.OncePerPeriod = model.Flag(v)
		}
		if cmd.Flags().Changed("retro-element") {
			e.RetroElementID, _ = cmd.Flags().GetString("retro-element")
		}
		if cmd.Flags().Changed("description") {
			e.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			e.EffectiveStart = dateFlag(effStr)
		}

		opts, proceed, err := decideUpdate(ctx, current.EffectiveStart, e.EffectiveStart)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("cancelled")
			return nil
		}
		resp, err := payClient.UpdateElement(ctx, args[0], &e, opts)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var elementDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payroll element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteElement(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var elementValueCmd = &cobra.Command{
	Use:   "value",
	Short: "Manage element input values",
}

// elementValueEditor loads an element's input values into the detail
// editor, so mutations get sibling duplicate checks and the
// change-insert decision.
func elementValueEditor(ctx context.Context, elementID string) (*editor.DetailList[model.InputValue], *childResponses, error) {
	e, err := payClient.GetElement(ctx, elementID, model.Date{})
	if err != nil {
		return nil, nil, err
	}
	rec := &childResponses{}
	dl := editor.NewDetailList(editor.DetailConfig[model.InputValue]{
		Ops: childDetailOps(rec,
			func(ctx context.Context, v *model.InputValue) (*client.InsertResponse, error) {
				return payClient.InsertInputValue(ctx, elementID, v)
			},
			payClient.UpdateInputValue,
			payClient.DeleteInputValue,
		),
		ID:        func(v model.InputValue) string { return v.InputValueID },
		SetID:     func(v *model.InputValue, id string) { v.InputValueID = id },
		Key:       func(v model.InputValue) string { return v.ValueCode },
		Effective: func(v model.InputValue) model.Date { return v.EffectiveStart },
		Confirmer: terminalConfirmer(),
		Rows:      e.Values,
	})
	return dl, rec, nil
}

var elementValueAddCmd = &cobra.Command{
	Use:   "add <element-id> <code:name:type[:default]>",
	Short: "Add an input value to an element",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValueSpec(args[1])
		if err != nil {
			return err
		}
		effStr, _ := cmd.Flags().GetString("effective")
		v.EffectiveStart = dateFlag(effStr)

		ctx := cmd.Context()
		dl, rec, err := elementValueEditor(ctx, args[0])
		if err != nil {
			return err
		}
		if err := dl.Add(ctx, v); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(rec.inserted)
			return nil
		}
		fmt.Printf("created input value %s\n", rec.inserted.NewID)
		return nil
	},
}

var elementValueUpdateCmd = &cobra.Command{
	Use:   "update <element-id> <value-id>",
	Short: "Update an input value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := elementValueEditor(ctx, args[0])
		if err != nil {
			return err
		}
		current, ok := dl.Get(args[1])
		if !ok {
			return fmt.Errorf("no input value %q on element %q", args[1], args[0])
		}

		v := current
		if cmd.Flags().Changed("name") {
			v.ValueName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("default") {
			v.DefaultValue, _ = cmd.Flags().GetString("default")
		}
		if cmd.Flags().Changed("description") {
			v.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			v.EffectiveStart = dateFlag(effStr)
		}

		if err := dl.Edit(ctx, args[1], v); err != nil {
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

var elementValueDeleteCmd = &cobra.Command{
	Use:   "delete <element-id> <value-id>",
	Short: "Delete an input value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := elementValueEditor(ctx, args[0])
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

func reportUpdate(resp *client.UpdateResponse) {
	if jsonOutput {
		printJSON(resp)
		return
	}
	if resp.NewHistory.Bool() {
		fmt.Printf("updated %d row(s), new version inserted\n", resp.Count)
		return
	}
	fmt.Printf("updated %d row(s)\n", resp.Count)
}

func reportDelete(resp *client.DeleteResponse) {
	if jsonOutput {
		printJSON(resp)
		return
	}
	fmt.Printf("deleted %d row(s)\n", resp.Count)
}

func init() {
	addListFlags(elementListCmd)
	elementShowCmd.Flags().String("effective", "", "show the version in effect at this date (yyyy-MM-dd)")

	for _, c := range []*cobra.Command{elementCreateCmd, elementUpdateCmd} {
		c.Flags().String("code", "", "element code")
		c.Flags().String("name", "", "element name")
		c.Flags().String("classification", "", "classification id")
		c.Flags().Int("priority", 0, "processing priority")
		c.Flags().Bool("recurring", false, "recurring element")
		c.Flags().Bool("once-per-period", false, "processed at most once per period")
		c.Flags().String("retro-element", "", "retro element id")
		c.Flags().String("description", "", "description")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}
	elementCreateCmd.Flags().StringArray("value", nil, "input value (code:name:type[:default], repeatable)")

	elementValueAddCmd.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	elementValueUpdateCmd.Flags().String("name", "", "value name")
	elementValueUpdateCmd.Flags().String("default", "", "default value")
	elementValueUpdateCmd.Flags().String("description", "", "description")
	elementValueUpdateCmd.Flags().String("effective", "", "effective start (yyyy-MM-dd)")

	elementValueCmd.AddCommand(elementValueAddCmd)
	elementValueCmd.AddCommand(elementValueUpdateCmd)
	elementValueCmd.AddCommand(elementValueDeleteCmd)

	elementCmd.AddCommand(elementListCmd)
	elementCmd.AddCommand(elementShowCmd)
	elementCmd.AddCommand(elementCreateCmd)
	elementCmd.AddCommand(elementUpdateCmd)
	elementCmd.AddCommand(elementDeleteCmd)
	elementCmd.AddCommand(elementValueCmd)
}
