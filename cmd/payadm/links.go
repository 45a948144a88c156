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

var linkSearchOptions = []model.SearchOption{
	{Name: "element_name", Label: "Element"},
	{Name: "department_name", Label: "Department"},
	{Name: "office_name", Label: "Office"},
	{Name: "people_group", Label: "People group", Options: model.LovOptions(model.LovPeopleGroup)},
	{Name: "employee_category", Label: "Category", Options: model.LovOptions(model.LovEmployeeCategory)},
	{Name: "effective_start", Label: "Effective", Type: model.OptionDate},
}

var linkCmd = &cobra.Command{
	Use:     "link",
	Short:   "Manage element links",
	GroupID: "catalog",
}

// linkScope flattens the populated workforce-scope columns of a link for
// display.
func linkScope(l model.ElementLink) string {
	var parts []string
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+"="+v)
		}
	}
	add("office", l.OfficeName)
	add("location", l.LocationName)
	add("department", l.DepartmentName)
	add("project", l.ProjectName)
	add("position", l.PositionName)
	add("grade", l.GradeName)
	add("pay-group", l.PayGroupName)
	add("people-group", model.LovLabel(model.LovPeopleGroup, l.PeopleGroup))
	add("category", model.LovLabel(model.LovEmployeeCategory, l.EmployeeCategory))
	if len(parts) == 0 {
		return "everyone"
	}
	return strings.Join(parts, ", ")
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List element links",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "links", linkSearchOptions, payClient.ListLinks,
			func(rows []model.ElementLink) {
				t := newTable("ID", "ELEMENT", "SCOPE", "EFFECTIVE")
				for _, l := range rows {
					t.AddRow(l.LinkID, l.ElementName, linkScope(l), displayDate(l.EffectiveStart))
				}
				fmt.Println(t)
			})
	},
}

var linkShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one element link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		effStr, _ := cmd.Flags().GetString("effective")
		l, err := payClient.GetLink(cmd.Context(), args[0], dateFlag(effStr))
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(l)
			return nil
		}
		fmt.Printf("ID:        %s\n", l.LinkID)
		fmt.Printf("Element:   %s\n", l.ElementName)
		fmt.Printf("Scope:     %s\n", linkScope(*l))
		fmt.Printf("Effective: %s .. %s\n", displayDate(l.EffectiveStart), displayDate(l.EffectiveEnd))
		if l.Description != "" {
			fmt.Printf("Description: %s\n", l.Description)
		}
		if len(l.Values) > 0 {
			fmt.Println("\nValue overrides:")
			t := newTable("ID", "INPUT VALUE", "DEFAULT", "OVERRIDE", "EFFECTIVE")
			for _, v := range l.Values {
				t.AddRow(v.ValueID, v.InputValueName, v.DefaultValue, v.LinkValue,
					displayDate(v.EffectiveStart))
			}
			fmt.Println(t)
		}
		return nil
	},
}

var linkCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an element link",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := &model.ElementLink{}
		l.ElementID, _ = cmd.Flags().GetString("element")
		l.OfficeID, _ = cmd.Flags().GetInt("office")
		l.LocationID, _ = cmd.Flags().GetInt("location")
		l.DepartmentID, _ = cmd.Flags().GetInt("department")
		l.ProjectID, _ = cmd.Flags().GetInt("project")
		l.PositionID, _ = cmd.Flags().GetInt("position")
		l.GradeID, _ = cmd.Flags().GetInt("grade")
		l.PayGroupID, _ = cmd.Flags().GetString("pay-group")
		l.PeopleGroup, _ = cmd.Flags().GetString("people-group")
		l.EmployeeCategory, _ = cmd.Flags().GetString("category")
		l.Description, _ = cmd.Flags().GetString("description")
		effStr, _ := cmd.Flags().GetString("effective")
		l.EffectiveStart = dateFlag(effStr)

		resp, err := payClient.CreateLink(cmd.Context(), l)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created link %s\n", resp.NewID)
		return nil
	},
}

var linkUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an element link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetLink(ctx, args[0], model.Date{})
		if err != nil {
			return err
		}

		l := *current
		l.Values = nil
		setInt := func(flag string, dst *int) {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetInt(flag)
			}
		}
		setStr := func(flag string, dst *string) {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetString(flag)
			}
		}
		setStr("element", &l.ElementID)
		setInt("office", &l.OfficeID)
		setInt("location", &l.LocationID)
		setInt("department", &l.DepartmentID)
		setInt("project", &l.ProjectID)
		setInt("position", &l.PositionID)
		setInt("grade", &l.GradeID)
		setStr("pay-group", &l.PayGroupID)
		setStr("people-group", &l.PeopleGroup)
		setStr("category", &l.EmployeeCategory)
		setStr("description", &l.Description)
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			l.EffectiveStart = dateFlag(effStr)
		}

		opts, proceed, err := decideUpdate(ctx, current.EffectiveStart, l.EffectiveStart)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("cancelled")
			return nil
		}
		resp, err := payClient.UpdateLink(ctx, args[0], &l, opts)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an element link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteLink(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var linkValueCmd = &cobra.Command{
	Use:   "value",
	Short: "Manage link value overrides",
}

// linkValueEditor loads a link's value overrides into the detail editor.
// The uniqueness key is the overridden input value, one override each.
func linkValueEditor(ctx context.Context, linkID string) (*editor.DetailList[model.LinkValue], *childResponses, error) {
	l, err := payClient.GetLink(ctx, linkID, model.Date{})
	if err != nil {
		return nil, nil, err
	}
	rec := &childResponses{}
	dl := editor.NewDetailList(editor.DetailConfig[model.LinkValue]{
		Ops: childDetailOps(rec,
			func(ctx context.Context, v *model.LinkValue) (*client.InsertResponse, error) {
				return payClient.InsertLinkValue(ctx, linkID, v)
			},
			payClient.UpdateLinkValue,
			payClient.DeleteLinkValue,
		),
		ID:        func(v model.LinkValue) string { return v.ValueID },
		SetID:     func(v *model.LinkValue, id string) { v.ValueID = id },
		Key:       func(v model.LinkValue) string { return v.InputValueID },
		Effective: func(v model.LinkValue) model.Date { return v.EffectiveStart },
		Confirmer: terminalConfirmer(),
		Rows:      l.Values,
	})
	return dl, rec, nil
}

var linkValueAddCmd = &cobra.Command{
	Use:   "add <link-id>",
	Short: "Add a value override to a link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputValue, _ := cmd.Flags().GetString("input-value")
		override, _ := cmd.Flags().GetString("value")
		effStr, _ := cmd.Flags().GetString("effective")

		v := model.LinkValue{
			InputValueID:   inputValue,
			LinkValue:      override,
			EffectiveStart: dateFlag(effStr),
		}
		ctx := cmd.Context()
		dl, rec, err := linkValueEditor(ctx, args[0])
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
		fmt.Printf("created link value %s\n", rec.inserted.NewID)
		return nil
	},
}

var linkValueUpdateCmd = &cobra.Command{
	Use:   "update <link-id> <value-id>",
	Short: "Update a link value override",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := linkValueEditor(ctx, args[0])
		if err != nil {
			return err
		}
		current, ok := dl.Get(args[1])
		if !ok {
			return fmt.Errorf("no value override %q on link %q", args[1], args[0])
		}

		v := current
		if cmd.Flags().Changed("value") {
			v.LinkValue, _ = cmd.Flags().GetString("value")
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

var linkValueDeleteCmd = &cobra.Command{
	Use:   "delete <link-id> <value-id>",
	Short: "Delete a link value override",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := linkValueEditor(ctx, args[0])
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
	addListFlags(linkListCmd)
	linkShowCmd.Flags().String("effective", "", "show the version in effect at this date (yyyy-MM-dd)")

	for _, c := range []*cobra.Command{linkCreateCmd, linkUpdateCmd} {
		c.Flags().String("element", "", "linked element id")
		c.Flags().Int("office", 0, "office id")
		c.Flags().Int("location", 0, "location id")
		c.Flags().Int("department", 0, "department id")
		c.Flags().Int("project", 0, "project id")
		c.Flags().Int("position", 0, "position id")
		c.Flags().Int("grade", 0, "grade id")
		c.Flags().String("pay-group", "", "pay group id")
		c.Flags().String("people-group", "", "people group key")
		c.Flags().String("category", "", "employee category key")
		c.Flags().String("description", "", "description")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}

	for _, c := range []*cobra.Command{linkValueAddCmd, linkValueUpdateCmd} {
		c.Flags().String("input-value", "", "input value id")
		c.Flags().String("value", "", "override value")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}

	linkValueCmd.AddCommand(linkValueAddCmd)
	linkValueCmd.AddCommand(linkValueUpdateCmd)
	linkValueCmd.AddCommand(linkValueDeleteCmd)

	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkShowCmd)
	linkCmd.AddCommand(linkCreateCmd)
	linkCmd.AddCommand(linkUpdateCmd)
	linkCmd.AddCommand(linkDeleteCmd)
	linkCmd.AddCommand(linkValueCmd)
}
