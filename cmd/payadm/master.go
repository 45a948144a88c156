package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/model"
)

// Commands for the small master tables: element classifications, payroll
// groups and salary bases.

var classificationCmd = &cobra.Command{
	Use:     "classification",
	Short:   "Manage element classifications",
	GroupID: "catalog",
}

var classificationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List element classifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []model.SearchOption{
			{Name: "classification_name", Label: "Name"},
			{Name: "default_priority", Label: "Priority", Type: model.OptionNumber},
		}
		return runList(cmd, "classifications", opts, payClient.ListClassifications,
			func(rows []model.ElementClassification) {
				t := newTable("ID", "NAME", "DEFAULT PRIORITY", "DESCRIPTION")
				for _, c := range rows {
					t.AddRow(c.ClassificationID, c.ClassificationName, c.DefaultPriority, c.Description)
				}
				fmt.Println(t)
			})
	},
}

var classificationCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an element classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, _ := cmd.Flags().GetInt("priority")
		description, _ := cmd.Flags().GetString("description")
		resp, err := payClient.CreateClassification(cmd.Context(), &model.ElementClassification{
			ClassificationName: args[0],
			DefaultPriority:    priority,
			Description:        description,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created classification %s\n", resp.NewID)
		return nil
	},
}

var classificationUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an element classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetClassification(ctx, args[0])
		if err != nil {
			return err
		}
		c := *current
		if cmd.Flags().Changed("name") {
			c.ClassificationName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("priority") {
			c.DefaultPriority, _ = cmd.Flags().GetInt("priority")
		}
		if cmd.Flags().Changed("description") {
			c.Description, _ = cmd.Flags().GetString("description")
		}
		resp, err := payClient.UpdateClassification(ctx, args[0], &c, nil)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var classificationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an element classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteClassification(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var groupCmd = &cobra.Command{
	Use:     "group",
	Short:   "Manage payroll groups",
	GroupID: "catalog",
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payroll groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []model.SearchOption{
			{Name: "pay_group_name", Label: "Name"},
			{Name: "effective_start", Label: "Effective", Type: model.OptionDate},
		}
		return runList(cmd, "groups", opts, payClient.ListGroups,
			func(rows []model.PayrollGroup) {
				t := newTable("ID", "NAME", "EFFECTIVE", "DESCRIPTION")
				for _, g := range rows {
					t.AddRow(g.PayGroupID, g.PayGroupName, displayDate(g.EffectiveStart), g.Description)
				}
				fmt.Println(t)
			})
	},
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a payroll group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		effStr, _ := cmd.Flags().GetString("effective")
		resp, err := payClient.CreateGroup(cmd.Context(), &model.PayrollGroup{
			PayGroupName:   args[0],
			Description:    description,
			EffectiveStart: dateFlag(effStr),
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created group %s\n", resp.NewID)
		return nil
	},
}

var groupUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a payroll group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetGroup(ctx, args[0], model.Date{})
		if err != nil {
			return err
		}
		g := *current
		if cmd.Flags().Changed("name") {
			g.PayGroupName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("description") {
			g.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			g.EffectiveStart = dateFlag(effStr)
		}

		opts, proceed, err := decideUpdate(ctx, current.EffectiveStart, g.EffectiveStart)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("cancelled")
			return nil
		}
		resp, err := payClient.UpdateGroup(ctx, args[0], &g, opts)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payroll group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var salaryBasisCmd = &cobra.Command{
	Use:     "salary-basis",
	Short:   "Manage salary bases",
	GroupID: "catalog",
}

var salaryBasisListCmd = &cobra.Command{
	Use:   "list",
	Short: "List salary bases",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []model.SearchOption{
			{Name: "salary_basis_code", Label: "Code"},
			{Name: "salary_basis_name", Label: "Name"},
			{Name: "element_name", Label: "Element"},
		}
		return runList(cmd, "salary-bases", opts, payClient.ListSalaryBases,
			func(rows []model.SalaryBasis) {
				t := newTable("ID", "CODE", "NAME", "ELEMENT", "INPUT VALUE")
				for _, s := range rows {
					t.AddRow(s.SalaryBasisID, s.SalaryBasisCode, s.SalaryBasisName,
						s.ElementName, s.InputValueName)
				}
				fmt.Println(t)
			})
	},
}

var salaryBasisCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a salary basis",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &model.SalaryBasis{}
		s.SalaryBasisCode, _ = cmd.Flags().GetString("code")
		s.SalaryBasisName, _ = cmd.Flags().GetString("name")
		s.ElementID, _ = cmd.Flags().GetString("element")
		s.InputValueID, _ = cmd.Flags().GetString("input-value")
		s.Description, _ = cmd.Flags().GetString("description")
		resp, err := payClient.CreateSalaryBasis(cmd.Context(), s)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created salary basis %s\n", resp.NewID)
		return nil
	},
}

var salaryBasisUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a salary basis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetSalaryBasis(ctx, args[0])
		if err != nil {
			return err
		}
		s := *current
		setStr := func(flag string, dst *string) {
			if cmd.Flags().Changed(flag) {
				*dst, _ = cmd.Flags().GetString(flag)
			}
		}
		setStr("code", &s.SalaryBasisCode)
		setStr("name", &s.SalaryBasisName)
		setStr("element", &s.ElementID)
		setStr("input-value", &s.InputValueID)
		setStr("description", &s.Description)
		resp, err := payClient.UpdateSalaryBasis(ctx, args[0], &s, nil)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var salaryBasisDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a salary basis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteSalaryBasis(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

func init() {
	addListFlags(classificationListCmd)
	for _, c := range []*cobra.Command{classificationCreateCmd, classificationUpdateCmd} {
		c.Flags().String("name", "", "classification name")
		c.Flags().Int("priority", 0, "default processing priority")
		c.Flags().String("description", "", "description")
	}
	classificationCmd.AddCommand(classificationListCmd)
	classificationCmd.AddCommand(classificationCreateCmd)
	classificationCmd.AddCommand(classificationUpdateCmd)
	classificationCmd.AddCommand(classificationDeleteCmd)

	addListFlags(groupListCmd)
	for _, c := range []*cobra.Command{groupCreateCmd, groupUpdateCmd} {
		c.Flags().String("name", "", "group name")
		c.Flags().String("description", "", "description")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupUpdateCmd)
	groupCmd.AddCommand(groupDeleteCmd)

	addListFlags(salaryBasisListCmd)
	for _, c := range []*cobra.Command{salaryBasisCreateCmd, salaryBasisUpdateCmd} {
		c.Flags().String("code", "", "salary basis code")
		c.Flags().String("name", "", "salary basis name")
		c.Flags().String("element", "", "basic salary element id")
		c.Flags().String("input-value", "", "basic salary input value id")
		c.Flags().String("description", "", "description")
	}
	salaryBasisCmd.AddCommand(salaryBasisListCmd)
	salaryBasisCmd.AddCommand(salaryBasisCreateCmd)
	salaryBasisCmd.AddCommand(salaryBasisUpdateCmd)
	salaryBasisCmd.AddCommand(salaryBasisDeleteCmd)
}
