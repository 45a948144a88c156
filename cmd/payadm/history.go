package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/history"
	"github.com/freshcms/payadm/internal/model"
)

var historyCmd = &cobra.Command{
	Use:   "history <component> <id>",
	Short: "Show the version timeline of a record",
	Long: `Show the effective-dated version timeline of a record.

Components: pay-element-classification, pay-group, pay-salary-basis,
pay-element, pay-input-value, pay-formula, pay-formula-result,
pay-balance, pay-balance-feed, pay-element-link, pay-element-link-value,
pay-per-entry, pay-per-entry-value, pay-process.`,
	GroupID: "views",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		component := model.Component(args[0])
		if !component.IsValid() {
			return fmt.Errorf("unknown component %q", args[0])
		}
		viewer := history.NewViewer(payClient)
		items, err := viewer.Open(cmd.Context(), component, args[1])
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(items)
			return nil
		}
		if model.NoHistory(items) {
			fmt.Println("no history")
			return nil
		}
		t := newTable("#", "EFFECTIVE FROM", "EFFECTIVE TO")
		for i, h := range items {
			from := displayDate(h.EffectiveStart)
			if h.EffectiveStart.IsZero() {
				from = "the beginning"
			}
			to := displayDate(h.EffectiveEnd)
			if h.EffectiveEnd.IsZero() {
				to = "open"
			}
			t.AddRow(i+1, from, to)
		}
		fmt.Println(t)
		return nil
	},
}
