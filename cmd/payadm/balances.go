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

var balanceSearchOptions = []model.SearchOption{
	{Name: "balance_name", Label: "Name"},
	{Name: "balance_feed_type", Label: "Fed by", Options: model.LovOptions(model.LovBalanceFeedType)},
}

var balanceCmd = &cobra.Command{
	Use:     "balance",
	Short:   "Manage payroll balances",
	GroupID: "catalog",
}

var balanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payroll balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, "balances", balanceSearchOptions, payClient.ListBalances,
			func(rows []model.PayrollBalance) {
				t := newTable("NAME", "FED BY", "DESCRIPTION")
				for _, b := range rows {
					t.AddRow(b.BalanceName,
						model.LovLabel(model.LovBalanceFeedType, string(b.BalanceFeedType)),
						b.Description)
				}
				fmt.Println(t)
			})
	},
}

var balanceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one payroll balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := payClient.GetBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(b)
			return nil
		}
		fmt.Printf("ID:     %s\n", b.BalanceID)
		fmt.Printf("Name:   %s\n", b.BalanceName)
		fmt.Printf("Fed by: %s\n", model.LovLabel(model.LovBalanceFeedType, string(b.BalanceFeedType)))
		if b.Description != "" {
			fmt.Printf("Description: %s\n", b.Description)
		}
		if len(b.Feeds) > 0 {
			fmt.Println("\nFeeds:")
			t := newTable("ID", "SOURCE", "DIRECTION", "EFFECTIVE")
			for _, f := range b.Feeds {
				source := f.ElementName
				if source == "" {
					source = f.ClassificationName
				}
				t.AddRow(f.FeedID, source,
					model.LovLabel(model.LovAddSubtract, string(f.AddSubtract)),
					displayDate(f.EffectiveStart))
			}
			fmt.Println(t)
		}
		return nil
	},
}

var balanceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a payroll balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		feedType, _ := cmd.Flags().GetString("fed-by")
		description, _ := cmd.Flags().GetString("description")

		b := &model.PayrollBalance{
			BalanceName:     name,
			BalanceFeedType: model.BalanceFeedType(feedType),
			Description:     description,
		}
		resp, err := payClient.CreateBalance(cmd.Context(), b)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("created balance %s\n", resp.NewID)
		return nil
	},
}

var balanceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a payroll balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		current, err := payClient.GetBalance(ctx, args[0])
		if err != nil {
			return err
		}

		b := *current
		b.Feeds = nil
		if cmd.Flags().Changed("name") {
			b.BalanceName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("fed-by") {
			v, _ := cmd.Flags().GetString("fed-by")
			b.BalanceFeedType = model.BalanceFeedType(v)
		}
		if cmd.Flags().Changed("description") {
			b.Description, _ = cmd.Flags().GetString("description")
		}

		// Balance heads carry no effective date; updates are always
		// corrections.
		resp, err := payClient.UpdateBalance(ctx, args[0], &b, nil)
		if err != nil {
			return err
		}
		reportUpdate(resp)
		return nil
	},
}

var balanceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a payroll balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := payClient.DeleteBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		reportDelete(resp)
		return nil
	},
}

var balanceFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Manage balance feeds",
}

// balanceFeedEditor loads a balance's feeds into the detail editor. The
// uniqueness key is the feed source, so a balance cannot be fed twice by
// the same element or classification.
func balanceFeedEditor(ctx context.Context, balanceID string) (*editor.DetailList[model.BalanceFeed], *childResponses, error) {
	b, err := payClient.GetBalance(ctx, balanceID)
	if err != nil {
		return nil, nil, err
	}
	rec := &childResponses{}
	dl := editor.NewDetailList(editor.DetailConfig[model.BalanceFeed]{
		Ops: childDetailOps(rec,
			func(ctx context.Context, f *model.BalanceFeed) (*client.InsertResponse, error) {
				return payClient.InsertBalanceFeed(ctx, balanceID, f)
			},
			payClient.UpdateBalanceFeed,
			payClient.DeleteBalanceFeed,
		),
		ID:    func(f model.BalanceFeed) string { return f.FeedID },
		SetID: func(f *model.BalanceFeed, id string) { f.FeedID = id },
		Key: func(f model.BalanceFeed) string {
			if f.ElementID != "" {
				return f.ElementID
			}
			return f.ClassificationID
		},
		Effective: func(f model.BalanceFeed) model.Date { return f.EffectiveStart },
		Confirmer: terminalConfirmer(),
		Rows:      b.Feeds,
	})
	return dl, rec, nil
}

var balanceFeedAddCmd = &cobra.Command{
	Use:   "add <balance-id>",
	Short: "Add a feed to a balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		element, _ := cmd.Flags().GetString("element")
		classification, _ := cmd.Flags().GetString("classification")
		direction, _ := cmd.Flags().GetString("direction")
		effStr, _ := cmd.Flags().GetString("effective")

		f := model.BalanceFeed{
			ElementID:        element,
			ClassificationID: classification,
			AddSubtract:      model.AddSubtract(direction),
			EffectiveStart:   dateFlag(effStr),
		}
		ctx := cmd.Context()
		dl, rec, err := balanceFeedEditor(ctx, args[0])
		if err != nil {
			return err
		}
		if err := dl.Add(ctx, f); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(rec.inserted)
			return nil
		}
		fmt.Printf("created balance feed %s\n", rec.inserted.NewID)
		return nil
	},
}

var balanceFeedUpdateCmd = &cobra.Command{
	Use:   "update <balance-id> <feed-id>",
	Short: "Update a balance feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := balanceFeedEditor(ctx, args[0])
		if err != nil {
			return err
		}
		current, ok := dl.Get(args[1])
		if !ok {
			return fmt.Errorf("no feed %q on balance %q", args[1], args[0])
		}

		f := current
		if cmd.Flags().Changed("element") {
			f.ElementID, _ = cmd.Flags().GetString("element")
		}
		if cmd.Flags().Changed("classification") {
			f.ClassificationID, _ = cmd.Flags().GetString("classification")
		}
		if cmd.Flags().Changed("direction") {
			v, _ := cmd.Flags().GetString("direction")
			f.AddSubtract = model.AddSubtract(v)
		}
		if cmd.Flags().Changed("effective") {
			effStr, _ := cmd.Flags().GetString("effective")
			f.EffectiveStart = dateFlag(effStr)
		}

		if err := dl.Edit(ctx, args[1], f); err != nil {
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

var balanceFeedDeleteCmd = &cobra.Command{
	Use:   "delete <balance-id> <feed-id>",
	Short: "Delete a balance feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dl, rec, err := balanceFeedEditor(ctx, args[0])
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
	addListFlags(balanceListCmd)

	for _, c := range []*cobra.Command{balanceCreateCmd, balanceUpdateCmd} {
		c.Flags().String("name", "", "balance name")
		c.Flags().String("fed-by", string(model.FeedByElement), "feed source kind (E or C)")
		c.Flags().String("description", "", "description")
	}

	for _, c := range []*cobra.Command{balanceFeedAddCmd, balanceFeedUpdateCmd} {
		c.Flags().String("element", "", "feeding element id")
		c.Flags().String("classification", "", "feeding classification id")
		c.Flags().String("direction", string(model.FeedAdd), "contribution direction (+ or -)")
		c.Flags().String("effective", "", "effective start (yyyy-MM-dd)")
	}

	balanceFeedCmd.AddCommand(balanceFeedAddCmd)
	balanceFeedCmd.AddCommand(balanceFeedUpdateCmd)
	balanceFeedCmd.AddCommand(balanceFeedDeleteCmd)

	balanceCmd.AddCommand(balanceListCmd)
	balanceCmd.AddCommand(balanceShowCmd)
	balanceCmd.AddCommand(balanceCreateCmd)
	balanceCmd.AddCommand(balanceUpdateCmd)
	balanceCmd.AddCommand(balanceDeleteCmd)
	balanceCmd.AddCommand(balanceFeedCmd)
}
