package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/client"
	"github.com/freshcms/payadm/internal/config"
	"github.com/freshcms/payadm/internal/progress"
	"github.com/freshcms/payadm/internal/state"
	"github.com/freshcms/payadm/internal/ui"
)

var (
	serverURL   string
	token       string
	profileName string
	jsonOutput  bool
	noColorFlag bool

	payClient  client.PayrollClient
	listStore  state.Store
	reqCounter progress.Counter
)

var rootCmd = &cobra.Command{
	Use:   "payadm <command>",
	Short: "CLI client for the payroll administration service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColorFlag || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}

		cfg, err := config.Load(profileName)
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		if token != "" {
			cfg.Token = token
		}

		c := client.NewHTTPClient(cfg.ServerURL, cfg.Token, &reqCounter)
		c.SetTimeout(cfg.Timeout)
		payClient = c

		durable, session, err := state.DefaultDirs()
		if err != nil {
			return fmt.Errorf("resolving state dirs: %w", err)
		}
		listStore = state.Open(durable, session)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if payClient != nil {
			payClient.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (overrides profile and PAYADM_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token (overrides profile and PAYADM_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "named server profile")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "catalog", Title: "Element catalog:"},
		&cobra.Group{ID: "payroll", Title: "Payroll:"},
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)
	cobra.EnableCommandSorting = false

	// Element catalog
	rootCmd.AddCommand(elementCmd)
	rootCmd.AddCommand(classificationCmd)
	rootCmd.AddCommand(formulaCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(salaryBasisCmd)

	// Payroll
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(processCmd)

	// Views
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(browseCmd)

	// System
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
