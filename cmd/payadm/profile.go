package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/freshcms/payadm/internal/config"
	"github.com/freshcms/payadm/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Manage server profiles",
	GroupID: "system",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(cfg)
			return nil
		}
		if len(cfg.Profiles) == 0 {
			fmt.Println("no profiles configured")
			return nil
		}
		names := make([]string, 0, len(cfg.Profiles))
		for name := range cfg.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)
		t := newTable("", "NAME", "URL", "TOKEN")
		for _, name := range names {
			p := cfg.Profiles[name]
			mark := ""
			if name == cfg.Active {
				mark = ui.RenderAccent("*")
			}
			token := ""
			if p.Token != "" {
				token = "set"
			}
			t.AddRow(mark, name, p.URL, token)
		}
		fmt.Println(t)
		return nil
	},
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add or replace a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		tokenFlag, _ := cmd.Flags().GetString("token")
		cfg.Profiles[args[0]] = config.Profile{URL: args[1], Token: tokenFlag}
		if cfg.Active == "" {
			cfg.Active = args[0]
		}
		if err := config.SaveProfiles(cfg); err != nil {
			return err
		}
		fmt.Printf("saved profile %s\n", args[0])
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a profile the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		if _, ok := cfg.Profiles[args[0]]; !ok {
			return fmt.Errorf("unknown profile %q", args[0])
		}
		cfg.Active = args[0]
		if err := config.SaveProfiles(cfg); err != nil {
			return err
		}
		fmt.Printf("now using %s\n", args[0])
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		if _, ok := cfg.Profiles[args[0]]; !ok {
			return fmt.Errorf("unknown profile %q", args[0])
		}
		delete(cfg.Profiles, args[0])
		if cfg.Active == args[0] {
			cfg.Active = ""
		}
		if err := config.SaveProfiles(cfg); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", args[0])
		return nil
	},
}

func init() {
	profileAddCmd.Flags().String("token", "", "bearer token for this server")
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRemoveCmd)
}
