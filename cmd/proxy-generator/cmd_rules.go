package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proxy-generator/internal/profile"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print a profile's rules in resolution order",
	Long: `Applies the build profile and prints the resulting registry head to
tail: the order in which the emission engine resolves method rules, most
recently declared first.`,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	p, graph, err := loadProfileAndGraph()
	if err != nil {
		return err
	}

	if res := profile.Validate(p, graph); res.HasErrors() {
		return res.Error()
	}

	cfg, err := profile.Apply(p, graph)
	if err != nil {
		return err
	}

	entries := cfg.Registry().Entries()
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no rules")
		return nil
	}

	for i, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i, e.Behavior.Describe())
	}

	return nil
}
