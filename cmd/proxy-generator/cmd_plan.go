package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proxy-generator/forge"
	"proxy-generator/internal/profile"
)

var (
	parentRef string
	dumpPlan  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Resolve a subclass plan for a parent type",
	Long: `Applies the build profile and resolves it against the requested parent
type, printing the plan the emission engine would receive.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&parentRef, "parent", "", "parent type reference, e.g. payment.Gateway")
	planCmd.Flags().BoolVar(&dumpPlan, "dump", false, "dump the full plan structure")
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, graph, err := loadProfileAndGraph()
	if err != nil {
		return err
	}

	if parentRef == "" {
		return fmt.Errorf("--parent is required")
	}

	if res := profile.Validate(p, graph); res.HasErrors() {
		return res.Error()
	}

	cfg, err := profile.Apply(p, graph)
	if err != nil {
		return err
	}

	parent := graph.Resolve(parentRef)
	if parent == nil {
		return fmt.Errorf("parent type %q not found", parentRef)
	}

	plan, err := cfg.Subclass(parent, forge.ImitateParent)
	if err != nil {
		return err
	}

	logger.Debug("resolved plan", zap.String("parent", parent.ID.String()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "format:    ", plan.FormatVersion)
	fmt.Fprintln(out, "base type: ", plan.BaseType.ID)
	fmt.Fprintln(out, "modifiers: ", plan.Modifiers)
	fmt.Fprintln(out, "ctors:     ", plan.Constructors.Describe())

	for i, iface := range plan.Interfaces {
		fmt.Fprintf(out, "iface[%d]:   %s\n", i, iface.ID)
	}

	for i, e := range plan.Registry.Entries() {
		fmt.Fprintf(out, "rule[%d]:    %s\n", i, e.Behavior.Describe())
	}

	if dumpPlan {
		spew.Fdump(out, plan)
	}

	return nil
}
