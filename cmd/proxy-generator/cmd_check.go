package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proxy-generator/descriptor"
	"proxy-generator/internal/profile"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a build profile against loaded packages",
	Long: `Loads the given Go packages, parses the YAML build profile and reports
every validation diagnostic. Exits non-zero when the profile has errors.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, graph, err := loadProfileAndGraph()
	if err != nil {
		return err
	}

	res := profile.Validate(p, graph)

	for _, d := range res.Warnings {
		fmt.Fprintln(cmd.OutOrStdout(), "warning:", d.String())
	}

	for _, d := range res.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", d.String())
	}

	if res.HasErrors() {
		return fmt.Errorf("profile has %d error(s)", len(res.Errors))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "profile is valid")

	return nil
}

// loadProfileAndGraph loads the shared --profile and --pkg inputs.
func loadProfileAndGraph() (*profile.Profile, *descriptor.Graph, error) {
	if profilePath == "" {
		return nil, nil, errors.New("--profile is required")
	}

	if len(pkgPatterns) == 0 {
		return nil, nil, errors.New("--pkg is required")
	}

	logger.Debug("loading packages", zap.Strings("patterns", pkgPatterns))

	graph, err := descriptor.NewLoader().Load(pkgPatterns...)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("loaded descriptor graph",
		zap.Int("types", len(graph.Types)),
		zap.Int("packages", len(graph.Packages)))

	p, err := profile.LoadFile(profilePath)
	if err != nil {
		return nil, nil, err
	}

	return p, graph, nil
}
