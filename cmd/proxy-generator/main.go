// Package main provides the CLI entrypoint for proxy-generator.
//
// proxy-generator is a codegen toolchain that:
//   - Parses Go packages (go/types) into type and method descriptors
//   - Lets humans declare proxy configurations via YAML build profiles
//   - Resolves profiles into immutable subclass plans for the emission engine
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	verbose     bool
	profilePath string
	pkgPatterns []string
)

var rootCmd = &cobra.Command{
	Use:   "proxy-generator",
	Short: "Configure and plan synthetic proxy types for Go packages",
	Long: `proxy-generator resolves declarative YAML build profiles against real
Go packages and produces the configuration plans consumed by the emission
engine. It never emits code itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func setupLogger() error {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "f", "", "path to a YAML build profile")
	rootCmd.PersistentFlags().StringSliceVarP(&pkgPatterns, "pkg", "p", nil, "Go package patterns to load")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(rulesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
