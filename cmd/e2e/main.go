package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"webui-e2e/internal/di"
	"webui-e2e/internal/infrastructure/env"
	"webui-e2e/internal/infrastructure/testdata"
	"webui-e2e/internal/usecase/scenario"

	"github.com/spf13/cobra"
)

var (
	flagData     string
	flagBaseURL  string
	flagHeadless bool
	flagTimeout  time.Duration
)

// errCasesFailed makes the process exit non-zero without printing usage.
var errCasesFailed = errors.New("some cases failed")

var rootCmd = &cobra.Command{
	Use:   "e2e",
	Short: "e2e - data-driven web UI checks",
	Long: `e2e drives a real browser through data-driven UI scenarios.

Examples:
  e2e scenarios                              # List scenarios and home actions
  e2e run login                              # Run login cases from TEST_DATA_FILE
  e2e run home --data testdata/cases.yaml    # Run home cases from a file
  e2e run login --headless=false             # Watch the browser`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run every case of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		if flagTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, flagTimeout)
			defer cancel()
		}

		container, err := di.NewContainer(ctx, di.Config{
			Config:  cfg,
			RunName: args[0],
			Out:     cmd.OutOrStdout(),
		})
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer container.Close()

		summary, err := container.Runner.Execute(ctx, args[0])
		if err != nil {
			container.Logger.Error("Run aborted", "scenario", args[0], "error", err)
			return err
		}

		container.Logger.Info("Run finished",
			"scenario", summary.Scenario,
			"passed", summary.Passed,
			"failed", summary.Failed,
			"duration", summary.Duration,
		)
		if !summary.OK() {
			return fmt.Errorf("%w: %d of %d", errCasesFailed, summary.Failed, summary.Passed+summary.Failed)
		}
		return nil
	},
}

var scenariosCmd = &cobra.Command{
	Use:     "scenarios",
	Aliases: []string{"ls"},
	Short:   "List scenarios and the cases available for them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Scenarios:")
		fmt.Fprintf(out, "  %s\n", scenario.LoginName)
		fmt.Fprintf(out, "  %s (actions: %s)\n", scenario.HomeName, strings.Join(scenario.HomeActions(), ", "))

		provider, err := testdata.LoadFile(cfg.DataFile)
		if err != nil {
			fmt.Fprintf(out, "\nNo test data: %v\n", err)
			return nil
		}
		fmt.Fprintf(out, "\nTest data (%s):\n", cfg.DataFile)
		for _, name := range provider.Scenarios() {
			cases, _ := provider.Cases(name)
			fmt.Fprintf(out, "  %s - %d cases\n", name, len(cases))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "override BASE_URL")
	runCmd.Flags().BoolVar(&flagHeadless, "headless", true, "run the browser headless (overrides BROWSER_HEADLESS)")
	runCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Minute, "upper bound for the whole run")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "YAML test data file (overrides TEST_DATA_FILE)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func loadConfig(cmd *cobra.Command) env.Config {
	cfg := env.LoadConfig(env.NewEnvService())
	if flagData != "" {
		cfg.DataFile = flagData
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if f := cmd.Flags().Lookup("headless"); f != nil && f.Changed {
		cfg.Browser.Headless = flagHeadless
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCasesFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
