package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tensorplex-labs/koth/internal/config"
	"github.com/tensorplex-labs/koth/internal/scoring"
	"github.com/tensorplex-labs/koth/internal/utils/logger"
	"github.com/tensorplex-labs/koth/internal/validator"
)

var (
	epoch            string
	tau              float64
	serviceThreshold float64
	root             string
	archive          bool
	plot             bool
	logFlags         logger.Flags
)

var rootCmd = &cobra.Command{
	Use:   "validator",
	Short: "Compute miner weights for one KotH epoch",
	Long: `Scores every scorecard in snapshots/<epoch>, normalises the per-hotkey
totals with a softmax, blends in the service operator's share and writes
weights/<epoch>.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logFlags)
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&epoch, "epoch", "", "Epoch to score (required)")
	rootCmd.Flags().Float64Var(&tau, "tau", scoring.DefaultTau, "Softmax temperature")
	rootCmd.Flags().Float64Var(&serviceThreshold, "service-threshold", scoring.DefaultServiceThreshold,
		"Minimum service score for the service operator's share")
	rootCmd.Flags().StringVar(&root, "root", "", "Data root holding requirements/, registry/, snapshots/ (overrides KOTH_ROOT)")
	rootCmd.Flags().BoolVar(&archive, "archive", false, "Also write a zstd-compressed copy of the report")
	rootCmd.Flags().BoolVar(&plot, "plot", false, "Print a terminal chart of the final weights")
	_ = rootCmd.MarkFlagRequired("epoch")

	rootCmd.PersistentFlags().BoolVar(&logFlags.Debug, "debug", false, "sets log level to debug")
	rootCmd.PersistentFlags().BoolVar(&logFlags.Trace, "trace", false, "sets log level to trace")
	rootCmd.PersistentFlags().BoolVar(&logFlags.Info, "info", false, "sets log level to info (default)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load environment configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tau") {
		cfg.Tau = tau
	}
	if flags.Changed("service-threshold") {
		cfg.ServiceThreshold = serviceThreshold
	}
	if flags.Changed("root") {
		cfg.Root = root
	}
	if flags.Changed("archive") {
		cfg.ArchiveReports = archive
	}

	v := validator.NewValidator(cfg)
	res, err := v.RunEpoch(epoch)
	if err != nil {
		return fmt.Errorf("epoch %s: %w", epoch, err)
	}
	if res == nil {
		return nil
	}

	if plot {
		if err := scoring.PlotWeightsTerminal(cmd.OutOrStdout(), res.Outcome.Final, "Epoch "+epoch+" final weights"); err != nil {
			log.Warn().Err(err).Msg("failed to plot weights")
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("validator failed")
	}
}
