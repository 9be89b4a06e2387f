// Command turbofan prepares the C-MAPSS turbofan degradation data: it labels
// remaining useful life, extracts features, scales them and reports on data
// quality.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/config"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "turbofan",
	Short: "Prepare turbofan engine degradation data",
	Long: `turbofan turns the raw C-MAPSS run-to-failure files into labelled,
feature-enriched and scaled datasets ready for RUL regression.

Stages:
  prepare  raw files -> RUL labels (interim) -> features + scaling (processed)
  scale    interim CSVs -> features + scaling (processed)
  report   missing values, duplicated rows and summary statistics
  plot     indicator, distribution and correlation figures`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath == "" {
			cfg = config.Default()
		} else if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(prepareCmd, scaleCmd, reportCmd, plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
