package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/config"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

var scaleWorkflow string

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Extract and scale features from interim CSVs",
	Long: `Reads the labelled interim CSVs, extracts features and scales them.
With --workflow fit a scaler is fitted on each train set and saved; with
--workflow apply the saved scaler of each set is reused.`,
	Args: cobra.NoArgs,
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().StringVar(&scaleWorkflow, "workflow", "", "fit | apply (overrides scaling.workflow)")
}

func runScale(cmd *cobra.Command, args []string) error {
	switch scaleWorkflow {
	case "":
	case config.WorkflowFit, config.WorkflowApply:
		cfg.Scaling.Workflow = scaleWorkflow
	default:
		return fmt.Errorf("--workflow %q unknown: want fit|apply", scaleWorkflow)
	}
	c, err := data.LoadCSV(cfg.Data.InterimDir)
	if err != nil {
		return err
	}
	if err := featurizeAndScale(c, cfg, logger); err != nil {
		return err
	}
	if err := data.SaveCSV(c, cfg.Data.ProcessedDir); err != nil {
		return err
	}
	logger.Info("processed data saved",
		zap.String("workflow", cfg.Scaling.Workflow),
		zap.String("dir", cfg.Data.ProcessedDir))
	return nil
}
