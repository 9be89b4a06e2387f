// Package config loads the YAML configuration shared by the turbofan
// subcommands. Every field has a default, so an empty file is valid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/dataprep"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/logging"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/rul"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

// Default values.
const (
	DefaultRawDir       = "data/raw"
	DefaultInterimDir   = "data/interim"
	DefaultProcessedDir = "data/processed"
	DefaultExt          = ".txt"
	DefaultSep          = " "
	DefaultPrefix       = "RUL"
	DefaultScalerKind   = stats.Robust
	DefaultStoreDir     = "models/scalers"
	DefaultWorkflow     = WorkflowFit
	DefaultPlotDir      = "reports/figures"
	DefaultBins         = 50
)

// Scaling workflows.
const (
	// WorkflowFit fits on train, transforms train and test, persists.
	WorkflowFit = "fit"
	// WorkflowApply reloads a persisted scaler and transforms each dataset.
	WorkflowApply = "apply"
)

// Config is the root of config.yaml.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Features FeaturesConfig `yaml:"features"`
	Scaling  ScalingConfig  `yaml:"scaling"`
	Reports  ReportsConfig  `yaml:"reports"`
	Plots    PlotsConfig    `yaml:"plots"`
	Logging  logging.Config `yaml:"logging"`
}

// DataConfig locates the raw files and the prepared outputs.
type DataConfig struct {
	RawDir       string `yaml:"raw_dir"`
	InterimDir   string `yaml:"interim_dir"`
	ProcessedDir string `yaml:"processed_dir"`

	// Ext selects raw files and is stripped from dataset names.
	Ext string `yaml:"ext"`
	// Sep is the raw field separator; blank means runs of whitespace.
	Sep string `yaml:"sep"`
	// Prefix marks ground-truth files, read with the single RUL column.
	Prefix string `yaml:"prefix"`

	// Sets lists the sub-dataset numbers to process (default 1..4).
	Sets []int `yaml:"sets"`
}

// FeaturesConfig lists the columns that get a running-max feature.
type FeaturesConfig struct {
	Expand []string `yaml:"expand"`
}

// ScalingConfig controls the feature scaler.
type ScalingConfig struct {
	// Kind is one of: Robust | MinMax | Standard.
	Kind stats.Kind `yaml:"kind"`
	// StoreDir holds one sub-directory of artifacts per set.
	StoreDir string `yaml:"store_dir"`
	// Workflow is one of: fit | apply.
	Workflow string `yaml:"workflow"`
}

// ReportsConfig controls the data quality reports.
type ReportsConfig struct {
	// Workbook is the xlsx export path; empty disables the export.
	Workbook string `yaml:"workbook"`
}

// PlotsConfig controls the exploratory figures.
type PlotsConfig struct {
	Dir        string   `yaml:"dir"`
	Indicators []string `yaml:"indicators"`
	Bins       int      `yaml:"bins"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			RawDir:       DefaultRawDir,
			InterimDir:   DefaultInterimDir,
			ProcessedDir: DefaultProcessedDir,
			Ext:          DefaultExt,
			Sep:          DefaultSep,
			Prefix:       DefaultPrefix,
			Sets:         append([]int(nil), rul.DefaultSets...),
		},
		Features: FeaturesConfig{
			Expand: append([]string(nil), dataprep.DefaultExpandColumns...),
		},
		Scaling: ScalingConfig{
			Kind:     DefaultScalerKind,
			StoreDir: DefaultStoreDir,
			Workflow: DefaultWorkflow,
		},
		Plots: PlotsConfig{
			Dir:  DefaultPlotDir,
			Bins: DefaultBins,
		},
		Logging: logging.Config{Level: "info"},
	}
}

// Load reads and parses the config file at path. Missing fields keep their
// defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyDefaults restores defaults for keys present in the file but left empty.
func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Data.Ext == "" {
		cfg.Data.Ext = d.Data.Ext
	}
	if len(cfg.Data.Sets) == 0 {
		cfg.Data.Sets = d.Data.Sets
	}
	if len(cfg.Features.Expand) == 0 {
		cfg.Features.Expand = d.Features.Expand
	}
	if cfg.Scaling.Kind == "" {
		cfg.Scaling.Kind = d.Scaling.Kind
	}
	if cfg.Scaling.Workflow == "" {
		cfg.Scaling.Workflow = d.Scaling.Workflow
	}
	if cfg.Plots.Bins == 0 {
		cfg.Plots.Bins = d.Plots.Bins
	}
}

func validate(cfg *Config) error {
	if cfg.Data.RawDir == "" {
		return fmt.Errorf("data.raw_dir must not be empty")
	}
	for _, s := range cfg.Data.Sets {
		if s < 1 || s > 999 {
			return fmt.Errorf("data.sets: %d is out of range [1, 999]", s)
		}
	}
	if _, err := stats.NewScaler(cfg.Scaling.Kind); err != nil {
		return fmt.Errorf("scaling.kind: %w", err)
	}
	switch cfg.Scaling.Workflow {
	case WorkflowFit, WorkflowApply:
	default:
		return fmt.Errorf("scaling.workflow %q unknown: want fit|apply", cfg.Scaling.Workflow)
	}
	if cfg.Plots.Bins < 0 {
		return fmt.Errorf("plots.bins must not be negative")
	}
	return nil
}
