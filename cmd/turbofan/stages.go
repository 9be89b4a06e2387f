package main

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/config"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/dataprep"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/pipeline"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/rul"
)

// loadRaw reads the raw directory. Ground-truth files get the single RUL
// column; every other file gets the full sensor schema.
func loadRaw(cfg *config.Config, out io.Writer, logger *zap.Logger) (*data.Collection, error) {
	return data.Load(data.LoadOptions{
		Dir:           cfg.Data.RawDir,
		Ext:           cfg.Data.Ext,
		Sep:           cfg.Data.Sep,
		Prefix:        cfg.Data.Prefix,
		PrefixSchema:  data.DefaultRULSchema,
		DefaultSchema: data.DefaultFullSchema,
		Out:           out,
		Logger:        logger,
	})
}

// label derives RUL for every configured set and checks the result: labels
// never increase along a run and training runs end at zero.
func label(c *data.Collection, cfg *config.Config, logger *zap.Logger) error {
	d := rul.NewDeriver(logger)
	d.Sets = cfg.Data.Sets
	if err := d.Extract(c); err != nil {
		return err
	}
	for _, set := range d.Sets {
		for _, role := range []string{data.RoleTrain, data.RoleTest} {
			name := data.DatasetName(role, set)
			f, err := c.Get(name)
			if err != nil {
				return err
			}
			if err := rul.Validate(f, d.Columns, role == data.RoleTrain); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

// storeDir keeps the scaler of each set apart so sets do not overwrite each
// other's artifacts.
func storeDir(cfg *config.Config, set int) string {
	return filepath.Join(cfg.Scaling.StoreDir, fmt.Sprintf("FD%03d", set))
}

// featurizeAndScale extracts features on the train and test datasets of every
// set, then scales them with the configured workflow.
func featurizeAndScale(c *data.Collection, cfg *config.Config, logger *zap.Logger) error {
	features := dataprep.Features(cfg.Features.Expand...)
	for _, set := range cfg.Data.Sets {
		trainName := data.DatasetName(data.RoleTrain, set)
		testName := data.DatasetName(data.RoleTest, set)
		if err := features.Apply(c, trainName, testName); err != nil {
			return err
		}
		train, _ := c.Get(trainName)
		test, _ := c.Get(testName)

		s := pipeline.NewScaling(cfg.Scaling.Kind, storeDir(cfg, set), logger)
		switch cfg.Scaling.Workflow {
		case config.WorkflowApply:
			var err error
			if train, err = s.Apply(train); err != nil {
				return fmt.Errorf("%s: %w", trainName, err)
			}
			if test, err = s.Apply(test); err != nil {
				return fmt.Errorf("%s: %w", testName, err)
			}
		default:
			var err error
			if train, test, err = s.FitSplit(train, test); err != nil {
				return fmt.Errorf("set %d: %w", set, err)
			}
		}
		c.Put(trainName, train)
		c.Put(testName, test)
	}
	return nil
}
