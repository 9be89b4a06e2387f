// Package rul derives Remaining-Useful-Life labels for the train and test
// splits of every condition set.
package rul

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

var (
	ErrEntityNotFound = errors.New("rul: entity has no ground truth")
	ErrInvalidLabel   = errors.New("rul: invalid label sequence")
)

// DefaultSets are the condition set indices of the C-MAPSS dataset.
var DefaultSets = []int{1, 2, 3, 4}

// Columns names the entity, time and label columns.
type Columns struct {
	Entity string
	Cycle  string
	Label  string
}

// DefaultColumns are the canonical column names.
var DefaultColumns = Columns{
	Entity: data.EngineColumn,
	Cycle:  data.CycleColumn,
	Label:  data.RULColumn,
}

// Deriver labels a dataset collection in place.
type Deriver struct {
	Columns Columns
	Sets    []int
	Logger  *zap.Logger
}

func NewDeriver(logger *zap.Logger) *Deriver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Deriver{Columns: DefaultColumns, Sets: DefaultSets, Logger: logger}
}

// Train labels a run-to-failure split: RUL is the entity's last observed
// cycle minus the row's cycle.
func (d *Deriver) Train(f *data.Frame) (*data.Frame, error) {
	remaining, err := d.remaining(f)
	if err != nil {
		return nil, err
	}
	return f.WithColumn(d.Columns.Label, remaining)
}

// Test labels a truncated split. Row i of truth holds the RUL at the last
// observed cycle of entity i+1; earlier rows add the cycles still to run
// before truncation.
func (d *Deriver) Test(test, truth *data.Frame) (*data.Frame, error) {
	truthRUL, err := truth.Col(d.Columns.Label)
	if err != nil {
		return nil, err
	}
	entities, err := test.Col(d.Columns.Entity)
	if err != nil {
		return nil, err
	}
	remaining, err := d.remaining(test)
	if err != nil {
		return nil, err
	}

	label := make([]float64, test.Len())
	for i, e := range entities {
		k := int(e)
		if float64(k) != e || k < 1 || k > len(truthRUL) {
			return nil, fmt.Errorf("%w: %s %v (ground truth covers 1..%d)", ErrEntityNotFound, d.Columns.Entity, e, len(truthRUL))
		}
		label[i] = truthRUL[k-1] + remaining[i]
	}
	return test.WithColumn(d.Columns.Label, label)
}

// remaining returns max cycle of the row's entity minus the row's cycle.
func (d *Deriver) remaining(f *data.Frame) ([]float64, error) {
	last, err := data.GroupMax(f, d.Columns.Entity, d.Columns.Cycle)
	if err != nil {
		return nil, err
	}
	cycles, _ := f.Col(d.Columns.Cycle)
	out := make([]float64, len(cycles))
	for i, c := range cycles {
		out[i] = last[i] - c
	}
	return out, nil
}

// Extract labels train_FD00i and test_FD00i for every configured set and
// drops the consumed RUL_FD00i ground truth. Each set is computed in full
// before the collection is touched, but sets already processed stay applied
// when a later one fails.
func (d *Deriver) Extract(c *data.Collection) error {
	for _, set := range d.Sets {
		trainName := data.DatasetName(data.RoleTrain, set)
		testName := data.DatasetName(data.RoleTest, set)
		truthName := data.DatasetName(data.RoleRUL, set)

		train, err := c.Get(trainName)
		if err != nil {
			return err
		}
		test, err := c.Get(testName)
		if err != nil {
			return err
		}
		truth, err := c.Get(truthName)
		if err != nil {
			return err
		}

		labelledTrain, err := d.Train(train)
		if err != nil {
			return fmt.Errorf("%s: %w", trainName, err)
		}
		labelledTest, err := d.Test(test, truth)
		if err != nil {
			return fmt.Errorf("%s: %w", testName, err)
		}

		c.Put(trainName, labelledTrain)
		c.Put(testName, labelledTest)
		if err := c.Remove(truthName); err != nil {
			return err
		}
		d.Logger.Info("rul extracted",
			zap.Int("set", set),
			zap.Int("train_rows", labelledTrain.Len()),
			zap.Int("test_rows", labelledTest.Len()))
	}
	return nil
}

// Validate checks that every entity's labels do not increase with cycle and
// that training runs end at zero. Violations wrap ErrInvalidLabel.
func Validate(f *data.Frame, cols Columns, training bool) error {
	groups, err := data.GroupRows(f, cols.Entity, cols.Cycle)
	if err != nil {
		return err
	}
	label, err := f.Col(cols.Label)
	if err != nil {
		return err
	}
	for _, g := range groups {
		prev := math.Inf(1)
		for _, i := range g.Rows {
			if label[i] > prev {
				return fmt.Errorf("%w: %s %v: label increases at row %d", ErrInvalidLabel, cols.Entity, g.Key, i)
			}
			prev = label[i]
		}
		if training && prev != 0 {
			return fmt.Errorf("%w: %s %v: final label %v, want 0", ErrInvalidLabel, cols.Entity, g.Key, prev)
		}
	}
	return nil
}
