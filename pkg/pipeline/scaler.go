package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

// ErrUnscaledColumn is returned when a frame holds a column that is neither
// the entity, the label nor a feature the scaler was fitted on.
var ErrUnscaledColumn = errors.New("pipeline: column not covered by scaler")

// Scaling fits, persists and reapplies a feature scaler. The entity and label
// columns are never scaled; every other column is a feature.
type Scaling struct {
	Kind   stats.Kind
	Store  ArtifactStore
	Entity string
	Label  string
	Logger *zap.Logger
}

// NewScaling returns a Scaling for the canonical entity and label columns.
func NewScaling(kind stats.Kind, storeDir string, logger *zap.Logger) *Scaling {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scaling{
		Kind:   kind,
		Store:  ArtifactStore{Dir: storeDir},
		Entity: data.EngineColumn,
		Label:  data.RULColumn,
		Logger: logger,
	}
}

// Features returns the feature columns of f in order.
func (s *Scaling) Features(f *data.Frame) []string {
	return f.Drop(s.Entity, s.Label).Columns()
}

// FitSplit fits a scaler on the training features only, transforms both
// splits with it and persists it. Test data never reaches Fit.
func (s *Scaling) FitSplit(train, test *data.Frame) (*data.Frame, *data.Frame, error) {
	features := s.Features(train)
	sc, err := stats.NewScaler(s.Kind)
	if err != nil {
		return nil, nil, err
	}
	X, err := train.Matrix(features)
	if err != nil {
		return nil, nil, err
	}
	if err := sc.Fit(X); err != nil {
		return nil, nil, fmt.Errorf("fitting %s scaler: %w", s.Kind, err)
	}

	trainOut, err := s.transform(sc, features, train)
	if err != nil {
		return nil, nil, fmt.Errorf("train: %w", err)
	}
	testOut, err := s.transform(sc, features, test)
	if err != nil {
		return nil, nil, fmt.Errorf("test: %w", err)
	}
	if err := s.Store.SaveScaler(sc, features); err != nil {
		return nil, nil, err
	}
	s.Logger.Info("scaler fitted",
		zap.String("kind", string(s.Kind)),
		zap.Int("features", len(features)),
		zap.Int("train_rows", train.Len()),
		zap.String("path", s.Store.ScalerPath(s.Kind)))
	return trainOut, testOut, nil
}

// Apply loads the persisted scaler and transforms the feature columns it was
// fitted on. It fails with ErrArtifactNotFound when nothing was saved.
func (s *Scaling) Apply(f *data.Frame) (*data.Frame, error) {
	sc, features, err := s.Store.LoadScaler(s.Kind)
	if err != nil {
		return nil, err
	}
	out, err := s.transform(sc, features, f)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("scaler applied",
		zap.String("kind", string(s.Kind)),
		zap.Int("rows", f.Len()))
	return out, nil
}

// transform returns entity, scaled features and label (when present), in
// that order. Any other column fails with ErrUnscaledColumn.
func (s *Scaling) transform(sc stats.Scaler, features []string, f *data.Frame) (*data.Frame, error) {
	known := make(map[string]struct{}, len(features)+2)
	for _, c := range append([]string{s.Entity, s.Label}, features...) {
		known[c] = struct{}{}
	}
	for _, c := range f.Columns() {
		if _, ok := known[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnscaledColumn, c)
		}
	}
	X, err := f.Matrix(features)
	if err != nil {
		return nil, err
	}
	Y, err := sc.Transform(X)
	if err != nil {
		return nil, err
	}

	entity, err := f.Col(s.Entity)
	if err != nil {
		return nil, err
	}
	columns := append([]string{s.Entity}, features...)
	values := make([][]float64, 0, len(columns)+1)
	values = append(values, append([]float64(nil), entity...))
	for j := range features {
		col := make([]float64, len(Y))
		for i := range Y {
			col[i] = Y[i][j]
		}
		values = append(values, col)
	}
	if f.Has(s.Label) {
		label, _ := f.Col(s.Label)
		columns = append(columns, s.Label)
		values = append(values, append([]float64(nil), label...))
	}
	return data.NewFrame(columns, values)
}
