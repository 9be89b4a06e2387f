package stats

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"errors"
	"fmt"
	"math"
)

var (
	ErrNotFitted   = errors.New("stats: scaler not fitted")
	ErrUnknownKind = errors.New("stats: unknown scaler kind")
	ErrShape       = errors.New("stats: feature count mismatch")
)

// Kind tags a scaler implementation. It is also the prefix of the persisted
// artifact name.
type Kind string

const (
	Robust   Kind = "Robust"
	MinMax   Kind = "MinMax"
	Standard Kind = "Standard"
)

// Scaler is a per-column transform fitted on training data and reused
// read-only on any later data.
type Scaler interface {
	Kind() Kind
	Fit(X [][]float64) error
	Transform(X [][]float64) ([][]float64, error)
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// NewScaler returns an unfitted scaler of the given kind.
func NewScaler(kind Kind) (Scaler, error) {
	switch kind {
	case Robust:
		return &RobustScaler{}, nil
	case MinMax:
		return &MinMaxScaler{}, nil
	case Standard:
		return &StandardScaler{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// affine holds the (x - Center) / Scale parameters every scaler reduces to.
type affine struct {
	Center []float64
	Scale  []float64
}

func (a *affine) fitted() bool { return a.Center != nil }

func (a *affine) transform(X [][]float64) ([][]float64, error) {
	if !a.fitted() {
		return nil, ErrNotFitted
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(a.Center) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(row), len(a.Center))
		}
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = (v - a.Center[j]) / a.Scale[j]
		}
		out[i] = r
	}
	return out, nil
}

// fit computes one (center, scale) pair per column from its non-NaN values.
// A zero or undefined scale is replaced by 1 so constant columns are only
// shifted.
func (a *affine) fit(X [][]float64, params func(col []float64) (center, scale float64)) error {
	if len(X) == 0 {
		return errors.New("stats: cannot fit on empty data")
	}
	cols := len(X[0])
	a.Center = make([]float64, cols)
	a.Scale = make([]float64, cols)
	col := make([]float64, 0, len(X))
	for j := 0; j < cols; j++ {
		col = col[:0]
		for i, row := range X {
			if len(row) != cols {
				return fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(row), cols)
			}
			if !math.IsNaN(row[j]) {
				col = append(col, row[j])
			}
		}
		c, s := 0.0, 1.0
		if len(col) > 0 {
			c, s = params(col)
		}
		if s == 0 || math.IsNaN(s) {
			s = 1
		}
		a.Center[j], a.Scale[j] = c, s
	}
	return nil
}

func (a *affine) marshal() ([]byte, error) {
	if !a.fitted() {
		return nil, ErrNotFitted
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *affine) unmarshal(data []byte) error {
	var st affine
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&st); err != nil {
		return err
	}
	if len(st.Center) != len(st.Scale) {
		return fmt.Errorf("%w: %d centers, %d scales", ErrShape, len(st.Center), len(st.Scale))
	}
	*a = st
	return nil
}

// RobustScaler centers on the median and scales by the interquartile range.
type RobustScaler struct{ affine }

func (s *RobustScaler) Kind() Kind { return Robust }

func (s *RobustScaler) Fit(X [][]float64) error {
	return s.fit(X, func(col []float64) (float64, float64) {
		return Median(col), Percentile(col, 75) - Percentile(col, 25)
	})
}

func (s *RobustScaler) Transform(X [][]float64) ([][]float64, error) { return s.transform(X) }
func (s *RobustScaler) MarshalBinary() ([]byte, error)               { return s.marshal() }
func (s *RobustScaler) UnmarshalBinary(data []byte) error            { return s.unmarshal(data) }

// MinMaxScaler maps the fitted range of each column to [0, 1].
type MinMaxScaler struct{ affine }

func (s *MinMaxScaler) Kind() Kind { return MinMax }

func (s *MinMaxScaler) Fit(X [][]float64) error {
	return s.fit(X, func(col []float64) (float64, float64) {
		lo, hi := Range(col)
		return lo, hi - lo
	})
}

func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) { return s.transform(X) }
func (s *MinMaxScaler) MarshalBinary() ([]byte, error)               { return s.marshal() }
func (s *MinMaxScaler) UnmarshalBinary(data []byte) error            { return s.unmarshal(data) }

// StandardScaler standardizes each column to zero mean and unit variance.
type StandardScaler struct{ affine }

func (s *StandardScaler) Kind() Kind { return Standard }

func (s *StandardScaler) Fit(X [][]float64) error {
	return s.fit(X, func(col []float64) (float64, float64) {
		return Mean(col), Std(col)
	})
}

func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) { return s.transform(X) }
func (s *StandardScaler) MarshalBinary() ([]byte, error)               { return s.marshal() }
func (s *StandardScaler) UnmarshalBinary(data []byte) error            { return s.unmarshal(data) }
