package pipeline

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/stats"
)

var ErrArtifactNotFound = errors.New("pipeline: artifact not found")

const (
	artifactExt      = ".gob"
	scalerSuffix     = "Scaler"
	DefaultModelType = "LinReg"
)

// ArtifactStore persists fitted scalers and model artifacts as gob files
// under Dir.
type ArtifactStore struct {
	Dir string
}

// scalerEnvelope is the on-disk form of a fitted scaler.
type scalerEnvelope struct {
	Kind    stats.Kind
	Columns []string
	State   []byte
}

// ScalerPath returns <Dir>/<kind>Scaler.gob.
func (s ArtifactStore) ScalerPath(kind stats.Kind) string {
	return filepath.Join(s.Dir, string(kind)+scalerSuffix+artifactExt)
}

// ModelPath returns <Dir>/<modelType><tag>.gob.
func (s ArtifactStore) ModelPath(modelType, tag string) string {
	if modelType == "" {
		modelType = DefaultModelType
	}
	return filepath.Join(s.Dir, modelType+tag+artifactExt)
}

// SaveScaler persists a fitted scaler together with the feature columns it
// was fitted on.
func (s ArtifactStore) SaveScaler(sc stats.Scaler, columns []string) error {
	state, err := sc.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding %s scaler: %w", sc.Kind(), err)
	}
	return s.write(s.ScalerPath(sc.Kind()), scalerEnvelope{Kind: sc.Kind(), Columns: columns, State: state})
}

// LoadScaler restores the scaler saved for kind and its feature columns.
func (s ArtifactStore) LoadScaler(kind stats.Kind) (stats.Scaler, []string, error) {
	var env scalerEnvelope
	if err := s.read(s.ScalerPath(kind), &env); err != nil {
		return nil, nil, err
	}
	if env.Kind != kind {
		return nil, nil, fmt.Errorf("%w: file holds %q", stats.ErrUnknownKind, env.Kind)
	}
	sc, err := stats.NewScaler(kind)
	if err != nil {
		return nil, nil, err
	}
	if err := sc.UnmarshalBinary(env.State); err != nil {
		return nil, nil, fmt.Errorf("decoding %s scaler: %w", kind, err)
	}
	return sc, env.Columns, nil
}

// SaveModel persists any gob-encodable model under its type and tag.
func (s ArtifactStore) SaveModel(modelType, tag string, model any) error {
	return s.write(s.ModelPath(modelType, tag), model)
}

// LoadModel decodes the model saved under type and tag into model, which
// must be a pointer.
func (s ArtifactStore) LoadModel(modelType, tag string, model any) error {
	return s.read(s.ModelPath(modelType, tag), model)
}

func (s ArtifactStore) write(path string, v any) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(fh).Encode(v); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return fh.Close()
}

func (s ArtifactStore) read(path string, v any) error {
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
	}
	if err != nil {
		return err
	}
	defer fh.Close()
	if err := gob.NewDecoder(fh).Decode(v); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
