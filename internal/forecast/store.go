package forecast

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactStore persists one model artifact per instrument as
// {dir}/{INSTRUMENT}_model.json. Retraining overwrites wholesale;
// there is no versioning.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates a store rooted at dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// Path returns the artifact file path for an instrument.
func (s *ArtifactStore) Path(instrument string) string {
	return filepath.Join(s.dir, instrument+"_model.json")
}

// Save writes the artifact, replacing any prior one atomically.
func (s *ArtifactStore) Save(a *Artifact) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	path := s.Path(a.Instrument)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace artifact %s: %w", path, err)
	}
	return nil
}

// Load reads the artifact for an instrument. A missing artifact reports
// ErrNotAvailable.
func (s *ArtifactStore) Load(instrument string) (*Artifact, error) {
	data, err := os.ReadFile(s.Path(instrument))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("model for %s: %w", instrument, ErrNotAvailable)
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact for %s: %w", instrument, err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse artifact for %s: %w", instrument, err)
	}
	return &a, nil
}
