package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"stockcast/internal/model"
)

// Store persists one bar table per instrument under a base directory,
// named {INSTRUMENT}.{ext}. Reads of a missing archive yield an empty
// table, not an error; writes replace the whole table atomically.
type Store struct {
	dir   string
	codec Codec
}

// NewStore creates a Store writing files in dir with the given codec.
func NewStore(dir string, codec Codec) *Store {
	return &Store{dir: dir, codec: codec}
}

// Path returns the archive file path for an instrument.
func (s *Store) Path(instrument string) string {
	return filepath.Join(s.dir, instrument+"."+s.codec.Extension())
}

// Read loads the full archive for an instrument. A missing file is an
// empty archive. Decode failures surface as errors (malformed archive).
func (s *Store) Read(instrument string) ([]model.Bar, error) {
	path := s.Path(instrument)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	bars, err := s.codec.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}
	return bars, nil
}

// WriteAll replaces the instrument's archive with bars. The new table is
// written to a temp file and renamed over the old one, so a failed write
// leaves the previous archive intact.
func (s *Store) WriteAll(instrument string, bars []model.Bar) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	path := s.Path(instrument)
	tmp := path + ".tmp"
	if err := s.codec.Save(bars, tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write archive %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace archive %s: %w", path, err)
	}
	return nil
}
