// Package persist saves the tag layout between runs.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

// layoutVersion tags the on-disk format.
const layoutVersion = 1

type layoutFile struct {
	Version int           `json:"version"`
	Layout  schema.Layout `json:"layout"`
}

// Store persists the tag layout to a single JSON file.
type Store struct {
	path string
	log  pslog.Logger
}

// NewStore constructs a layout store at the given file path.
func NewStore(path string) (*Store, error) {
	return NewStoreWithLogger(path, nil)
}

// NewStoreWithLogger constructs a layout store with logging.
func NewStoreWithLogger(path string, logger pslog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("state file is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	if logger != nil {
		logger = logger.With("state_file", path)
	}
	return &Store{path: path, log: logger}, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the saved layout. A missing file reports ok=false.
func (s *Store) Load() (schema.Layout, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.debug("layout load miss")
			return schema.Layout{}, false, nil
		}
		s.warn("layout load failed", err)
		return schema.Layout{}, false, err
	}
	var file layoutFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.warn("layout load failed", err)
		return schema.Layout{}, false, err
	}
	if file.Version != layoutVersion {
		err := fmt.Errorf("unsupported layout version %d; expected %d", file.Version, layoutVersion)
		s.warn("layout load failed", err)
		return schema.Layout{}, false, err
	}
	if s.log != nil {
		s.log.Debug("layout load ok", "outputs", len(file.Layout.Outputs))
	}
	return file.Layout, true, nil
}

// Save atomically replaces the saved layout.
func (s *Store) Save(layout schema.Layout) error {
	data, err := json.MarshalIndent(layoutFile{Version: layoutVersion, Layout: layout}, "", "  ")
	if err != nil {
		s.warn("layout save failed", err)
		return err
	}
	if err := writeAtomic(s.path, data); err != nil {
		s.warn("layout save failed", err)
		return err
	}
	if s.log != nil {
		s.log.Trace("layout save ok", "outputs", len(layout.Outputs))
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "layout-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Store) debug(msg string) {
	if s.log != nil {
		s.log.Debug(msg)
	}
}

func (s *Store) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, "err", err)
	}
}
