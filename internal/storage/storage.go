package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nikbrunner/techbook/internal/model"
)

// SlotKey names the durable slot holding the serialized collection.
const SlotKey = "techbook-bookmarks"

var (
	// ErrMalformed is returned by Load when the saved blob cannot be used.
	ErrMalformed = errors.New("malformed bookmark data")

	// ErrUnknownBackend is returned by OpenStorage for an unsupported Config.Storage value.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Storage defines the interface for persisting bookmarks.
// Load returns the default seed when nothing has been saved yet.
type Storage interface {
	Load() (model.Collection, error)
	Save(c model.Collection) error
}

// Backend is a Storage that holds resources until closed.
type Backend interface {
	Storage
	io.Closer
	Path() string
}

// JSONStorage implements Storage using a single JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Close implements Backend. The file is not held open between calls.
func (s *JSONStorage) Close() error {
	return nil
}

// Load reads the collection from the JSON file.
// Returns the default seed if the file doesn't exist or is empty.
func (s *JSONStorage) Load() (model.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultBookmarks(), nil
		}
		return nil, err
	}
	return decode(data)
}

// Save overwrites the JSON file with the whole collection.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(c model.Collection) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := encode(c)
	if err != nil {
		return err
	}

	// Write next to the target and rename so a crash never leaves half a file
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// encode serializes the collection as an indented JSON array.
func encode(c model.Collection) ([]byte, error) {
	if c == nil {
		c = model.Collection{}
	}
	return json.MarshalIndent(c, "", "  ")
}

// decode parses and validates a saved blob.
// An empty blob counts as nothing saved.
func decode(data []byte) (model.Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.DefaultBookmarks(), nil
	}

	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformed)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return c, nil
}

// OpenStorage opens the backend named by cfg.Storage at path.
// An empty path selects the backend's default location.
func OpenStorage(cfg Config, path string) (Backend, error) {
	switch cfg.Storage {
	case BackendJSON, "":
		if path == "" {
			var err error
			if path, err = DefaultJSONPath(); err != nil {
				return nil, err
			}
		}
		return NewJSONStorage(path), nil

	case BackendSQLite:
		if path == "" {
			var err error
			if path, err = DefaultSQLitePath(); err != nil {
				return nil, err
			}
		}
		return NewSQLiteStorage(path)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage)
}
