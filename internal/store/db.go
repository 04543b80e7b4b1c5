package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrProfileNotFound is returned when no profile matches an identity
var ErrProfileNotFound = errors.New("profile not found")

// ErrMalformedFile is returned when the profiles file cannot be parsed
var ErrMalformedFile = errors.New("malformed profiles file")

// DefaultFileName is the name of the profiles file inside the data directory
const DefaultFileName = "pitch_data.csv"

// Store persists profiles in a single CSV file
type Store struct {
	path string
}

// Open returns a Store backed by the file at path, creating its directory if necessary.
// The file itself is created on the first save.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("profiles path is empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{path: path}, nil
}

// Path returns the location of the profiles file
func (s *Store) Path() string {
	return s.path
}
