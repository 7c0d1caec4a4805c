// Package theme persists the user's light/dark preference. It is a
// deliberately separate entry from the order collection: its own small
// file, overwritten wholesale, unrelated to the order data.
package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Theme is the display preference string.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used when no preference has been saved yet.
const Default = Light

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Store reads and writes the preference file.
type Store struct {
	path string
}

// NewStore creates a theme store at the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved preference, or Default when the file is absent,
// empty or holds an unknown value.
func (s *Store) Load() (Theme, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default, nil
	}
	if err != nil {
		return Default, fmt.Errorf("failed to read theme file: %w", err)
	}

	t := Theme(strings.TrimSpace(string(data)))
	if !t.Valid() {
		return Default, nil
	}
	return t, nil
}

// Save overwrites the preference. Unknown values are rejected at input
// time.
func (s *Store) Save(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	if err := os.WriteFile(s.path, []byte(string(t)+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
