// Package profile persists named mapping profiles in a single JSON document.
//
// The document is loaded wholesale and rewritten wholesale on every save.
// There is no file locking: two processes saving at the same time race and
// the last writer wins.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"wacomsync/internal/domain"
)

// DefaultFileName is the profile document in the user's home directory
const DefaultFileName = ".wacom_profiles.json"

// ErrProfileNotFound is returned by Get for an unknown name
var ErrProfileNotFound = errors.New("profile not found")

// Store reads and writes the profile document at a fixed path
type Store struct {
	path string
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.wacom_profiles.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Path returns the document location
func (s *Store) Path() string {
	return s.path
}

// Load returns every saved profile. A missing document is an empty set.
func (s *Store) Load() (domain.ProfileSet, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ProfileSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	profiles := domain.ProfileSet{}
	if len(bytes.TrimSpace(data)) == 0 {
		return profiles, nil
	}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", s.path, err)
	}

	for name, p := range profiles {
		profiles[name] = p.Normalize()
	}
	return profiles, nil
}

// Get returns the profile saved under name
func (s *Store) Get(name string) (domain.Profile, error) {
	profiles, err := s.Load()
	if err != nil {
		return domain.Profile{}, err
	}
	name = strings.TrimSpace(name)
	p, ok := profiles[name]
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// Save inserts or overwrites the profile called name and rewrites the whole
// document.
func (s *Store) Save(name string, p domain.Profile) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyName
	}
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}

	profiles, err := s.Load()
	if err != nil {
		return err
	}
	profiles[name] = p
	return s.write(profiles)
}

// write replaces the document atomically via a temp file in the same directory
func (s *Store) write(profiles domain.ProfileSet) error {
	data, err := json.MarshalIndent(profiles, "", "    ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	data = append(data, '\n')

	target, err := s.resolve()
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".profiles-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replace profiles: %w", err)
	}
	return nil
}

// resolve follows symlinks so a linked document is replaced at its real
// location and the link survives. A missing file resolves to the path itself.
func (s *Store) resolve() (string, error) {
	target, err := filepath.EvalSymlinks(s.path)
	if err == nil {
		return target, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("resolve profiles path: %w", err)
	}
	// A dangling link still points somewhere; write there.
	if link, lerr := os.Readlink(s.path); lerr == nil {
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(s.path), link)
		}
		return link, nil
	}
	return s.path, nil
}
