package service

import (
	"context"
	"fmt"
	"io"

	"wacomsync/internal/codec"
	"wacomsync/internal/domain"
)

// ProfileStore persists named profiles. profile.Store implements it.
type ProfileStore interface {
	Load() (domain.ProfileSet, error)
	Get(name string) (domain.Profile, error)
	Save(name string, p domain.Profile) error
}

// ProfileService provides the named-profile workflows
type ProfileService struct {
	store   ProfileStore
	session *Session
}

// NewProfileService creates a profile service. session may be nil for
// commands that never touch hardware.
func NewProfileService(store ProfileStore, session *Session) *ProfileService {
	return &ProfileService{
		store:   store,
		session: session,
	}
}

// List returns every saved profile
func (s *ProfileService) List() (domain.ProfileSet, error) {
	return s.store.Load()
}

// Save stores a profile under name
func (s *ProfileService) Save(name string, p domain.Profile) error {
	return s.store.Save(name, p)
}

// ApplyNamed loads the profile called name and applies it
func (s *ProfileService) ApplyNamed(ctx context.Context, name string) (*domain.ApplyReport, error) {
	if s.session == nil {
		return nil, fmt.Errorf("no session available to apply %q", name)
	}
	p, err := s.store.Get(name)
	if err != nil {
		return nil, err
	}
	return s.session.apply(ctx, name, p)
}

// Export writes every saved profile with exp
func (s *ProfileService) Export(w io.Writer, exp codec.Exporter) error {
	profiles, err := s.store.Load()
	if err != nil {
		return err
	}
	if err := exp.Export(profiles, w); err != nil {
		return fmt.Errorf("export %s: %w", exp.Format(), err)
	}
	return nil
}

// Import reads profiles with imp and saves each one, overwriting profiles
// with the same name. It returns the names saved before any error.
func (s *ProfileService) Import(r io.Reader, imp codec.Importer) ([]string, error) {
	profiles, err := imp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", imp.Format(), err)
	}

	var saved []string
	for _, name := range profiles.Names() {
		if err := s.store.Save(name, profiles[name]); err != nil {
			return saved, err
		}
		saved = append(saved, name)
	}
	return saved, nil
}
