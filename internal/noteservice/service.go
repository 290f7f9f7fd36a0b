// Package noteservice implements the five note operations shared by every
// front end: list, get, create, update, delete.
package noteservice

import (
	"context"
	"fmt"

	"github.com/calder/jot/internal/apperr"
	"github.com/calder/jot/internal/notestore"
)

// Service coordinates note operations over the record store.
type Service struct {
	store *notestore.DB
}

// NewService creates a new note service owning the given store handle.
func NewService(store *notestore.DB) *Service {
	return &Service{store: store}
}

// ListNotes returns all notes matching the filter, most recently created
// first. An empty filter returns every note.
func (s *Service) ListNotes(ctx context.Context, f notestore.Filter) ([]notestore.Note, error) {
	return s.store.List(ctx, f)
}

// GetNote returns the note for id, or apperr.ErrNotFound.
func (s *Service) GetNote(ctx context.Context, id int64) (*notestore.Note, error) {
	n, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.ErrNotFound
	}
	return n, nil
}

// CreateNote inserts a new note and re-reads it so the caller gets the
// stored representation, store-formatted timestamps included.
func (s *Service) CreateNote(ctx context.Context, title, content string) (*notestore.Note, error) {
	id, err := s.store.Insert(ctx, title, content)
	if err != nil {
		return nil, err
	}
	n, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("noteservice: note %d vanished after insert", id)
	}
	return n, nil
}

// UpdateNote replaces title and content for an existing note and returns the
// refreshed row. A nonexistent id returns apperr.ErrNotFound without issuing
// the update; the existence check and the update are two store calls and are
// not atomic.
func (s *Service) UpdateNote(ctx context.Context, id int64, title, content string) (*notestore.Note, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.ErrNotFound
	}
	if _, err := s.store.Update(ctx, id, title, content); err != nil {
		return nil, err
	}
	n, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		// Lost a race with a concurrent delete.
		return nil, apperr.ErrNotFound
	}
	return n, nil
}

// DeleteNote removes a note. A nonexistent id returns apperr.ErrNotFound;
// the existence check, not the affected-row count, is the uniform not-found
// signal across update and delete.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.ErrNotFound
	}
	_, err = s.store.Delete(ctx, id)
	return err
}
