package core

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Service handles the business logic for notes.
// Every mutation is a full load-modify-save cycle against the Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exists reports whether the store has been written at least once.
func (s *Service) Exists(ctx context.Context) (bool, error) {
	return s.repo.Exists(ctx)
}

// List loads the whole collection.
func (s *Service) List(ctx context.Context) (Collection, error) {
	c, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = Collection{}
	}
	return c, nil
}

// Save overwrites the store with c.
func (s *Service) Save(ctx context.Context, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	return s.repo.Save(ctx, c)
}

// Get returns the note at index.
func (s *Service) Get(ctx context.Context, index int) (Note, error) {
	c, err := s.List(ctx)
	if err != nil {
		return Note{}, err
	}
	if err := checkIndex(c, index); err != nil {
		return Note{}, err
	}
	return c[index], nil
}

// Add stamps text with the current time and appends it.
func (s *Service) Add(ctx context.Context, text string) (Note, error) {
	if err := validateText(text); err != nil {
		return Note{}, err
	}

	c, err := s.List(ctx)
	if err != nil {
		return Note{}, err
	}

	n := NewNote(text, s.now())
	if err := s.repo.Save(ctx, append(c, n)); err != nil {
		return Note{}, err
	}
	return n, nil
}

// Update replaces the note at index with text stamped with the current time.
// All other notes are left untouched.
func (s *Service) Update(ctx context.Context, index int, text string) (Note, error) {
	if err := validateText(text); err != nil {
		return Note{}, err
	}

	c, err := s.List(ctx)
	if err != nil {
		return Note{}, err
	}
	if err := checkIndex(c, index); err != nil {
		return Note{}, err
	}

	n := NewNote(text, s.now())
	c[index] = n
	if err := s.repo.Save(ctx, c); err != nil {
		return Note{}, err
	}
	return n, nil
}

// Remove deletes the note at index and returns it.
// Later notes shift down by one.
func (s *Service) Remove(ctx context.Context, index int) (Note, error) {
	c, err := s.List(ctx)
	if err != nil {
		return Note{}, err
	}
	if err := checkIndex(c, index); err != nil {
		return Note{}, err
	}

	removed := c[index]
	rest := append(c[:index:index], c[index+1:]...)
	if err := s.repo.Save(ctx, rest); err != nil {
		return Note{}, err
	}
	return removed, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return InputError("note text cannot be empty")
	}
	return nil
}

func checkIndex(c Collection, index int) error {
	if index < 0 || index >= len(c) {
		return &IndexError{Index: index, Len: len(c)}
	}
	return nil
}
