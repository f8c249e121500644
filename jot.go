package jot

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Collection is a public alias for the ordered list of notes.
type Collection = core.Collection

// Service is a public alias for the domain service.
type Service = core.Service

// DefaultFileName is the store looked up when no path is given.
const DefaultFileName = fs.DefaultFileName

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithMustExist requires the directory of the store file to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithAtomicWrites enables temp-file-plus-rename saves.
func WithAtomicWrites(enabled bool) Option {
	return platform.WithAtomicWrites(enabled)
}

// WithCorruptPolicy selects "fail" or "empty" for stores that do not parse.
func WithCorruptPolicy(policy string) Option {
	return platform.WithCorruptPolicy(policy)
}

// WithWatchPattern overrides the base-name pattern used by Watch.
func WithWatchPattern(pattern string) Option {
	return platform.WithWatchPattern(pattern)
}

// WithWatchDebounce sets the quiet period used to coalesce watch events.
func WithWatchDebounce(d time.Duration) Option {
	return platform.WithWatchDebounce(d)
}

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithWatcherErrorHandler registers a callback for errors raised inside the watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new jot Service for the store at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init prepares the store explicitly and returns its repository.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// FindStore walks upward from startDir looking for a store file called name.
func FindStore(startDir, name string) (string, error) {
	return platform.FindRoot(startDir, name)
}

// ResolveStorePath returns explicit if set, else the nearest ancestor store,
// else name inside cwd.
func ResolveStorePath(explicit, cwd, name string) string {
	return platform.ResolvePath(explicit, cwd, name)
}
