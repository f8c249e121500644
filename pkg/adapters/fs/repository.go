package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// DefaultFileName is the store file looked up when no path is configured.
const DefaultFileName = "notes.json"

// CorruptPolicy decides what Load does with a file that exists but does not parse.
type CorruptPolicy string

const (
	// CorruptFail surfaces a *core.ParseError.
	CorruptFail CorruptPolicy = "fail"
	// CorruptEmpty logs a warning and loads an empty collection.
	// The next Save overwrites the corrupt file.
	CorruptEmpty CorruptPolicy = "empty"
)

// ParseCorruptPolicy validates a policy name. Empty means CorruptFail.
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch CorruptPolicy(s) {
	case "", CorruptFail:
		return CorruptFail, nil
	case CorruptEmpty:
		return CorruptEmpty, nil
	default:
		return "", fmt.Errorf("unknown corrupt policy %q (want %q or %q)", s, CorruptFail, CorruptEmpty)
	}
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	MustExist bool // parent directory must already exist
	// AtomicWrites switches Save from truncate-and-write to temp-file-plus-rename.
	AtomicWrites  bool
	CorruptPolicy CorruptPolicy
	WatchPattern  string        // doublestar pattern matched against base names; defaults to the store file
	Debounce      time.Duration // zero means 50ms
	EventBuffer   int
	Logger        *slog.Logger
	ErrorHandler  func(error)
}

// Repository implements core.Repository on top of a single JSON file.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
	loadedCount   int
}

var _ core.Repository = (*Repository)(nil)

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Path == "" {
		config.Path = DefaultFileName
	}
	if config.CorruptPolicy == "" {
		config.CorruptPolicy = CorruptFail
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 16
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: NewJSONSerializer(),
	}
}

// Initialize ensures the directory holding the store file exists.
func (r *Repository) Initialize(ctx context.Context) error {
	dir := filepath.Dir(r.Path)

	if r.config.MustExist {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("store directory does not exist: %s", dir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store directory is not a directory: %s", dir)
		}
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if info, err := os.Stat(r.Path); err == nil && info.IsDir() {
		return fmt.Errorf("store path is a directory: %s", r.Path)
	}

	return nil
}

// Exists reports whether the store file is present.
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(r.Path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat notes file: %w", err)
	}
	return true, nil
}

// Load reads the store file. A missing file is an empty collection.
func (r *Repository) Load(ctx context.Context) (core.Collection, error) {
	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		r.recordLoad(0)
		return core.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	c, err := r.serializer.Parse(bytes.NewReader(data))
	if err != nil {
		if r.config.CorruptPolicy == CorruptEmpty {
			r.config.Logger.Warn("notes file is corrupt, treating as empty", "path", r.Path, "error", err)
			r.recordLoad(0)
			return core.Collection{}, nil
		}
		return nil, &core.ParseError{Path: r.Path, Err: err}
	}

	r.config.Logger.Debug("loaded notes", "path", r.Path, "count", len(c))
	r.recordLoad(len(c))
	return c, nil
}

// Save serializes c and overwrites the store file.
//
// Unless AtomicWrites is set the file is truncated and rewritten in place,
// so a crash mid-write can leave it corrupt.
func (r *Repository) Save(ctx context.Context, c core.Collection) error {
	if c == nil {
		c = core.Collection{}
	}

	data, err := r.serializer.Serialize(c)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	r.config.Logger.Debug("writing notes to disk", "path", r.Path, "count", len(c), "atomic", r.config.AtomicWrites)

	if r.config.AtomicWrites {
		err = writeFileAtomic(r.Path, data, 0644)
	} else {
		err = os.WriteFile(r.Path, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}

	r.recordSave()
	return nil
}

func (r *Repository) reportError(err error) {
	r.config.Logger.Error("watcher error", "path", r.Path, "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}
