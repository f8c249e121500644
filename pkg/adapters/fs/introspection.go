package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	AtomicWrites  bool       `json:"atomic_writes"`
	CorruptPolicy string     `json:"corrupt_policy"`
	WatchPattern  string     `json:"watch_pattern,omitempty"`
	WatcherActive bool       `json:"watcher_active"`
	LoadedCount   int        `json:"loaded_count"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		AtomicWrites:  r.config.AtomicWrites,
		CorruptPolicy: string(r.config.CorruptPolicy),
		WatchPattern:  r.config.WatchPattern,
		WatcherActive: r.watcherActive,
		LoadedCount:   r.loadedCount,
		LastLoad:      r.lastLoad,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "json-file"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordLoad(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastLoad = &now
	r.loadedCount = count
}

func (r *Repository) recordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
}
