package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
)

var _ core.Watchable = (*Repository)(nil)

// Watch emits an event each time the store file changes on disk.
//
// The parent directory is watched rather than the file itself so that the
// watch survives the file being created, removed or replaced by rename.
// Bursts (truncate followed by write) are coalesced into one event.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	pattern := r.config.WatchPattern
	if pattern == "" {
		pattern = escapeMeta(filepath.Base(r.Path))
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, r.config.EventBuffer)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, pattern, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, events chan<- core.Event) error {
	timer := time.NewTimer(r.config.Debounce)
	timer.Stop()
	defer timer.Stop()

	var (
		pending *core.Event
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !matchBase(pattern, event.Name) {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			r.config.Logger.Debug("store event", "op", event.Op.String(), "name", event.Name)

			pending = &core.Event{
				Type:      eType,
				Path:      event.Name,
				Timestamp: time.Now().Unix(),
			}
			timer.Reset(r.config.Debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if pending == nil {
				continue
			}
			select {
			case events <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.reportError(err)
		}
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func matchBase(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, filepath.Base(name))
	return err == nil && ok
}

// escapeMeta quotes glob metacharacters so a literal file name can be used as a pattern.
func escapeMeta(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '*', '?', '[', ']', '{', '}':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
