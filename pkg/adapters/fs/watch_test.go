package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

func waitEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return core.Event{}
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, path := setupRepo(t, func(c *fs.Config) {
		c.Debounce = 20 * time.Millisecond
	})

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return repo.State().(fs.RepositoryState).WatcherActive
	}, time.Second, 10*time.Millisecond)

	t.Run("Ignores Other Files", func(t *testing.T) {
		other := filepath.Join(filepath.Dir(path), "scratch.txt")
		require.NoError(t, os.WriteFile(other, []byte("noise"), 0644))

		select {
		case e := <-events:
			t.Fatalf("unexpected event for unrelated file: %v", e)
		case <-time.After(150 * time.Millisecond):
		}
	})

	t.Run("Reports Save", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, core.Collection{{Text: "x", Timestamp: "2024-01-01 09:00:00"}}))

		e := waitEvent(t, events)
		assert.Equal(t, path, e.Path)
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	})

	t.Run("Reports Delete", func(t *testing.T) {
		time.Sleep(50 * time.Millisecond)
		require.NoError(t, os.Remove(path))

		e := waitEvent(t, events)
		assert.Equal(t, core.EventDelete, e.Type)
	})

	t.Run("Closes On Cancel", func(t *testing.T) {
		cancel()
		require.Eventually(t, func() bool {
			select {
			case _, ok := <-events:
				return !ok
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)
		assert.False(t, repo.State().(fs.RepositoryState).WatcherActive)
	})
}

func TestWatch_AtomicSaveIsSingleEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, _ := setupRepo(t, func(c *fs.Config) {
		c.AtomicWrites = true
		c.Debounce = 100 * time.Millisecond
	})

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, core.Collection{}))
	waitEvent(t, events)

	select {
	case e := <-events:
		t.Fatalf("expected one coalesced event, got extra %v", e)
	case <-time.After(250 * time.Millisecond):
	}
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo, _ := setupRepo(t, func(c *fs.Config) {
		c.WatchPattern = "[unclosed"
	})

	_, err := repo.Watch(context.Background())
	assert.Error(t, err)
}

func TestState(t *testing.T) {
	repo, path := setupRepo(t, func(c *fs.Config) {
		c.AtomicWrites = true
	})
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, core.Collection{{Text: "a"}, {Text: "b"}}))
	_, err := repo.Load(ctx)
	require.NoError(t, err)

	state := repo.State().(fs.RepositoryState)
	assert.Equal(t, path, state.Path)
	assert.True(t, state.AtomicWrites)
	assert.Equal(t, "fail", state.CorruptPolicy)
	assert.Equal(t, 2, state.LoadedCount)
	assert.NotNil(t, state.LastLoad)
	assert.NotNil(t, state.LastSave)
	assert.Equal(t, "json-file", repo.ComponentType())
}
