package fs_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// setupRepo creates an initialized repository rooted in a temp dir.
// It returns the repository and the path of the store file.
func setupRepo(t *testing.T, opts ...func(*fs.Config)) (*fs.Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store", "notes.json")
	cfg := fs.Config{Path: path}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo := fs.NewRepository(cfg)
	require.NoError(t, repo.Initialize(context.Background()))
	return repo, path
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Parent Directory", func(t *testing.T) {
		_, path := setupRepo(t)

		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		repo := fs.NewRepository(fs.Config{
			Path:      filepath.Join(t.TempDir(), "missing", "notes.json"),
			MustExist: true,
		})
		assert.Error(t, repo.Initialize(context.Background()))
	})

	t.Run("Fails if Path Is a Directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "notes.json"), 0755))

		repo := fs.NewRepository(fs.Config{Path: filepath.Join(dir, "notes.json")})
		assert.Error(t, repo.Initialize(context.Background()))
	})
}

func TestLoad_MissingFile(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	notes, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestSave_FileFormat(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()

	notes := core.Collection{
		{Text: "Buy milk", Timestamp: "2024-01-01 09:00:00"},
		{Text: "a <b> & c", Timestamp: "2024-01-01 09:00:01"},
	}
	require.NoError(t, repo.Save(ctx, notes))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "note": "Buy milk",
    "timestamp": "2024-01-01 09:00:00"
  },
  {
    "note": "a <b> & c",
    "timestamp": "2024-01-01 09:00:01"
  }
]
`
	assert.Equal(t, want, string(got))

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSave_EmptyCollectionIsArray(t *testing.T) {
	repo, path := setupRepo(t)

	require.NoError(t, repo.Save(context.Background(), nil))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(got))
}

func TestRoundTrip_Idempotent(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()

	orig := core.Collection{
		{Text: "line one\nline two", Timestamp: "2024-01-01 09:00:00"},
		{Text: "ünïcødé ✓", Timestamp: "2024-02-29 23:59:59"},
		{Text: `quotes "and" \backslashes\`, Timestamp: ""},
	}
	require.NoError(t, repo.Save(ctx, orig))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)

	require.NoError(t, repo.Save(ctx, loaded))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second), "save(load()) changed the file")
}

func TestLoad_AcceptsForeignIndentation(t *testing.T) {
	repo, path := setupRepo(t)
	raw := `[{"note": "Buy milk", "timestamp": "2024-01-01 09:00:00"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	notes, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.Collection{{Text: "Buy milk", Timestamp: "2024-01-01 09:00:00"}}, notes)
}

func TestLoad_Corrupt(t *testing.T) {
	cases := map[string]string{
		"Truncated":       `[{"note": "Buy`,
		"Empty File":      ``,
		"Object":          `{"note": "x", "timestamp": "y"}`,
		"Null":            `null`,
		"Wrong Element":   `[1, 2]`,
		"Unknown Field":   `[{"note": "x", "timestamp": "y", "id": 3}]`,
		"Trailing Data":   `[] []`,
		"Not JSON At All": `hello`,
		"Null Element":    `[null]`,
		"Empty Object":    `[{}]`,
		"Missing Stamp":   `[{"note": "x"}]`,
		"Upper Case Keys": `[{"NOTE": "x", "TIMESTAMP": "2024-01-01 09:00:00"}]`,
		"Mixed Case Key":  `[{"Note": "x", "timestamp": "2024-01-01 09:00:00"}]`,
		"Blank Note":      `[{"note": "  ", "timestamp": "2024-01-01 09:00:00"}]`,
		"Number Note":     `[{"note": 7, "timestamp": "2024-01-01 09:00:00"}]`,
		"Null Stamp":      `[{"note": "x", "timestamp": null}]`,
		"Second Bad":      `[{"note": "x", "timestamp": "y"}, {"note": "z"}]`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			t.Run("Fail Policy", func(t *testing.T) {
				repo, path := setupRepo(t)
				require.NoError(t, os.WriteFile(path, []byte(content), 0644))

				_, err := repo.Load(context.Background())
				require.ErrorIs(t, err, core.ErrParse)

				var pe *core.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, path, pe.Path)
			})

			t.Run("Empty Policy", func(t *testing.T) {
				repo, path := setupRepo(t, func(c *fs.Config) {
					c.CorruptPolicy = fs.CorruptEmpty
				})
				require.NoError(t, os.WriteFile(path, []byte(content), 0644))

				notes, err := repo.Load(context.Background())
				require.NoError(t, err)
				assert.Empty(t, notes)
			})
		})
	}
}

func TestParseCorruptPolicy(t *testing.T) {
	p, err := fs.ParseCorruptPolicy("")
	require.NoError(t, err)
	assert.Equal(t, fs.CorruptFail, p)

	p, err = fs.ParseCorruptPolicy("empty")
	require.NoError(t, err)
	assert.Equal(t, fs.CorruptEmpty, p)

	_, err = fs.ParseCorruptPolicy("ignore")
	assert.Error(t, err)
}

func TestSave_Atomic(t *testing.T) {
	repo, path := setupRepo(t, func(c *fs.Config) {
		c.AtomicWrites = true
	})
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("[]"), 0600))
	require.NoError(t, repo.Save(ctx, core.Collection{{Text: "x", Timestamp: "2024-01-01 09:00:00"}}))

	notes, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files left behind")
	assert.Equal(t, "notes.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	t.Logf("File permissions: %v", info.Mode())
}

func TestServiceIntegration(t *testing.T) {
	repo, path := setupRepo(t)
	ctx := context.Background()

	tick := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	svc := core.NewService(repo, core.WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))

	for _, text := range []string{"a", "b", "c"} {
		_, err := svc.Add(ctx, text)
		require.NoError(t, err)
	}
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, "B")
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	// Only the middle object differs; the first and last records are byte-identical.
	beforeNotes, afterNotes := mustParse(t, before), mustParse(t, after)
	assert.Equal(t, beforeNotes[0], afterNotes[0])
	assert.Equal(t, beforeNotes[2], afterNotes[2])
	assert.Equal(t, "B", afterNotes[1].Text)
	assert.Equal(t, "2024-01-01 09:00:04", afterNotes[1].Timestamp)

	removed, err := svc.Remove(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", removed.Text)

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "c"}, texts(notes))
}

func mustParse(t *testing.T, data []byte) core.Collection {
	t.Helper()
	c, err := fs.NewJSONSerializer().Parse(bytes.NewReader(data))
	require.NoError(t, err)
	return c
}

func texts(c core.Collection) []string {
	out := make([]string, 0, len(c))
	for _, n := range c {
		out = append(out, n.Text)
	}
	return out
}
