package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// storeName is unlikely to exist above the test temp dir.
const storeName = "jot-test-store.json"

func TestFindRoot(t *testing.T) {
	// /tmp/
	//   home/ (store file)
	//     subdir/
	//       nested/
	//   empty/
	//     store/ (a directory with the store name)

	baseDir := t.TempDir()
	homeDir := filepath.Join(baseDir, "home")
	subDir := filepath.Join(homeDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(emptyDir, storeName), 0755); err != nil {
		t.Fatal(err)
	}
	store := filepath.Join(homeDir, storeName)
	if err := os.WriteFile(store, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: homeDir,
			want:      store,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			want:      store,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			want:      store,
		},
		{
			name:      "Directory Named Like Store Is Skipped",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath, storeName)
			if tt.wantErr {
				if !errors.Is(err, ErrRootNotFound) {
					t.Errorf("FindRoot(%q) = %q, %v; want ErrRootNotFound", tt.startPath, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindRoot(%q) failed: %v", tt.startPath, err)
			}
			if got != tt.want {
				t.Errorf("FindRoot(%q) = %q; want %q", tt.startPath, got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	baseDir := t.TempDir()
	child := filepath.Join(baseDir, "child")
	if err := os.Mkdir(child, 0755); err != nil {
		t.Fatal(err)
	}

	if got := ResolvePath("/explicit/notes.json", child, storeName); got != "/explicit/notes.json" {
		t.Errorf("explicit path ignored: %q", got)
	}

	if got, want := ResolvePath("", child, storeName), filepath.Join(child, storeName); got != want {
		t.Errorf("fallback = %q; want %q", got, want)
	}

	store := filepath.Join(baseDir, storeName)
	if err := os.WriteFile(store, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ResolvePath("", child, storeName); got != store {
		t.Errorf("upward search = %q; want %q", got, store)
	}
}
