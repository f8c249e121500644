package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned by FindRoot when no ancestor holds the store file.
var ErrRootNotFound = errors.New("store file not found")

// FindRoot walks upward from startDir looking for a regular file called name.
// It returns the absolute path of the first match.
func FindRoot(startDir, name string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// ResolvePath picks the store path: an explicit path wins, then an upward
// search for name from cwd, then name inside cwd.
func ResolvePath(explicit, cwd, name string) string {
	if explicit != "" {
		return explicit
	}
	if found, err := FindRoot(cwd, name); err == nil {
		return found
	}
	return filepath.Join(cwd, name)
}
