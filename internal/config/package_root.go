package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ManifestName is the file that marks an npm package root
const ManifestName = "package.json"

// ErrPackageRootNotFound is returned when no ancestor directory has a package.json
var ErrPackageRootNotFound = errors.New("unable to find a package.json for the current path. Make sure you're running pubcop in the prepublishOnly/prepublish npm script")

// PackageRootFinder locates the package root for a run.
type PackageRootFinder interface {
	Find() (string, error)
}

// DirPackageRootFinder searches upward from StartDir for a package.json.
type DirPackageRootFinder struct {
	// StartDir is where the search begins (empty = current working directory)
	StartDir string
}

// NewPackageRootFinder creates a finder that starts at dir.
func NewPackageRootFinder(dir string) *DirPackageRootFinder {
	return &DirPackageRootFinder{StartDir: dir}
}

// Find returns the nearest ancestor of StartDir, including StartDir itself,
// that contains a package.json.
func (f *DirPackageRootFinder) Find() (string, error) {
	start := f.StartDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = cwd
	}
	return FindPackageRoot(start)
}

// FindPackageRoot walks up from dir looking for a package.json.
func FindPackageRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		manifest := filepath.Join(current, ManifestName)
		if info, err := os.Stat(manifest); err == nil && !info.IsDir() {
			return current, nil
		}

		// Move up one directory
		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			break
		}
		current = parent
	}

	return "", ErrPackageRootNotFound
}
