package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindPackageRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ManifestName), []byte(`{"name":"demo"}`), 0644); err != nil {
		t.Fatalf("failed to write package.json: %v", err)
	}
	nested := filepath.Join(root, "src", "lib")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	tests := []struct {
		name  string
		start string
	}{
		{"package root itself", root},
		{"nested directory", nested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPackageRootFinder(tt.start).Find()
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			want, _ := filepath.Abs(root)
			if got != want {
				t.Errorf("Find() = %q, want %q", got, want)
			}
		})
	}
}

func TestFindPackageRootNearestWins(t *testing.T) {
	root := t.TempDir()
	inner := filepath.Join(root, "packages", "inner")
	if err := os.MkdirAll(inner, 0755); err != nil {
		t.Fatalf("failed to create inner dir: %v", err)
	}
	for _, dir := range []string{root, inner} {
		if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(`{}`), 0644); err != nil {
			t.Fatalf("failed to write package.json: %v", err)
		}
	}

	got, err := FindPackageRoot(inner)
	if err != nil {
		t.Fatalf("FindPackageRoot() error = %v", err)
	}
	if got != inner {
		t.Errorf("FindPackageRoot() = %q, want %q", got, inner)
	}
}

func TestFindPackageRootIgnoresDirectoryManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ManifestName), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	// Other ancestors of a temp dir are not expected to hold a package.json
	_, err := FindPackageRoot(root)
	if err != nil && !errors.Is(err, ErrPackageRootNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
	if err == nil {
		t.Skip("an ancestor of the temp dir contains package.json")
	}
}
