package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrDirectoryNotFound is returned for a settings directory that does not exist.
var ErrDirectoryNotFound = errors.New("settings directory not found")

// SettingsDirectory is an existing directory holding configuration files.
type SettingsDirectory struct {
	path string
}

// NewSettingsDirectory resolves dir against the working directory, unless it
// is already absolute, and checks that it exists.
func NewSettingsDirectory(dir string) (SettingsDirectory, error) {
	path := dir
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return SettingsDirectory{}, fmt.Errorf("resolve settings directory: %w", err)
		}
		path = filepath.Join(wd, dir)
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return SettingsDirectory{}, fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	}
	return SettingsDirectory{path: path}, nil
}

// Path returns the absolute path.
func (d SettingsDirectory) Path() string { return d.path }

// Join returns a path below the directory.
func (d SettingsDirectory) Join(elem ...string) string {
	return filepath.Join(append([]string{d.path}, elem...)...)
}

func (d SettingsDirectory) String() string { return d.path }

// DirectoryReader lists the entries of a directory as full paths.
type DirectoryReader interface {
	ReadDirectory(dir string) ([]string, error)
}

// OSDirectoryReader reads the local filesystem. Subdirectories are skipped.
type OSDirectoryReader struct{}

func (OSDirectoryReader) ReadDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// FileFilter decides which directory entries are configuration files.
type FileFilter interface {
	IsConfigFile(path string) bool
}

// YAMLFileFilter keeps files whose name contains ".config.yaml".
type YAMLFileFilter struct{}

func (YAMLFileFilter) IsConfigFile(path string) bool {
	return strings.Contains(filepath.Base(path), ".config.yaml")
}

func filterConfigFiles(f FileFilter, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if f.IsConfigFile(p) {
			out = append(out, p)
		}
	}
	return out
}
