// Package fileserver reads and writes uploaded files below a base
// directory on local disk.
package fileserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o644
)

const (
	CoversDir   = "covers"
	ProfilesDir = "profiles"
)

var ErrInvalidPath = errors.New("invalid file path")

// topLevelDirectories lists the directories files may be written below.
var topLevelDirectories = []string{CoversDir, ProfilesDir}

type FileServer struct {
	baseDir string
}

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	return f.baseDir
}

// cleanPath resolves path below baseDir. The path must be relative, stay
// inside baseDir and start with one of the top level directories.
func cleanPath(baseDir, path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, path)
	}

	rel := filepath.Clean(path)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes the base directory", ErrInvalidPath, path)
	}

	top, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	if !slices.Contains(topLevelDirectories, top) {
		return "", fmt.Errorf("%w: %q is outside the upload directories", ErrInvalidPath, path)
	}

	return filepath.Join(baseDir, rel), nil
}

// Write stores data at path, replacing any existing file.
func (f *FileServer) Write(path string, data []byte) (n int, err error) {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return 0, fmt.Errorf("creating parent directories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullpath), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("writing file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), filePerms); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullpath); err != nil {
		return 0, fmt.Errorf("moving file into place: %w", err)
	}

	return n, nil
}

// Delete removes the file at path. Deleting a missing file is not an error.
func (f *FileServer) Delete(path string) error {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullpath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

func (f *FileServer) Exists(path string) (bool, error) {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullpath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// Handler serves the stored files below urlPrefix. Directory listings are
// not served.
func (f *FileServer) Handler(urlPrefix string) http.Handler {
	files := http.FileServer(http.Dir(f.baseDir))
	return http.StripPrefix(urlPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}
