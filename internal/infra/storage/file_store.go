package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore saves uploaded documents into a local directory.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "Files_To_Upload"
	}
	return &FileStore{Dir: dir}
}

// Save writes r to {dir}/{base name} and returns the path. An upload with the
// same name replaces the earlier one.
func (fs *FileStore) Save(name string, r io.Reader) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(fs.Dir, base)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
