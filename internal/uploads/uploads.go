// Package uploads persists complaint images to a file area on disk.
// Only the resulting paths are recorded on the complaint entity; the files
// themselves are served back statically.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Store writes uploaded files into a single directory.
type Store struct {
	Dir string
}

// NewStore creates the upload directory if it does not exist yet.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// Save writes one uploaded file to disk and returns its stored path.
// The filename is derived from the upload time plus the original extension;
// nanosecond precision keeps two files of the same request apart.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(fh.Filename))
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAll persists every file in order and returns the stored paths.
// A file already written before a later failure is left behind; there is no
// compensating cleanup.
func (s *Store) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
