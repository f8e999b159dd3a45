package mkdocs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when the configuration file does not exist.
var ErrNotFound = errors.New("mkdocs config not found")

// defaultFileMode is used when the target file does not exist yet.
const defaultFileMode os.FileMode = 0o644

// Repository defines persistence operations for an MkDocs configuration.
type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FileRepository persists an MkDocs configuration on disk.
type FileRepository struct {
	// path is the filesystem location of the configuration file.
	path string
}

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the file the repository works on.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads and parses the configuration file.
func (r *FileRepository) Load(_ context.Context) (*Document, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}

		return nil, fmt.Errorf("read mkdocs config: %w", err)
	}

	return Parse(contents)
}

// Save encodes the document and replaces the file, keeping its permissions.
func (r *FileRepository) Save(_ context.Context, doc *Document) error {
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}

	mode := defaultFileMode
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(r.path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("write mkdocs config: %w", err)
	}

	return nil
}
