package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TableStore abstracts the persistent storage of serialized lookup tables.
// Keys are the file-name-shaped strings produced by KeyGenerator.
type TableStore interface {
	// Load returns the stored bytes for key, or a NOT_FOUND CacheError
	// when nothing readable is stored under it.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save stores data under key, overwriting any previous contents.
	Save(ctx context.Context, key string, data []byte) error
}

// FileStore keeps each table in one flat file under a directory. Files are
// the serialized tables themselves, with no metadata sidecar; integrity is
// the codec's embedded checksum.
type FileStore struct {
	dir    string
	keyGen KeyGenerator
}

// NewFileStore creates a FileStore rooted at dir. The directory tree is
// created lazily on first write.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, NewValidationError("store directory cannot be empty", nil)
	}
	return &FileStore{dir: dir, keyGen: NewKeyGenerator()}, nil
}

// Load reads the file for key. A missing or unreadable file is reported as
// NOT_FOUND so that callers fall into their rebuild path.
func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	if err := s.keyGen.ValidateKey(key); err != nil {
		return nil, NewValidationError("invalid table key", err)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(key)
		}
		return nil, NewCacheError(ErrorTypeNotFound, key, fmt.Sprintf("unreadable table file: %v", err), err)
	}
	return data, nil
}

// Save writes the file for key, creating the directory tree on first use.
// Keys double as file names, so anything outside the key pattern is
// rejected before it can touch the filesystem.
func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	if err := s.keyGen.ValidateKey(key); err != nil {
		return NewValidationError("invalid table key", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return NewPersistenceError(key, "cannot create cache directory", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return NewPersistenceError(key, "cannot write table file", err)
	}
	return nil
}

// DefaultCacheDir returns the platform cache directory for lookup tables:
// <user cache dir>/slidy-cli/solver/pdb.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", NewValidationError("no user cache directory available", err)
	}
	return filepath.Join(base, "slidy-cli", "solver", "pdb"), nil
}
