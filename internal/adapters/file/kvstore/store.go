// Package kvstore implements the durable-store port on the local filesystem:
// one JSON file per key under a root directory, written atomically via a
// temp file and rename. This is the persistent backend for single-device use.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	portkvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

type Store struct {
	dir string

	// mu serializes writes so a rename never races a concurrent write to the
	// same key from this process.
	mu sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", portkvstore.ErrIO, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%w: %v", portkvstore.ErrIO, err)
	}
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: read %s: %v", portkvstore.ErrIO, key, err)
	}
	return string(raw), true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", portkvstore.ErrIO, err)
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", portkvstore.ErrIO, key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", portkvstore.ErrIO, key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", portkvstore.ErrIO, key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", portkvstore.ErrIO, key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", portkvstore.ErrIO, err)
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: delete %s: %v", portkvstore.ErrIO, key, err)
	}
	return nil
}

// pathFor rejects keys that would escape the data directory. Keys are simple
// identifiers ("trips", "user"); anything else is a programming error.
func (s *Store) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: invalid key %q", portkvstore.ErrIO, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
