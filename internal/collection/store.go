// Package collection implements the persisted-collection pattern shared by
// every state container in the app: a named, insertion-ordered list of
// uniquely identified records, cached in memory and written through to a
// durable key-value store as a whole on every mutation.
package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

// Entity is a record with a unique, immutable identifier.
type Entity interface {
	EntityID() string
}

const schemaVersion = 1

// defaultTimeout bounds a single durable-store call. The backend contract
// says calls eventually complete or fail; the deadline turns a hanging
// backend into a surfaced I/O error.
const defaultTimeout = 5 * time.Second

// envelope is the persisted shape. The version tag tolerates future field
// additions; payloads written before versioning (a bare JSON array) still
// decode.
type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

type Options struct {
	// Strict makes Update/Remove return ErrNotFound on an unmatched
	// identifier instead of silently no-opping.
	Strict bool

	// Timeout bounds each durable-store call. Zero means defaultTimeout.
	Timeout time.Duration

	Logger *slog.Logger

	// NewID overrides identifier generation for deterministic tests.
	// The default is uuid.NewString.
	NewID func() string
}

// Store manages one named collection of records backed by a durable
// key-value store.
//
// Consistency model:
//   - the whole collection is re-serialized and persisted after each mutation
//   - mutations are serialized by an internal mutex, so back-to-back calls
//     cannot race on the cached slice and lose updates
//   - writes are two-phase: the next collection state is persisted first and
//     committed to the visible in-memory state only on success, so a failed
//     write never exposes changes that were not durably saved
type Store[T Entity] struct {
	key    string
	kv     kvstore.Store
	log    *slog.Logger
	newID  func() string
	withID func(T, string) T

	strict  bool
	timeout time.Duration

	mu     sync.Mutex
	loaded bool
	items  []T
}

// New constructs a store over key. withID must return a copy of the record
// carrying the assigned identifier; Add uses it when generating IDs.
func New[T Entity](kv kvstore.Store, key string, withID func(T, string) T, opts Options) *Store[T] {
	s := &Store[T]{
		key:     key,
		kv:      kv,
		withID:  withID,
		strict:  opts.Strict,
		timeout: opts.Timeout,
		log:     opts.Logger,
		newID:   opts.NewID,
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Load reads the collection from durable storage, replacing the in-memory
// cache. An absent key yields an empty collection, not an error. A present
// but unparseable value is discarded: Load logs the condition and falls back
// to an empty collection rather than failing the caller.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

// All returns the cached collection, loading from durable storage on first
// use. Mutating the returned slice does not affect the store.
func (s *Store[T]) All(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

// Get returns the record with the given identifier from the cached view.
func (s *Store[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return zero, false, err
	}
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true, nil
	}
	return zero, false, nil
}

// Add assigns a fresh unique identifier, appends the record preserving
// insertion order, persists the full collection, and returns the stored
// record including its identifier.
func (s *Store[T]) Add(ctx context.Context, rec T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return zero, err
	}
	rec = s.withID(rec, s.newID())
	next := append(s.snapshotLocked(), rec)
	if err := s.persistLocked(ctx, next); err != nil {
		return zero, err
	}
	s.items = next
	return rec, nil
}

// Insert appends a record that already carries its identifier (saved items
// reuse catalog IDs). It rejects empty and duplicate identifiers.
func (s *Store[T]) Insert(ctx context.Context, rec T) error {
	id := rec.EntityID()
	if id == "" {
		return fmt.Errorf("insert into %q: empty id", s.key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}
	if s.indexLocked(id) >= 0 {
		return fmt.Errorf("insert %q into %q: %w", id, s.key, ErrAlreadyExists)
	}
	next := append(s.snapshotLocked(), rec)
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Update locates the record by identifier and replaces it with apply's
// result, then persists. An unmatched identifier is a no-op (ErrNotFound in
// strict mode); callers must not rely on an error for validation.
func (s *Store[T]) Update(ctx context.Context, id string, apply func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}
	i := s.indexLocked(id)
	if i < 0 {
		if s.strict {
			return fmt.Errorf("update %q in %q: %w", id, s.key, ErrNotFound)
		}
		return nil
	}
	next := s.snapshotLocked()
	next[i] = apply(next[i])
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Remove deletes the record with the given identifier and persists. An
// unmatched identifier is a no-op (ErrNotFound in strict mode).
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}
	i := s.indexLocked(id)
	if i < 0 {
		if s.strict {
			return fmt.Errorf("remove %q from %q: %w", id, s.key, ErrNotFound)
		}
		return nil
	}
	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Contains reports whether a record with the identifier exists in the cached
// view. It performs no I/O: before the first Load/All it reports false.
func (s *Store[T]) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return false
	}
	return s.indexLocked(id) >= 0
}

func (s *Store[T]) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *Store[T]) loadLocked(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, ok, err := s.kv.Get(cctx, s.key)
	if err != nil {
		return fmt.Errorf("load collection %q: %w", s.key, err)
	}
	if !ok {
		s.items = nil
		s.loaded = true
		return nil
	}
	items, err := decodeItems[T]([]byte(raw))
	if err != nil {
		// Recover locally: a corrupt value must not take the app down.
		// The prior durable state is overwritten on the next mutation.
		s.log.Warn("discarding corrupt collection payload",
			"key", s.key,
			"error", err,
		)
		s.items = nil
		s.loaded = true
		return nil
	}
	s.items = items
	s.loaded = true
	return nil
}

func (s *Store[T]) persistLocked(ctx context.Context, items []T) error {
	raw, err := json.Marshal(envelope[T]{Version: schemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", s.key, err)
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.kv.Set(cctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("persist collection %q: %w", s.key, err)
	}
	return nil
}

func (s *Store[T]) indexLocked(id string) int {
	for i, it := range s.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) snapshotLocked() []T {
	return append([]T(nil), s.items...)
}

// decodeItems accepts both the versioned envelope and the legacy bare-array
// payload written before versioning existed.
func decodeItems[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		return items, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return env.Items, nil
}
