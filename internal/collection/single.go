package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

// singleEnvelope is the persisted shape for a one-record collection.
type singleEnvelope[T any] struct {
	Version int `json:"version"`
	Record  *T  `json:"record"`
}

// Single manages a one-record collection, used for the session record. It
// follows the same load/mutate/persist cycle as Store: mutex-serialized
// mutations and two-phase writes.
type Single[T any] struct {
	key     string
	kv      kvstore.Store
	log     *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	loaded  bool
	present bool
	value   T
}

func NewSingle[T any](kv kvstore.Store, key string, opts Options) *Single[T] {
	s := &Single[T]{
		key:     key,
		kv:      kv,
		log:     opts.Logger,
		timeout: opts.Timeout,
	}
	if s.timeout <= 0 {
		s.timeout = defaultTimeout
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Get returns the record, loading from durable storage on first use.
// ok=false means no record is stored.
func (s *Single[T]) Get(ctx context.Context) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return zero, false, err
	}
	if !s.present {
		return zero, false, nil
	}
	return s.value, true, nil
}

// Put persists v as the record, replacing any existing one.
func (s *Single[T]) Put(ctx context.Context, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(ctx, v); err != nil {
		return err
	}
	s.loaded = true
	s.present = true
	s.value = v
	return nil
}

// Mutate replaces the record with apply's result. When no record exists this
// is a no-op and returns changed=false.
func (s *Single[T]) Mutate(ctx context.Context, apply func(T) T) (changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return false, err
	}
	if !s.present {
		return false, nil
	}
	next := apply(s.value)
	if err := s.persistLocked(ctx, next); err != nil {
		return false, err
	}
	s.value = next
	return true, nil
}

// Clear removes the record from memory and deletes the durable key. Calling
// it when no record exists is a no-op, not an error.
func (s *Single[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.kv.Delete(cctx, s.key); err != nil {
		return fmt.Errorf("clear %q: %w", s.key, err)
	}
	var zero T
	s.loaded = true
	s.present = false
	s.value = zero
	return nil
}

func (s *Single[T]) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	raw, ok, err := s.kv.Get(cctx, s.key)
	if err != nil {
		return fmt.Errorf("load %q: %w", s.key, err)
	}
	if !ok {
		s.present = false
		s.loaded = true
		return nil
	}
	rec, present, derr := decodeSingle[T]([]byte(raw))
	if derr != nil {
		s.log.Warn("discarding corrupt record payload",
			"key", s.key,
			"error", derr,
		)
		s.present = false
		s.loaded = true
		return nil
	}
	s.value = rec
	s.present = present
	s.loaded = true
	return nil
}

func (s *Single[T]) persistLocked(ctx context.Context, v T) error {
	raw, err := json.Marshal(singleEnvelope[T]{Version: schemaVersion, Record: &v})
	if err != nil {
		return fmt.Errorf("encode %q: %w", s.key, err)
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.kv.Set(cctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("persist %q: %w", s.key, err)
	}
	return nil
}

// decodeSingle accepts the versioned envelope and the legacy bare record
// (an object without a version tag) written before versioning existed.
func decodeSingle[T any](raw []byte) (T, bool, error) {
	var zero T
	trimmed := bytes.TrimSpace(raw)

	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return zero, false, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if probe.Version == 0 {
		var rec T
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return zero, false, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		return rec, true, nil
	}

	var env singleEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return zero, false, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if env.Record == nil {
		return zero, false, nil
	}
	return *env.Record, true, nil
}
