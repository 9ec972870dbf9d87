package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"hotel-console/internal/storage"
)

// Config wires a Store to one entity type.
//
// Key extracts the primary (or compound) key of a record.  Encode
// produces the wire form handed to encoding/json; Decode parses one
// raw array element and may fail for that element alone.  Clone, if
// set, deep-copies a record so callers never share slices with the
// store's internal state; when nil a plain value copy is used.
// Check, if set, runs before every upsert and may reject it with a
// sentinel error from this package.
type Config[T any] struct {
	Path   string
	Key    func(T) string
	Encode func(T) any
	Decode func(json.RawMessage) (T, error)
	Clone  func(T) T
	Check  func(items []T, next T) error
	Logger zerolog.Logger
}

// Store holds an ordered collection of one entity type in memory.
// Disk is touched only by Load and SaveAll; no operation
// auto-persists.  Not safe for concurrent use: the tool is
// single-threaded and two stores must never share a backing path
// (last writer wins).
type Store[T any] struct {
	cfg   Config[T]
	items []T
}

// NewStore returns an empty store; call Load before reading.
func NewStore[T any](cfg Config[T]) *Store[T] {
	return &Store[T]{cfg: cfg}
}

// Load replaces the in-memory collection with the contents of the
// backing file.  A missing file bootstraps an empty collection on
// disk and succeeds.  Elements that fail to decode are skipped and
// logged; only an unreadable file or a non-array top level fails
// the load.
func (s *Store[T]) Load() error {
	data, err := os.ReadFile(s.cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if werr := storage.WriteFileAtomic(s.cfg.Path, []byte("[]\n")); werr != nil {
				return werr
			}
			s.items = nil
			return nil
		}
		return fmt.Errorf("load %s: %w", s.cfg.Path, err)
	}

	s.items = nil
	if len(data) == 0 {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("load %s: expected a JSON array: %w", s.cfg.Path, err)
	}

	items := make([]T, 0, len(raw))
	for i, elem := range raw {
		rec, err := s.cfg.Decode(elem)
		if err != nil {
			s.cfg.Logger.Warn().Err(err).
				Str("path", s.cfg.Path).
				Int("index", i).
				Msg("skipping unreadable record")
			continue
		}
		items = append(items, rec)
	}
	s.items = items
	return nil
}

// SaveAll writes every record, in collection order, through the
// atomic file writer.  The in-memory collection is never mutated by
// a save, successful or not.
func (s *Store[T]) SaveAll() error {
	docs := make([]any, 0, len(s.items))
	for _, rec := range s.items {
		docs = append(docs, s.cfg.Encode(rec))
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.cfg.Path, err)
	}
	return storage.WriteFileAtomic(s.cfg.Path, append(data, '\n'))
}

// Get returns a copy of the record with the given key.
func (s *Store[T]) Get(key string) (T, bool) {
	for _, rec := range s.items {
		if s.cfg.Key(rec) == key {
			return s.clone(rec), true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the record with a matching key, or appends the
// record preserving insertion order.  The configured invariant
// check runs first and its rejection is returned unchanged.
func (s *Store[T]) Upsert(rec T) error {
	if s.cfg.Check != nil {
		if err := s.cfg.Check(s.items, rec); err != nil {
			return err
		}
	}
	stored := s.clone(rec)
	key := s.cfg.Key(rec)
	for i := range s.items {
		if s.cfg.Key(s.items[i]) == key {
			s.items[i] = stored
			return nil
		}
	}
	s.items = append(s.items, stored)
	return nil
}

// Remove deletes the record with the given key and reports whether
// anything was removed.
func (s *Store[T]) Remove(key string) bool {
	for i := range s.items {
		if s.cfg.Key(s.items[i]) == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the whole collection in insertion order.
func (s *Store[T]) List() []T {
	out := make([]T, 0, len(s.items))
	for _, rec := range s.items {
		out = append(out, s.clone(rec))
	}
	return out
}

// ListWhere returns copies of the records matching pred, in order.
func (s *Store[T]) ListWhere(pred func(T) bool) []T {
	var out []T
	for _, rec := range s.items {
		if pred(rec) {
			out = append(out, s.clone(rec))
		}
	}
	return out
}

// Len reports the number of records currently loaded.
func (s *Store[T]) Len() int { return len(s.items) }

// ResolvedPath is the backing file path, for diagnostics.
func (s *Store[T]) ResolvedPath() string { return s.cfg.Path }

func (s *Store[T]) clone(rec T) T {
	if s.cfg.Clone != nil {
		return s.cfg.Clone(rec)
	}
	return rec
}
