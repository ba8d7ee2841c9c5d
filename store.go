package kasir

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage keys. Catalog and ledger writes must never fail silently; the
// preference blob is cosmetic and callers may swallow its failures.
const (
	ProductsKey     = "products"
	TransactionsKey = "transactions"
	PrefsKey        = "prefs"
)

// Store is the persistence adapter consumed by Catalog and Ledger: named
// JSON-serializable blobs, no business logic.
type Store interface {
	// Read decodes the blob stored under key into v. It reports false with
	// a nil error when the key has never been written.
	Read(key string, v any) (bool, error)
	// Write encodes v and stores it under key, replacing any previous blob.
	Write(key string, v any) error
}

// DirStore persists each blob as a JSON file in a data directory.
type DirStore struct {
	dir string
}

// OpenDirStore opens (creating if needed) the data directory.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStore) Read(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read blob %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &ParseError{Source: s.path(key), Err: err}
	}
	return true, nil
}

func (s *DirStore) Write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	if err := os.WriteFile(s.path(key), append(data, '\n'), 0644); err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	m        map[string]json.RawMessage
	writeErr error
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]json.RawMessage)}
}

// FailWrites makes every subsequent Write fail with err, simulating a full
// or rejecting storage backend. Passing nil restores normal behavior.
func (s *MemStore) FailWrites(err error) { s.writeErr = err }

func (s *MemStore) Read(key string, v any) (bool, error) {
	data, ok := s.m[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &ParseError{Source: key, Err: err}
	}
	return true, nil
}

func (s *MemStore) Write(key string, v any) error {
	if s.writeErr != nil {
		return &PersistenceError{Key: key, Err: s.writeErr}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	s.m[key] = data
	return nil
}
