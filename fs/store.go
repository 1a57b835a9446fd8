// Package fs provides file-based storage for pokedex data.
package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"

	"github.com/fwojciec/pokedex"
	"github.com/spf13/afero"
)

// Ensure KeyValueStore implements pokedex.KeyValueStore at compile time.
var _ pokedex.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore implements pokedex.KeyValueStore with one file per key.
// Writes go to a temporary file that is renamed into place, so readers
// never observe a partially written value.
type KeyValueStore struct {
	fs      afero.Fs
	baseDir string
}

// NewKeyValueStore creates a store rooted at baseDir on the OS filesystem.
func NewKeyValueStore(baseDir string) *KeyValueStore {
	return NewKeyValueStoreFs(afero.NewOsFs(), baseDir)
}

// NewKeyValueStoreFs creates a store rooted at baseDir on the given filesystem.
func NewKeyValueStoreFs(fs afero.Fs, baseDir string) *KeyValueStore {
	return &KeyValueStore{fs: fs, baseDir: baseDir}
}

// KeyToPath converts a key to a file name. Path separators are escaped so
// every key maps to a single file directly under the base directory.
// Example: myPokemonTeam → myPokemonTeam.kv
func KeyToPath(key string) (string, error) {
	if key == "" || key == "." || key == ".." {
		return "", pokedex.Errorf(pokedex.EINVALID, "invalid key %q", key)
	}
	return url.PathEscape(key) + ".kv", nil
}

func (s *KeyValueStore) path(key string) (string, error) {
	name, err := KeyToPath(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, name), nil
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return "", pokedex.Errorf(pokedex.ENOTFOUND, "key %q not found", key)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set stores value under key, replacing any previous value.
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(value), 0644); err != nil {
		return err
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// Delete removes key.
func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
