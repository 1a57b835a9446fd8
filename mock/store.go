package mock

import (
	"context"

	"github.com/fwojciec/pokedex"
)

var _ pokedex.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is a mock implementation of pokedex.KeyValueStore.
type KeyValueStore struct {
	GetFn    func(ctx context.Context, key string) (string, error)
	SetFn    func(ctx context.Context, key, value string) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}
