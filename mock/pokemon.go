package mock

import (
	"context"

	"github.com/fwojciec/pokedex"
)

var _ pokedex.PokemonService = (*PokemonService)(nil)

// PokemonService is a mock implementation of pokedex.PokemonService.
type PokemonService struct {
	FindPokemonByNameFn func(ctx context.Context, name string) (*pokedex.Pokemon, error)
}

func (s *PokemonService) FindPokemonByName(ctx context.Context, name string) (*pokedex.Pokemon, error) {
	return s.FindPokemonByNameFn(ctx, name)
}
