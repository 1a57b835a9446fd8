// Package slog provides log/slog decorators for pokedex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pokedex"
)

// Ensure LoggingPokemonService implements pokedex.PokemonService.
var _ pokedex.PokemonService = (*LoggingPokemonService)(nil)

// LoggingPokemonService wraps a PokemonService with logging.
type LoggingPokemonService struct {
	next   pokedex.PokemonService
	logger *slog.Logger
}

// NewLoggingPokemonService creates a new LoggingPokemonService.
func NewLoggingPokemonService(next pokedex.PokemonService, logger *slog.Logger) *LoggingPokemonService {
	return &LoggingPokemonService{next: next, logger: logger}
}

// FindPokemonByName delegates to the wrapped service and logs the lookup.
func (s *LoggingPokemonService) FindPokemonByName(ctx context.Context, name string) (p *pokedex.Pokemon, err error) {
	defer func(begin time.Time) {
		s.logger.Info("pokemon lookup",
			"name", name,
			"found", p != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPokemonByName(ctx, name)
}
