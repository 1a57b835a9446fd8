package pokedex

import (
	"context"
	"fmt"
)

// SearchResult is the outcome of a successful search.
type SearchResult struct {
	Query   ParsedQuery
	Pokemon *Pokemon
}

// Search parses query and looks up the Pokémon it names.
//
// The three failure kinds carry distinct user-facing messages:
// EINVALID when the query has no name (no lookup is made), ENOTFOUND when
// the data source does not know the name, and EINTERNAL for anything else.
// The EINTERNAL error wraps the underlying cause.
func Search(ctx context.Context, pokemon PokemonService, query string) (*SearchResult, error) {
	parsed := ParseQuery(query)
	if !parsed.HasName() {
		return nil, Errorf(EINVALID, "Please provide a Pokémon name in your query.")
	}

	p, err := pokemon.FindPokemonByName(ctx, parsed.PokemonName)
	if err != nil {
		if ErrorCode(err) == ENOTFOUND {
			return nil, Errorf(ENOTFOUND, "Pokémon %q not found. Please check the spelling.", parsed.PokemonName)
		}
		return nil, &searchError{
			app:   Errorf(EINTERNAL, "An unexpected error occurred while fetching Pokémon data."),
			cause: err,
		}
	}

	return &SearchResult{Query: parsed, Pokemon: p}, nil
}

// searchError pairs a user-facing error with the lookup failure behind it.
type searchError struct {
	app   *Error
	cause error
}

func (e *searchError) Error() string {
	return fmt.Sprintf("%s: %v", e.app.Error(), e.cause)
}

func (e *searchError) Unwrap() []error {
	return []error{e.app, e.cause}
}
