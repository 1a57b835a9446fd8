package pokedex

import "context"

// Pokemon represents the subset of PokéAPI data the tool displays.
type Pokemon struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	SpriteURL string   `json:"spriteUrl"`
	Types     []string `json:"types"`
	Abilities []string `json:"abilities"`
	Stats     []Stat   `json:"stats"`
}

// Stat is a single base stat such as "hp" or "speed".
type Stat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"baseStat"`
}

// PokemonService looks up Pokémon by name.
type PokemonService interface {
	// FindPokemonByName retrieves a Pokémon by its lowercase name.
	// Returns ENOTFOUND if the data source has no such Pokémon.
	FindPokemonByName(ctx context.Context, name string) (*Pokemon, error)
}
