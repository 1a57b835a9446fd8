package pokedex

import "context"

// MaxTeamSize is the maximum number of Pokémon on a team.
const MaxTeamSize = 3

// TeamStorageKey is the KeyValueStore key holding the team's names.
// The value is a JSON array of lowercase Pokémon names.
const TeamStorageKey = "myPokemonTeam"

// TeamMember is a Pokémon saved to the team.
type TeamMember struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// TeamService manages the locally persisted team.
type TeamService interface {
	// LoadTeam returns the saved team in stored order.
	// Members whose lookup fails are omitted.
	LoadTeam(ctx context.Context) ([]*TeamMember, error)

	// AddMember appends a Pokémon to the team.
	// Returns ECONFLICT if the team is full or already has the Pokémon.
	AddMember(ctx context.Context, p *Pokemon) error

	// RemoveMember removes a Pokémon from the team by name.
	// Returns ENOTFOUND if the Pokémon is not on the team.
	RemoveMember(ctx context.Context, name string) error
}

// KeyValueStore is a simple string store that survives process restarts.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
