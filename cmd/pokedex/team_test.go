package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pokedex"
	main "github.com/fwojciec/pokedex/cmd/pokedex"
	"github.com/fwojciec/pokedex/mock"
	"github.com/fwojciec/pokedex/tablewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamDeps(pokemon pokedex.PokemonService, team pokedex.TeamService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Pokemon:  pokemon,
		Team:     team,
		Renderer: tablewriter.NewRenderer(true),
	}, stdout, stderr
}

func TestTeamListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders members", func(t *testing.T) {
		t.Parallel()

		team := &mock.TeamService{
			LoadTeamFn: func(_ context.Context) ([]*pokedex.TeamMember, error) {
				return []*pokedex.TeamMember{
					{Name: "bulbasaur", ImageURL: "https://img.example/1.png"},
					{Name: "squirtle", ImageURL: "https://img.example/7.png"},
				}, nil
			},
		}
		deps, stdout, _ := newTeamDeps(nil, team)

		err := (&main.TeamListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "bulbasaur")
		assert.Contains(t, stdout.String(), "squirtle")
		assert.Contains(t, stdout.String(), "2/3 slots used")
	})

	t.Run("renders members as text", func(t *testing.T) {
		t.Parallel()

		team := &mock.TeamService{
			LoadTeamFn: func(_ context.Context) ([]*pokedex.TeamMember, error) {
				return []*pokedex.TeamMember{{Name: "eevee"}}, nil
			},
		}
		deps, stdout, _ := newTeamDeps(nil, team)

		err := (&main.TeamListCmd{Format: "text"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "1. eevee\n", stdout.String())
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		team := &mock.TeamService{
			LoadTeamFn: func(_ context.Context) ([]*pokedex.TeamMember, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newTeamDeps(nil, team)

		err := (&main.TeamListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Your team is empty")
	})
}

func TestTeamAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("looks up and adds pokemon", func(t *testing.T) {
		t.Parallel()

		var lookedUp string
		pokemon := &mock.PokemonService{
			FindPokemonByNameFn: func(_ context.Context, name string) (*pokedex.Pokemon, error) {
				lookedUp = name
				return &pokedex.Pokemon{ID: 25, Name: name}, nil
			},
		}
		var added string
		team := &mock.TeamService{
			AddMemberFn: func(_ context.Context, p *pokedex.Pokemon) error {
				added = p.Name
				return nil
			},
		}
		deps, stdout, _ := newTeamDeps(pokemon, team)

		err := (&main.TeamAddCmd{Name: " Pikachu "}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "pikachu", lookedUp)
		assert.Equal(t, "pikachu", added)
		assert.Contains(t, stdout.String(), "Added pikachu to your team.")
	})

	t.Run("keeps names that contain filler words intact", func(t *testing.T) {
		t.Parallel()

		var lookedUp string
		pokemon := &mock.PokemonService{
			FindPokemonByNameFn: func(_ context.Context, name string) (*pokedex.Pokemon, error) {
				lookedUp = name
				return &pokedex.Pokemon{ID: 109, Name: name}, nil
			},
		}
		team := &mock.TeamService{
			AddMemberFn: func(_ context.Context, _ *pokedex.Pokemon) error { return nil },
		}
		deps, _, _ := newTeamDeps(pokemon, team)

		require.NoError(t, (&main.TeamAddCmd{Name: "koffing"}).Run(deps))
		assert.Equal(t, "koffing", lookedUp)
	})

	t.Run("reports unknown pokemon", func(t *testing.T) {
		t.Parallel()

		pokemon := &mock.PokemonService{
			FindPokemonByNameFn: func(_ context.Context, _ string) (*pokedex.Pokemon, error) {
				return nil, pokedex.Errorf(pokedex.ENOTFOUND, "not found")
			},
		}
		deps, _, stderr := newTeamDeps(pokemon, &mock.TeamService{})

		err := (&main.TeamAddCmd{Name: "missingno"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: Pokémon \"missingno\" not found. Please check the spelling.\n", stderr.String())
	})

	t.Run("reports full team", func(t *testing.T) {
		t.Parallel()

		pokemon := &mock.PokemonService{
			FindPokemonByNameFn: func(_ context.Context, name string) (*pokedex.Pokemon, error) {
				return &pokedex.Pokemon{Name: name}, nil
			},
		}
		team := &mock.TeamService{
			AddMemberFn: func(_ context.Context, _ *pokedex.Pokemon) error {
				return pokedex.Errorf(pokedex.ECONFLICT, "Your team is full (3 Pokémon).")
			},
		}
		deps, stdout, stderr := newTeamDeps(pokemon, team)

		err := (&main.TeamAddCmd{Name: "mew"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pokedex.ECONFLICT, pokedex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "team is full")
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newTeamDeps(&mock.PokemonService{}, &mock.TeamService{})

		err := (&main.TeamAddCmd{Name: "  "}).Run(deps)

		assert.Equal(t, pokedex.EINVALID, pokedex.ErrorCode(err))
	})
}

func TestTeamRemoveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("removes pokemon", func(t *testing.T) {
		t.Parallel()

		var removed string
		team := &mock.TeamService{
			RemoveMemberFn: func(_ context.Context, name string) error {
				removed = name
				return nil
			},
		}
		deps, stdout, _ := newTeamDeps(nil, team)

		err := (&main.TeamRemoveCmd{Name: "Onix"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "onix", removed)
		assert.Contains(t, stdout.String(), "Removed onix from your team.")
	})

	t.Run("reports missing member", func(t *testing.T) {
		t.Parallel()

		team := &mock.TeamService{
			RemoveMemberFn: func(_ context.Context, name string) error {
				return pokedex.Errorf(pokedex.ENOTFOUND, "%s is not on your team.", name)
			},
		}
		deps, _, stderr := newTeamDeps(nil, team)

		err := (&main.TeamRemoveCmd{Name: "onix"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: onix is not on your team.\n", stderr.String())
	})
}
