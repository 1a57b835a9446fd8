package team_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/mock"
	"github.com/fwojciec/pokedex/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore returns a mock KeyValueStore backed by a map.
func memStore(initial map[string]string) *mock.KeyValueStore {
	var mu sync.Mutex
	data := map[string]string{}
	for k, v := range initial {
		data[k] = v
	}
	return &mock.KeyValueStore{
		GetFn: func(_ context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return "", pokedex.Errorf(pokedex.ENOTFOUND, "key not found")
			}
			return v, nil
		},
		SetFn: func(_ context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
		DeleteFn: func(_ context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, key)
			return nil
		},
	}
}

func spriteService() *mock.PokemonService {
	return &mock.PokemonService{
		FindPokemonByNameFn: func(_ context.Context, name string) (*pokedex.Pokemon, error) {
			return &pokedex.Pokemon{Name: name, SpriteURL: "https://img.example/" + name + ".png"}, nil
		},
	}
}

func TestService_LoadTeam(t *testing.T) {
	t.Parallel()

	t.Run("returns empty team when nothing stored", func(t *testing.T) {
		t.Parallel()

		svc := team.NewService(memStore(nil), spriteService())

		members, err := svc.LoadTeam(context.Background())

		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("resolves sprites in stored order", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu","mew","eevee"]`})
		svc := team.NewService(store, spriteService())

		members, err := svc.LoadTeam(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []*pokedex.TeamMember{
			{Name: "pikachu", ImageURL: "https://img.example/pikachu.png"},
			{Name: "mew", ImageURL: "https://img.example/mew.png"},
			{Name: "eevee", ImageURL: "https://img.example/eevee.png"},
		}, members)
	})

	t.Run("skips members whose lookup fails", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu","missingno","eevee"]`})
		pokemon := &mock.PokemonService{
			FindPokemonByNameFn: func(_ context.Context, name string) (*pokedex.Pokemon, error) {
				if name == "missingno" {
					return nil, pokedex.Errorf(pokedex.ENOTFOUND, "pokemon not found")
				}
				return &pokedex.Pokemon{Name: name}, nil
			},
		}
		var mu sync.Mutex
		var logged []string
		svc := team.NewService(store, pokemon)
		svc.Logf = func(format string, args ...any) {
			mu.Lock()
			defer mu.Unlock()
			logged = append(logged, format)
		}

		members, err := svc.LoadTeam(context.Background())

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "pikachu", members[0].Name)
		assert.Equal(t, "eevee", members[1].Name)
		assert.Len(t, logged, 1)
	})

	t.Run("returns error for corrupt stored value", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `not json`})
		svc := team.NewService(store, spriteService())

		_, err := svc.LoadTeam(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode team")
	})

	t.Run("returns store errors", func(t *testing.T) {
		t.Parallel()

		store := &mock.KeyValueStore{
			GetFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("disk on fire")
			},
		}
		svc := team.NewService(store, spriteService())

		_, err := svc.LoadTeam(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk on fire")
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu"]`})
		ctx, cancel := context.WithCancel(context.Background())
		pokemon := &mock.PokemonService{
			FindPokemonByNameFn: func(ctx context.Context, _ string) (*pokedex.Pokemon, error) {
				cancel()
				return nil, ctx.Err()
			},
		}
		svc := team.NewService(store, pokemon)

		_, err := svc.LoadTeam(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_AddMember(t *testing.T) {
	t.Parallel()

	t.Run("persists names as json array", func(t *testing.T) {
		t.Parallel()

		store := memStore(nil)
		svc := team.NewService(store, spriteService())
		ctx := context.Background()

		require.NoError(t, svc.AddMember(ctx, &pokedex.Pokemon{Name: "pikachu"}))
		require.NoError(t, svc.AddMember(ctx, &pokedex.Pokemon{Name: "mew"}))

		raw, err := store.Get(ctx, pokedex.TeamStorageKey)
		require.NoError(t, err)
		assert.JSONEq(t, `["pikachu","mew"]`, raw)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu"]`})
		svc := team.NewService(store, spriteService())

		err := svc.AddMember(context.Background(), &pokedex.Pokemon{Name: "pikachu"})

		require.Error(t, err)
		assert.Equal(t, pokedex.ECONFLICT, pokedex.ErrorCode(err))
	})

	t.Run("rejects when team is full", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu","mew","eevee"]`})
		svc := team.NewService(store, spriteService())
		ctx := context.Background()

		full, err := svc.IsTeamFull(ctx)
		require.NoError(t, err)
		assert.True(t, full)

		err = svc.AddMember(ctx, &pokedex.Pokemon{Name: "snorlax"})

		require.Error(t, err)
		assert.Equal(t, pokedex.ECONFLICT, pokedex.ErrorCode(err))
		assert.Contains(t, pokedex.ErrorMessage(err), "full")
	})

	t.Run("stores names in lowercase", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu"]`})
		svc := team.NewService(store, spriteService())
		ctx := context.Background()

		err := svc.AddMember(ctx, &pokedex.Pokemon{Name: " Pikachu "})
		assert.Equal(t, pokedex.ECONFLICT, pokedex.ErrorCode(err))

		require.NoError(t, svc.AddMember(ctx, &pokedex.Pokemon{Name: "Mew"}))

		names, err := svc.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"pikachu", "mew"}, names)
	})

	t.Run("rejects missing pokemon", func(t *testing.T) {
		t.Parallel()

		svc := team.NewService(memStore(nil), spriteService())

		err := svc.AddMember(context.Background(), &pokedex.Pokemon{})

		assert.Equal(t, pokedex.EINVALID, pokedex.ErrorCode(err))
	})
}

func TestService_RemoveMember(t *testing.T) {
	t.Parallel()

	t.Run("removes member and keeps order", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu","mew","eevee"]`})
		svc := team.NewService(store, spriteService())
		ctx := context.Background()

		require.NoError(t, svc.RemoveMember(ctx, "mew"))

		names, err := svc.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"pikachu", "eevee"}, names)

		inTeam, err := svc.IsPokemonInTeam(ctx, "mew")
		require.NoError(t, err)
		assert.False(t, inTeam)
	})

	t.Run("persists empty array when last member removed", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu"]`})
		svc := team.NewService(store, spriteService())
		ctx := context.Background()

		require.NoError(t, svc.RemoveMember(ctx, "pikachu"))

		raw, err := store.Get(ctx, pokedex.TeamStorageKey)
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	})

	t.Run("returns ENOTFOUND for absent member", func(t *testing.T) {
		t.Parallel()

		svc := team.NewService(memStore(nil), spriteService())

		err := svc.RemoveMember(context.Background(), "mew")

		assert.Equal(t, pokedex.ENOTFOUND, pokedex.ErrorCode(err))
	})

	t.Run("matches names regardless of case", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["pikachu","mew"]`})
		svc := team.NewService(store, spriteService())
		ctx := context.Background()

		inTeam, err := svc.IsPokemonInTeam(ctx, " Pikachu")
		require.NoError(t, err)
		assert.True(t, inTeam)

		require.NoError(t, svc.RemoveMember(ctx, "PIKACHU"))

		names, err := svc.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"mew"}, names)
	})

	t.Run("suggests close member name", func(t *testing.T) {
		t.Parallel()

		store := memStore(map[string]string{pokedex.TeamStorageKey: `["charmander","pikachu"]`})
		svc := team.NewService(store, spriteService())

		err := svc.RemoveMember(context.Background(), "pikachoo")

		assert.Equal(t, pokedex.ENOTFOUND, pokedex.ErrorCode(err))
		assert.Equal(t, "pikachoo is not on the team. Did you mean pikachu?", pokedex.ErrorMessage(err))
	})
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{name: "exact match", input: "mew", candidates: []string{"mew"}, want: "mew", wantOK: true},
		{name: "one typo", input: "bulbasuar", candidates: []string{"squirtle", "bulbasaur"}, want: "bulbasaur", wantOK: true},
		{name: "too far", input: "snorlax", candidates: []string{"pikachu"}, wantOK: false},
		{name: "no candidates", input: "mew", candidates: nil, wantOK: false},
		{name: "empty input", input: "", candidates: []string{"mew"}, wantOK: false},
		{name: "tie keeps first", input: "mex", candidates: []string{"mew", "mey"}, want: "mew", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := team.Suggest(tt.input, tt.candidates)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
