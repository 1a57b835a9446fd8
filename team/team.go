// Package team implements the locally persisted Pokémon team on top of a
// pokedex.KeyValueStore.
package team

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/fwojciec/pokedex"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel lookups while loading the team.
const DefaultConcurrency = pokedex.MaxTeamSize

// MaxSuggestionDistance is the largest edit distance at which RemoveMember
// suggests a team member for a misspelled name.
const MaxSuggestionDistance = 2

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// Ensure Service implements pokedex.TeamService at compile time.
var _ pokedex.TeamService = (*Service)(nil)

// Service stores team member names under pokedex.TeamStorageKey and
// resolves sprites through a PokemonService when the team is loaded.
type Service struct {
	Store   pokedex.KeyValueStore
	Pokemon pokedex.PokemonService

	// Concurrency limits parallel lookups in LoadTeam.
	Concurrency int

	// Logf, if set, is called for members skipped during LoadTeam.
	Logf LogFunc
}

// NewService creates a new Service.
func NewService(store pokedex.KeyValueStore, pokemon pokedex.PokemonService) *Service {
	return &Service{
		Store:       store,
		Pokemon:     pokemon,
		Concurrency: DefaultConcurrency,
	}
}

// Names returns the stored team member names in order.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	raw, err := s.Store.Get(ctx, pokedex.TeamStorageKey)
	if pokedex.ErrorCode(err) == pokedex.ENOTFOUND {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("failed to decode team: %w", err)
	}
	return names, nil
}

func (s *Service) saveNames(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode team: %w", err)
	}
	return s.Store.Set(ctx, pokedex.TeamStorageKey, string(data))
}

// LoadTeam reads the stored names and looks each one up concurrently to
// resolve its sprite. Members whose lookup fails are skipped.
func (s *Service) LoadTeam(ctx context.Context) ([]*pokedex.TeamMember, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	members := make([]*pokedex.TeamMember, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			p, err := s.Pokemon.FindPokemonByName(gctx, name)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				if s.Logf != nil {
					s.Logf("skipping team member %s: %v", name, err)
				}
				return nil
			}
			members[i] = &pokedex.TeamMember{Name: p.Name, ImageURL: p.SpriteURL}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Preserve stored order, dropping skipped members.
	return lo.Compact(members), nil
}

// AddMember appends p to the team and persists the names.
func (s *Service) AddMember(ctx context.Context, p *pokedex.Pokemon) error {
	if p == nil || normalizeName(p.Name) == "" {
		return pokedex.Errorf(pokedex.EINVALID, "pokemon name required")
	}
	name := normalizeName(p.Name)

	names, err := s.Names(ctx)
	if err != nil {
		return err
	}

	if isFull(names) {
		return pokedex.Errorf(pokedex.ECONFLICT, "team is full (max %d)", pokedex.MaxTeamSize)
	}
	if lo.Contains(names, name) {
		return pokedex.Errorf(pokedex.ECONFLICT, "%s is already on the team", name)
	}

	return s.saveNames(ctx, append(names, name))
}

// RemoveMember removes name from the team and persists the names.
// When name is absent but close to a member's name, the error message
// suggests that member.
func (s *Service) RemoveMember(ctx context.Context, name string) error {
	name = normalizeName(name)
	names, err := s.Names(ctx)
	if err != nil {
		return err
	}

	if !lo.Contains(names, name) {
		if match, ok := Suggest(name, names); ok {
			return pokedex.Errorf(pokedex.ENOTFOUND, "%s is not on the team. Did you mean %s?", name, match)
		}
		return pokedex.Errorf(pokedex.ENOTFOUND, "%s is not on the team", name)
	}

	return s.saveNames(ctx, lo.Without(names, name))
}

// Suggest returns the candidate closest to name by edit distance, if it is
// within MaxSuggestionDistance. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" || len(candidates) == 0 {
		return "", false
	}
	best := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.ComputeDistance(name, a) < levenshtein.ComputeDistance(name, b)
	})
	if levenshtein.ComputeDistance(name, best) > MaxSuggestionDistance {
		return "", false
	}
	return best, true
}

// IsTeamFull reports whether the team has reached pokedex.MaxTeamSize.
func (s *Service) IsTeamFull(ctx context.Context) (bool, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return false, err
	}
	return isFull(names), nil
}

// IsPokemonInTeam reports whether name is on the team.
func (s *Service) IsPokemonInTeam(ctx context.Context, name string) (bool, error) {
	name = normalizeName(name)
	names, err := s.Names(ctx)
	if err != nil {
		return false, err
	}
	return lo.Contains(names, name), nil
}

// normalizeName matches the lowercase form names are stored in.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isFull(names []string) bool {
	return len(names) >= pokedex.MaxTeamSize
}
