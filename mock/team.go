package mock

import (
	"context"

	"github.com/fwojciec/pokedex"
)

var _ pokedex.TeamService = (*TeamService)(nil)

// TeamService is a mock implementation of pokedex.TeamService.
type TeamService struct {
	LoadTeamFn     func(ctx context.Context) ([]*pokedex.TeamMember, error)
	AddMemberFn    func(ctx context.Context, p *pokedex.Pokemon) error
	RemoveMemberFn func(ctx context.Context, name string) error
}

func (s *TeamService) LoadTeam(ctx context.Context) ([]*pokedex.TeamMember, error) {
	return s.LoadTeamFn(ctx)
}

func (s *TeamService) AddMember(ctx context.Context, p *pokedex.Pokemon) error {
	return s.AddMemberFn(ctx, p)
}

func (s *TeamService) RemoveMember(ctx context.Context, name string) error {
	return s.RemoveMemberFn(ctx, name)
}
