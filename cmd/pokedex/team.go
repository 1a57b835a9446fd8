package main

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/config"
)

// Run executes the team list command.
func (c *TeamListCmd) Run(deps *Dependencies) error {
	members, err := deps.Team.LoadTeam(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	if cmp.Or(c.Format, deps.Format) != config.FormatText {
		return deps.Renderer.RenderTeam(deps.Stdout, members)
	}
	if len(members) == 0 {
		fmt.Fprintln(deps.Stdout, "Your team is empty.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, pokedex.FormatTeam(members))
	return nil
}

// Run executes the team add command.
func (c *TeamAddCmd) Run(deps *Dependencies) error {
	name := strings.ToLower(strings.TrimSpace(c.Name))
	if name == "" {
		err := pokedex.Errorf(pokedex.EINVALID, "Please provide a Pokémon name.")
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	p, err := deps.Pokemon.FindPokemonByName(deps.Ctx, name)
	if pokedex.ErrorCode(err) == pokedex.ENOTFOUND {
		err = pokedex.Errorf(pokedex.ENOTFOUND, "Pokémon %q not found. Please check the spelling.", name)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	if err := deps.Team.AddMember(deps.Ctx, p); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s to your team.\n", p.Name)
	return nil
}

// Run executes the team remove command.
func (c *TeamRemoveCmd) Run(deps *Dependencies) error {
	name := strings.ToLower(strings.TrimSpace(c.Name))
	if err := deps.Team.RemoveMember(deps.Ctx, name); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %s from your team.\n", name)
	return nil
}
