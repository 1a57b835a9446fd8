package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pokedex"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.History.DeleteEntries(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Search history cleared.")
		return nil
	}

	filter := pokedex.HistoryFilter{Limit: c.Limit}
	if name := strings.ToLower(strings.TrimSpace(c.Name)); name != "" {
		filter.PokemonName = &name
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}
	return deps.Renderer.RenderHistory(deps.Stdout, entries)
}
