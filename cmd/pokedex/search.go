package main

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/config"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	format := cmp.Or(c.Format, deps.Format, config.FormatTable)
	if format != config.FormatTable && format != config.FormatText {
		err := pokedex.Errorf(pokedex.EINVALID, "unknown format %q, expected table or text", format)
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	query := strings.Join(c.Query, " ")
	result, err := pokedex.Search(deps.Ctx, deps.Pokemon, query)
	deps.recordSearch(query, result, err)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	if format == config.FormatText {
		fmt.Fprintln(deps.Stdout, pokedex.FormatPokemon(result.Pokemon, result.Query))
	} else if err := deps.Renderer.RenderPokemon(deps.Stdout, result.Pokemon, result.Query); err != nil {
		return fmt.Errorf("failed to render pokemon: %w", err)
	}

	if !c.Add {
		return nil
	}
	if err := deps.Team.AddMember(deps.Ctx, result.Pokemon); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Added %s to your team.\n", result.Pokemon.Name)
	return nil
}

// recordSearch stores a search whose lookup completed, found or not.
// Failures are logged and never fail the command.
func (d *Dependencies) recordSearch(query string, result *pokedex.SearchResult, searchErr error) {
	if d.History == nil {
		return
	}
	if searchErr != nil && pokedex.ErrorCode(searchErr) != pokedex.ENOTFOUND {
		return
	}

	parsed := pokedex.ParseQuery(query)
	entry := &pokedex.HistoryEntry{
		Query:         strings.TrimSpace(query),
		PokemonName:   parsed.PokemonName,
		RequestedInfo: parsed.RequestedInfo,
		Found:         searchErr == nil && result != nil,
	}
	if err := d.History.CreateEntry(d.Ctx, entry); err != nil && d.Logger != nil {
		d.Logger.Warn("failed to record search", "query", entry.Query, "error", err)
	}
}
