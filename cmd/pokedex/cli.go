package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/tablewriter"
)

// CachePurger empties the lookup cache.
type CachePurger interface {
	Purge(ctx context.Context) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pokemon  pokedex.PokemonService
	Team     pokedex.TeamService
	History  pokedex.HistoryService
	Cache    CachePurger
	Renderer *tablewriter.Renderer

	// Format is the default output format, "table" or "text".
	Format string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log lookups and storage access to stderr"`
	NoColor bool `name:"no-color" help:"Disable colored output"`

	Search  SearchCmd  `cmd:"" help:"Look up a Pokémon with a free-form query"`
	Team    TeamCmd    `cmd:"" help:"Manage your team of up to 3 Pokémon"`
	History HistoryCmd `cmd:"" help:"Show recent searches"`
	Cache   CacheCmd   `cmd:"" help:"Manage the local lookup cache"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  []string `arg:"" optional:"" help:"Query, e.g. \"tell me the type of charmander\""`
	Format string   `short:"o" help:"Output format: table or text"`
	Add    bool     `short:"a" help:"Add the Pokémon to your team"`
}

// TeamCmd is the "team" subcommand.
type TeamCmd struct {
	List   TeamListCmd   `cmd:"" default:"1" help:"Show your team"`
	Add    TeamAddCmd    `cmd:"" help:"Add a Pokémon to your team"`
	Remove TeamRemoveCmd `cmd:"" help:"Remove a Pokémon from your team"`
}

// TeamListCmd is the "team list" subcommand.
type TeamListCmd struct {
	Format string `short:"o" help:"Output format: table or text"`
}

// TeamAddCmd is the "team add" subcommand.
type TeamAddCmd struct {
	Name string `arg:"" help:"Pokémon name"`
}

// TeamRemoveCmd is the "team remove" subcommand.
type TeamRemoveCmd struct {
	Name string `arg:"" help:"Pokémon name"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int    `short:"n" default:"20" help:"Number of searches to show"`
	Name  string `help:"Only show searches for this Pokémon"`
	Clear bool   `help:"Delete all recorded searches"`
}

// CacheCmd is the "cache" subcommand.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove all cached lookups"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
