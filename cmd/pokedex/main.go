package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/config"
	"github.com/fwojciec/pokedex/fs"
	pokehttp "github.com/fwojciec/pokedex/http"
	pokeslog "github.com/fwojciec/pokedex/slog"
	"github.com/fwojciec/pokedex/sqlite"
	"github.com/fwojciec/pokedex/tablewriter"
	"github.com/fwojciec/pokedex/team"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides file and environment configuration when set
	// before calling Run().
	Config *config.Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PokemonService pokedex.PokemonService
	TeamService    pokedex.TeamService
	HistoryService pokedex.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pokedex"),
		kong.Description("Look up Pokémon from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pokedex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		if cfg, err = config.Load(); err != nil {
			fmt.Fprintln(stderr, "Hint: Check POKEDEX_* environment variables and ~/.pokedex/config.yaml")
			return err
		}
	}

	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if err := os.MkdirAll(filepath.Dir(cfg.Store.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	m.DB = sqlite.NewDB(cfg.Store.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POKEDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.Store.DBPath, err)
	}
	defer m.Close()

	client := pokehttp.NewClient(
		pokehttp.WithBaseURL(cfg.API.BaseURL),
		pokehttp.WithTimeout(cfg.API.Timeout),
		pokehttp.WithRateLimit(cfg.API.RateLimit),
		pokehttp.WithRetryLogger(func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	var pokemon pokedex.PokemonService = pokeslog.NewLoggingPokemonService(client, logger)
	cache := sqlite.NewPokemonCache(m.DB, pokemon, cfg.Cache.TTL)
	deps.Cache = cache
	if cfg.Cache.TTL > 0 {
		pokemon = cache
	}

	var store pokedex.KeyValueStore
	switch cfg.Store.Backend {
	case config.StoreFile:
		store = fs.NewKeyValueStore(cfg.Store.DataDir)
	default:
		store = sqlite.NewKeyValueStore(m.DB)
	}
	store = pokeslog.NewLoggingKeyValueStore(store, logger)

	teamSvc := team.NewService(store, pokemon)
	teamSvc.Logf = func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}

	m.PokemonService = pokemon
	m.TeamService = teamSvc
	m.HistoryService = sqlite.NewHistoryService(m.DB)

	deps.Pokemon = m.PokemonService
	deps.Team = m.TeamService
	deps.History = m.HistoryService
	deps.Renderer = tablewriter.NewRenderer(cfg.Display.NoColor || cli.NoColor)
	deps.Format = cfg.Display.Format

	return kongCtx.Run(deps)
}
