package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pokedex"
)

// DefaultCacheTTL is how long a cached lookup stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// Compile-time interface verification.
var _ pokedex.PokemonService = (*PokemonCache)(nil)

// PokemonCache wraps a PokemonService and stores successful lookups in
// SQLite. Not-found results are never cached.
type PokemonCache struct {
	db   *DB
	next pokedex.PokemonService
	ttl  time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewPokemonCache creates a new PokemonCache. A ttl <= 0 uses DefaultCacheTTL.
func NewPokemonCache(db *DB, next pokedex.PokemonService, ttl time.Duration) *PokemonCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PokemonCache{db: db, next: next, ttl: ttl, Now: time.Now}
}

// FindPokemonByName returns a fresh cached entry or delegates to the
// wrapped service and caches its result.
func (c *PokemonCache) FindPokemonByName(ctx context.Context, name string) (*pokedex.Pokemon, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	p, err := c.lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p, err = c.next.FindPokemonByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, name, p); err != nil {
		return nil, err
	}
	return p, nil
}

// lookup returns nil without error on a miss or a stale entry.
func (c *PokemonCache) lookup(ctx context.Context, name string) (*pokedex.Pokemon, error) {
	var payload, fetchedAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT payload, fetched_at FROM pokemon_cache WHERE name = ?
	`, name).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t, err := parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	if c.Now().Sub(t) > c.ttl {
		return nil, nil
	}

	var p pokedex.Pokemon
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to decode cached pokemon %q: %w", name, err)
	}
	return &p, nil
}

func (c *PokemonCache) store(ctx context.Context, name string, p *pokedex.Pokemon) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode pokemon %q: %w", name, err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO pokemon_cache (name, pokemon_id, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			pokemon_id = excluded.pokemon_id,
			payload = excluded.payload,
			fetched_at = excluded.fetched_at
	`, name, p.ID, string(payload), c.Now().UTC().Format(timeFormat))

	return err
}

// Purge removes every cached entry.
func (c *PokemonCache) Purge(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM pokemon_cache")
	return err
}
