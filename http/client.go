// Package http provides a PokéAPI-backed implementation of
// pokedex.PokemonService.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pokedex"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public PokéAPI v2 endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultRateLimit is the default number of requests per second.
const DefaultRateLimit = 5.0

// maxBodySize caps the response body; full PokéAPI payloads are a few hundred KB.
const maxBodySize = 8 << 20

// Ensure Client implements pokedex.PokemonService at compile time.
var _ pokedex.PokemonService = (*Client)(nil)

// Client looks up Pokémon over the PokéAPI REST interface.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	delays  []time.Duration
	logf    LogFunc
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBaseURL overrides the API root, e.g. for a mirror or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithRateLimit limits outgoing requests to rps per second.
// A value <= 0 disables rate limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff delays between attempts.
// An empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) {
		c.delays = delays
	}
}

// WithRetryLogger sets a function called for each retry attempt.
func WithRetryLogger(fn LogFunc) Option {
	return func(c *Client) {
		c.logf = fn
	}
}

// NewClient creates a new PokéAPI client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// FindPokemonByName fetches a Pokémon by name. Server errors and transport
// failures are retried; a 404 is returned immediately as ENOTFOUND.
func (c *Client) FindPokemonByName(ctx context.Context, name string) (*pokedex.Pokemon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, pokedex.Errorf(pokedex.EINVALID, "pokemon name required")
	}

	endpoint := c.baseURL + "/pokemon/" + url.PathEscape(name)

	var p *pokedex.Pokemon
	err := WithRetry(ctx, c.delays, c.logf, func(ctx context.Context) error {
		var err error
		p, err = c.fetch(ctx, endpoint)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*pokedex.Pokemon, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, Permanent(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, Permanent(ctxErr)
		}
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, Permanent(pokedex.Errorf(pokedex.ENOTFOUND, "pokemon not found"))
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, endpoint)
	case resp.StatusCode != http.StatusOK:
		return nil, Permanent(fmt.Errorf("HTTP %d for %s", resp.StatusCode, endpoint))
	}

	var body apiPokemon
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return nil, Permanent(fmt.Errorf("failed to decode response from %s: %w", endpoint, err))
	}

	return body.toPokemon(), nil
}

// apiPokemon mirrors the parts of the PokéAPI /pokemon response we use.
type apiPokemon struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int      `json:"slot"`
		Type apiNamed `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  apiNamed `json:"ability"`
		IsHidden bool     `json:"is_hidden"`
		Slot     int      `json:"slot"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     apiNamed `json:"stat"`
	} `json:"stats"`
}

type apiNamed struct {
	Name string `json:"name"`
}

func (a *apiPokemon) toPokemon() *pokedex.Pokemon {
	p := &pokedex.Pokemon{
		ID:   a.ID,
		Name: a.Name,
	}
	if a.Sprites.FrontDefault != nil {
		p.SpriteURL = *a.Sprites.FrontDefault
	}
	for _, t := range a.Types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, ab := range a.Abilities {
		p.Abilities = append(p.Abilities, ab.Ability.Name)
	}
	for _, s := range a.Stats {
		p.Stats = append(p.Stats, pokedex.Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	return p
}

