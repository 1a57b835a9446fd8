// Package tablewriter renders pokedex results for the terminal using
// github.com/olekukonko/tablewriter and github.com/fatih/color.
package tablewriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/pokedex"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
)

// maxBaseStat is the highest base stat in the games; bars scale to it.
const maxBaseStat = 255

// barWidth is the width of a full stat bar in characters.
const barWidth = 20

// typeColors maps Pokémon types to terminal colors. Unlisted types are uncolored.
var typeColors = map[string]color.Attribute{
	"fire":     color.FgRed,
	"water":    color.FgBlue,
	"grass":    color.FgGreen,
	"electric": color.FgYellow,
	"psychic":  color.FgMagenta,
	"ice":      color.FgCyan,
	"dragon":   color.FgHiBlue,
	"poison":   color.FgHiMagenta,
	"bug":      color.FgHiGreen,
	"fighting": color.FgHiRed,
	"ghost":    color.FgHiBlack,
}

// Renderer writes Pokémon and teams as terminal tables.
type Renderer struct {
	// NoColor disables ANSI colors regardless of terminal detection.
	NoColor bool
}

// NewRenderer creates a new Renderer.
func NewRenderer(noColor bool) *Renderer {
	return &Renderer{NoColor: noColor}
}

func (r *Renderer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.NoColor {
		c.DisableColor()
	}
	return c
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
}

// RenderPokemon writes the sections of p that q asks for.
// The name header and sprite URL are always written.
func (r *Renderer) RenderPokemon(w io.Writer, p *pokedex.Pokemon, q pokedex.ParsedQuery) error {
	if p == nil {
		return nil
	}

	header := r.color(color.Bold, color.FgHiWhite)
	if _, err := header.Fprintf(w, "#%d %s\n", p.ID, p.Name); err != nil {
		return err
	}
	if p.SpriteURL != "" {
		fmt.Fprintf(w, "Sprite: %s\n", p.SpriteURL)
	}

	if q.Wants(pokedex.InfoType) {
		types := make([]string, 0, len(p.Types))
		for _, t := range p.Types {
			attr, ok := typeColors[t]
			if !ok {
				types = append(types, t)
				continue
			}
			types = append(types, r.color(attr).Sprint(t))
		}
		fmt.Fprintf(w, "Types: %s\n", joinOrNone(types))
	}

	if q.Wants(pokedex.InfoAbilities) {
		fmt.Fprintf(w, "Abilities: %s\n", joinOrNone(p.Abilities))
	}

	if q.Wants(pokedex.InfoStats) {
		if len(p.Stats) == 0 {
			fmt.Fprintln(w, "Stats: (none)")
			return nil
		}

		table := newTable(w)
		table.Header([]string{"Stat", "Base", "Bar"})
		for _, s := range p.Stats {
			if err := table.Append([]string{s.Name, strconv.Itoa(s.BaseStat), bar(s.BaseStat)}); err != nil {
				return fmt.Errorf("failed to append stat row: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render stats: %w", err)
		}
	}

	return nil
}

// RenderTeam writes the team as a numbered table.
func (r *Renderer) RenderTeam(w io.Writer, members []*pokedex.TeamMember) error {
	if len(members) == 0 {
		_, err := fmt.Fprintln(w, "Your team is empty. Use 'pokedex team add <name>' to add a Pokémon.")
		return err
	}

	table := newTable(w)
	table.Header([]string{"#", "Name", "Sprite"})
	for i, m := range members {
		if err := table.Append([]string{strconv.Itoa(i + 1), m.Name, m.ImageURL}); err != nil {
			return fmt.Errorf("failed to append team row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render team: %w", err)
	}

	_, err := fmt.Fprintf(w, "%d/%d slots used\n", len(members), pokedex.MaxTeamSize)
	return err
}

// RenderHistory writes history entries as a table, newest first.
func (r *Renderer) RenderHistory(w io.Writer, entries []*pokedex.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No searches yet.")
		return err
	}

	table := newTable(w)
	table.Header([]string{"When", "Query", "Pokémon", "Info", "Found"})
	for _, e := range entries {
		info := lo.Map(e.RequestedInfo, func(in pokedex.Info, _ int) string { return string(in) })
		found := "no"
		if e.Found {
			found = "yes"
		}
		row := []string{
			e.SearchedAt.Local().Format("2006-01-02 15:04"),
			e.Query,
			e.PokemonName,
			strings.Join(info, ","),
			found,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append history row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}

// bar draws a stat as a horizontal bar scaled to maxBaseStat.
func bar(value int) string {
	n := value * barWidth / maxBaseStat
	if value > 0 && n == 0 {
		n = 1
	}
	n = min(n, barWidth)
	return strings.Repeat("#", n)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
