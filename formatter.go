package pokedex

import (
	"fmt"
	"strings"
)

// FormatPokemon formats the parts of a Pokémon the query asked for as
// plain text. The name header and sprite URL are always included.
func FormatPokemon(p *Pokemon, q ParsedQuery) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n", p.ID, p.Name)
	if p.SpriteURL != "" {
		fmt.Fprintf(&b, "Sprite: %s\n", p.SpriteURL)
	}
	if q.Wants(InfoType) {
		fmt.Fprintf(&b, "Types: %s\n", joinOrNone(p.Types))
	}
	if q.Wants(InfoAbilities) {
		fmt.Fprintf(&b, "Abilities: %s\n", joinOrNone(p.Abilities))
	}
	if q.Wants(InfoStats) {
		b.WriteString("Stats:\n")
		if len(p.Stats) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, s := range p.Stats {
			fmt.Fprintf(&b, "  %s: %d\n", s.Name, s.BaseStat)
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// FormatTeam formats team members one per line with their position.
func FormatTeam(members []*TeamMember) string {
	if len(members) == 0 {
		return ""
	}

	parts := make([]string, 0, len(members))
	for i, m := range members {
		line := fmt.Sprintf("%d. %s", i+1, m.Name)
		if m.ImageURL != "" {
			line += "  " + m.ImageURL
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, "\n")
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
