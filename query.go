package pokedex

import (
	"regexp"
	"slices"
	"strings"
)

// Info is a category of Pokémon information a query can ask for.
type Info string

// Info constants. InfoAll is only produced when no specific category was
// detected in the query.
const (
	InfoAll       Info = "all"
	InfoType      Info = "type"
	InfoAbilities Info = "abilities"
	InfoStats     Info = "stats"
)

// ParsedQuery is the structured intent extracted from a free-form query.
type ParsedQuery struct {
	// PokemonName is the lowercase candidate name, or empty when no token
	// remained after stripping filler phrases.
	PokemonName string `json:"pokemonName,omitempty"`

	// RequestedInfo is never empty. It is either [InfoAll] or an ordered
	// subset of [InfoType, InfoAbilities, InfoStats].
	RequestedInfo []Info `json:"requestedInfo"`
}

// HasName reports whether a Pokémon name was found in the query.
func (q ParsedQuery) HasName() bool {
	return q.PokemonName != ""
}

// Wants reports whether the query asked for info, either directly or via InfoAll.
func (q ParsedQuery) Wants(info Info) bool {
	return slices.Contains(q.RequestedInfo, InfoAll) || slices.Contains(q.RequestedInfo, info)
}

// infoTriggers is checked in order; detection order in the result follows
// this list, not the position of the trigger in the query.
var infoTriggers = []struct {
	info     Info
	triggers []string
}{
	{InfoType, []string{"type", "types"}},
	{InfoAbilities, []string{"abilities", "powers"}},
	{InfoStats, []string{"stats", "characteristics"}},
}

// fillerRe strips query phrases and category keywords before name
// extraction. Matching is plain substring, so a filler inside a name is
// removed too ("koffing" becomes "kfing"). Trailing whitespace includes
// \v, the Unicode space separators, U+2028, U+2029 and U+FEFF.
var fillerRe = regexp.MustCompile(`(tell me|what are|show me|of|about|type|types|abilities|powers|stats|characteristics)[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`)

// ParseQuery extracts the Pokémon name and requested info categories from
// a free-form query. Matching is case-insensitive. It never fails: a query
// without a name yields a ParsedQuery whose HasName returns false.
func ParseQuery(query string) ParsedQuery {
	// strings.ToLower maps U+0130 (İ) to a plain "i", without the combining
	// dot some other runtimes keep.
	lower := strings.ToLower(query)

	var requested []Info
	for _, t := range infoTriggers {
		if slices.ContainsFunc(t.triggers, func(s string) bool {
			return strings.Contains(lower, s)
		}) {
			requested = append(requested, t.info)
		}
	}
	if len(requested) == 0 {
		requested = []Info{InfoAll}
	}

	cleaned := strings.TrimSpace(fillerRe.ReplaceAllString(lower, ""))

	var name string
	if tokens := strings.Fields(cleaned); len(tokens) > 0 {
		name = tokens[len(tokens)-1]
	}

	return ParsedQuery{
		PokemonName:   name,
		RequestedInfo: requested,
	}
}
