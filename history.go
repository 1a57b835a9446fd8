package pokedex

import (
	"context"
	"time"
)

// HistoryEntry records a single search.
type HistoryEntry struct {
	ID            string    `json:"id"`
	Query         string    `json:"query"`
	PokemonName   string    `json:"pokemonName"`
	RequestedInfo []Info    `json:"requestedInfo"`
	Found         bool      `json:"found"`
	SearchedAt    time.Time `json:"searchedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *HistoryEntry) Validate() error {
	if e.Query == "" {
		return Errorf(EINVALID, "history query required")
	}
	if len(e.RequestedInfo) == 0 {
		return Errorf(EINVALID, "history requested info required")
	}
	return nil
}

// HistoryService represents a service for managing search history.
type HistoryService interface {
	// CreateEntry records a new search.
	CreateEntry(ctx context.Context, entry *HistoryEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter HistoryFilter) ([]*HistoryEntry, error)

	// DeleteEntries removes all recorded searches.
	DeleteEntries(ctx context.Context) error
}

// HistoryFilter represents a filter for FindEntries.
type HistoryFilter struct {
	PokemonName *string `json:"pokemonName"`
	Found       *bool   `json:"found"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
