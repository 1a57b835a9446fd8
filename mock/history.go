package mock

import (
	"context"

	"github.com/fwojciec/pokedex"
)

var _ pokedex.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of pokedex.HistoryService.
type HistoryService struct {
	CreateEntryFn   func(ctx context.Context, entry *pokedex.HistoryEntry) error
	FindEntriesFn   func(ctx context.Context, filter pokedex.HistoryFilter) ([]*pokedex.HistoryEntry, error)
	DeleteEntriesFn func(ctx context.Context) error
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *pokedex.HistoryEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter pokedex.HistoryFilter) ([]*pokedex.HistoryEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *HistoryService) DeleteEntries(ctx context.Context) error {
	return s.DeleteEntriesFn(ctx)
}
