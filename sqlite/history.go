package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fwojciec/pokedex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pokedex.HistoryService = (*HistoryService)(nil)

// HistoryService implements pokedex.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateEntry records a new search.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *pokedex.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.SearchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, query, pokemon_name, requested_info, found, searched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Query, entry.PokemonName, joinInfo(entry.RequestedInfo), entry.Found,
		entry.SearchedAt.Format(timeFormat))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter pokedex.HistoryFilter) ([]*pokedex.HistoryEntry, error) {
	query := squirrel.
		Select("id", "query", "pokemon_name", "requested_info", "found", "searched_at").
		From("history").
		OrderBy("searched_at DESC", "rowid DESC")

	if filter.PokemonName != nil {
		query = query.Where(squirrel.Eq{"pokemon_name": *filter.PokemonName})
	}
	if filter.Found != nil {
		query = query.Where(squirrel.Eq{"found": *filter.Found})
	}
	query = paginate(query, filter.Limit, filter.Offset)

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*pokedex.HistoryEntry
	for rows.Next() {
		var entry pokedex.HistoryEntry
		var info, searchedAt string

		if err := rows.Scan(&entry.ID, &entry.Query, &entry.PokemonName, &info, &entry.Found, &searchedAt); err != nil {
			return nil, err
		}

		entry.RequestedInfo = splitInfo(info)

		if entry.SearchedAt, err = parseTime(searchedAt, "searched_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntries removes all recorded searches.
func (s *HistoryService) DeleteEntries(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM history")
	return err
}

func joinInfo(info []pokedex.Info) string {
	parts := make([]string, len(info))
	for i, in := range info {
		parts[i] = string(in)
	}
	return strings.Join(parts, ",")
}

func splitInfo(s string) []pokedex.Info {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	info := make([]pokedex.Info, len(parts))
	for i, p := range parts {
		info[i] = pokedex.Info(p)
	}
	return info
}
