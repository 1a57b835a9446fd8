package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pokedex"
)

// Ensure LoggingKeyValueStore implements pokedex.KeyValueStore.
var _ pokedex.KeyValueStore = (*LoggingKeyValueStore)(nil)

// LoggingKeyValueStore wraps a KeyValueStore with logging.
type LoggingKeyValueStore struct {
	next   pokedex.KeyValueStore
	logger *slog.Logger
}

// NewLoggingKeyValueStore creates a new LoggingKeyValueStore.
func NewLoggingKeyValueStore(next pokedex.KeyValueStore, logger *slog.Logger) *LoggingKeyValueStore {
	return &LoggingKeyValueStore{next: next, logger: logger}
}

// Get delegates to the wrapped store and logs the read.
func (s *LoggingKeyValueStore) Get(ctx context.Context, key string) (value string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store get",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, key)
}

// Set delegates to the wrapped store and logs the write.
func (s *LoggingKeyValueStore) Set(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store set",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, key, value)
}

// Delete delegates to the wrapped store and logs the removal.
func (s *LoggingKeyValueStore) Delete(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store delete",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Delete(ctx, key)
}
