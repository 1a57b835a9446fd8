package sqlite

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// parseTime parses a timestamp stored in timeFormat.
// The error names the column that failed to parse.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// paginate applies LIMIT and OFFSET when they are > 0. SQLite needs a LIMIT
// before OFFSET, so an offset alone gets LIMIT -1.
func paginate(query squirrel.SelectBuilder, limit, offset int) squirrel.SelectBuilder {
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		if limit <= 0 {
			return query.Suffix("LIMIT -1 OFFSET ?", offset)
		}
		query = query.Offset(uint64(offset))
	}
	return query
}
