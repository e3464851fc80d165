// Package tracking persists auto-tracked search definitions. The lifecycle
// here is insert-only: scheduling and re-execution of tracked searches
// belong to another system.
package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// TrackedSearch is one saved search definition.
type TrackedSearch struct {
	ID            string
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	MaxResults    int
	AirlineCodes  []string
	CreatedAt     time.Time
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert writes a single tracked search row. Each call is an independent
// insert with no read-modify-write, so no transaction is needed.
func (s *Store) Insert(ctx context.Context, search TrackedSearch) error {
	const query = `
		INSERT INTO tracked_searches
			(id, origin, destination, departure_date, adults, max_results, airline_codes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	airlineCodes := sql.NullString{}
	if len(search.AirlineCodes) > 0 {
		airlineCodes = sql.NullString{String: strings.Join(search.AirlineCodes, ","), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		search.ID,
		search.Origin,
		search.Destination,
		search.DepartureDate,
		search.Adults,
		search.MaxResults,
		airlineCodes,
		search.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tracked search %s: %w", search.ID, err)
	}

	return nil
}
