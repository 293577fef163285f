// README: Typeahead store: partial-match lookups for restaurants and cities.
package suggest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"platefinder/internal/types"
)

type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Restaurants returns visible restaurants whose name, cuisine or address
// contains the token, best rated first.
func (s *Store) Restaurants(ctx context.Context, token string, limit int) ([]types.Suggestion, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, cuisine, address FROM restaurants
        WHERE visible = true
          AND (name ILIKE '%' || $1 || '%'
            OR cuisine ILIKE '%' || $1 || '%'
            OR address ILIKE '%' || $1 || '%')
        ORDER BY rating DESC NULLS LAST
        LIMIT $2`, token, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("suggest restaurants: %w", err)
	}
	defer rows.Close()

	var out []types.Suggestion
	for rows.Next() {
		sug := types.Suggestion{Type: "restaurant"}
		if err := rows.Scan(&sug.ID, &sug.Name, &sug.Cuisine, &sug.Address); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, sug)
	}
	return out, rows.Err()
}

// Cities returns distinct visible cities containing the token.
func (s *Store) Cities(ctx context.Context, token string, limit int) ([]string, error) {
	rows, err := s.db.Query(ctx, `
        SELECT DISTINCT city FROM restaurants
        WHERE visible = true
          AND city <> ''
          AND city ILIKE '%' || $1 || '%'
        LIMIT $2`, token, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("suggest cities: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, city)
	}
	return out, rows.Err()
}
