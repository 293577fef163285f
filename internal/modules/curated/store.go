// README: Curated subset store: featured picks and the London landing list.
package curated

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"platefinder/internal/types"
)

const listLimit = 20

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

func (s *Store) Featured(ctx context.Context) ([]types.Restaurant, error) {
	return s.list(ctx, `
        SELECT id, name, cuisine, address, city, country,
               latitude, longitude, rating, price_level, visible, featured
        FROM restaurants
        WHERE visible = true AND featured = true
        ORDER BY rating DESC NULLS LAST
        LIMIT $1`, listLimit)
}

func (s *Store) ByCity(ctx context.Context, city string) ([]types.Restaurant, error) {
	return s.list(ctx, `
        SELECT id, name, cuisine, address, city, country,
               latitude, longitude, rating, price_level, visible, featured
        FROM restaurants
        WHERE visible = true AND city ILIKE $2
        ORDER BY rating DESC NULLS LAST
        LIMIT $1`, listLimit, city)
}

func (s *Store) list(ctx context.Context, sqlText string, args ...any) ([]types.Restaurant, error) {
	rows, err := s.db.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("curated list: %w", err)
	}
	defer rows.Close()

	var out []types.Restaurant
	for rows.Next() {
		var r types.Restaurant
		err := rows.Scan(
			&r.ID, &r.Name, &r.Cuisine, &r.Address, &r.City, &r.Country,
			&r.Latitude, &r.Longitude, &r.Rating, &r.PriceLevel, &r.Visible, &r.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("scan curated restaurant: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
