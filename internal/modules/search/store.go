// README: Restaurant store backed by PostgreSQL. The dynamic search query is
// composed with squirrel; fixed lookups use plain SQL.
package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"platefinder/internal/features"
	"platefinder/internal/types"
)

// DB is the subset of pgxpool.Pool the store needs; pgxmock satisfies it in
// tests.
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

var baseColumns = []string{
	"id", "name", "cuisine", "address", "city", "country",
	"latitude", "longitude", "rating", "price_level", "visible", "featured",
}

func selectColumns() []string {
	return append(append([]string{}, baseColumns...), features.Columns()...)
}

// MatchCity reports whether any visible restaurant's city contains the token
// (case-insensitive) and returns the canonical stored city name.
func (s *Store) MatchCity(ctx context.Context, token string) (string, bool, error) {
	row := s.db.QueryRow(ctx, `
        SELECT DISTINCT city FROM restaurants
        WHERE visible = true
          AND city <> ''
          AND city ILIKE '%' || $1 || '%'
        LIMIT 1`, token,
	)
	var city string
	err := row.Scan(&city)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("match city: %w", err)
	}
	return city, true, nil
}

// Search runs the structured query against the store. Only visible rows are
// ever considered.
func (s *Store) Search(ctx context.Context, q Query) ([]types.Restaurant, error) {
	b := sq.Select(selectColumns()...).
		From("restaurants").
		Where(sq.Eq{"visible": true}).
		PlaceholderFormat(sq.Dollar)

	// Deterministic column order keeps the generated SQL stable between
	// identical calls.
	cols := make([]string, 0, len(q.Flags))
	for col, v := range q.Flags {
		if v {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	for _, col := range cols {
		b = b.Where(sq.Eq{col: true})
	}

	if q.PriceLevel != nil {
		b = b.Where(sq.Eq{"price_level": *q.PriceLevel})
	}

	if len(q.Cuisines) > 0 {
		or := sq.Or{}
		for _, c := range q.Cuisines {
			or = append(or, sq.ILike{"cuisine": "%" + c + "%"})
		}
		b = b.Where(or)
	}

	switch {
	case q.City != "":
		b = b.Where(sq.ILike{"city": q.City})
	case q.LocationOr != "":
		pattern := "%" + q.LocationOr + "%"
		b = b.Where(sq.Or{
			sq.ILike{"city": pattern},
			sq.ILike{"address": pattern},
		})
	case q.BroadText != "":
		pattern := "%" + q.BroadText + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"cuisine": pattern},
			sq.ILike{"address": pattern},
			sq.ILike{"city": pattern},
		})
	}

	if q.RequireCoordinates {
		b = b.Where(sq.NotEq{"latitude": nil}).Where(sq.NotEq{"longitude": nil})
	}

	if q.OrderByRating {
		b = b.OrderBy("rating DESC NULLS LAST")
	}

	sqlText, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := s.db.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("search restaurants: %w", err)
	}
	defer rows.Close()

	var out []types.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}
	return out, nil
}

// scanRestaurant reads one row in selectColumns order, folding the feature
// columns into the Features map.
func scanRestaurant(rows pgx.Rows) (types.Restaurant, error) {
	var r types.Restaurant
	flagCols := features.Columns()
	flags := make([]bool, len(flagCols))

	dest := []any{
		&r.ID, &r.Name, &r.Cuisine, &r.Address, &r.City, &r.Country,
		&r.Latitude, &r.Longitude, &r.Rating, &r.PriceLevel, &r.Visible, &r.Featured,
	}
	for i := range flags {
		dest = append(dest, &flags[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return types.Restaurant{}, err
	}

	r.Features = make(map[string]bool, len(flagCols))
	for i, f := range features.All() {
		r.Features[f.Key] = flags[i]
	}
	return r, nil
}

// normalizeCuisine lower-cases and trims a cuisine token for in-memory
// comparison.
func normalizeCuisine(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
