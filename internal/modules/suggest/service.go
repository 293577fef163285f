// README: Typeahead service. Fans out the restaurant and city lookups
// concurrently, lists cities before restaurants and caps the combined list.
package suggest

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"platefinder/internal/types"
)

const (
	perKindLimit  = 5
	combinedLimit = 8
)

// SuggestionStore is what the service needs from persistence.
type SuggestionStore interface {
	Restaurants(ctx context.Context, token string, limit int) ([]types.Suggestion, error)
	Cities(ctx context.Context, token string, limit int) ([]string, error)
}

type Service struct {
	store SuggestionStore
}

func NewService(store SuggestionStore) *Service {
	return &Service{store: store}
}

// Suggest returns up to 8 typeahead entries for a partial query, cities
// first. Both lookups run concurrently; either failing fails the call.
func (s *Service) Suggest(ctx context.Context, partial string) ([]types.Suggestion, error) {
	token := strings.TrimSpace(partial)
	if token == "" {
		return []types.Suggestion{}, nil
	}

	var restaurants []types.Suggestion
	var cities []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurants, err = s.store.Restaurants(gctx, token, perKindLimit)
		return err
	})
	g.Go(func() error {
		var err error
		cities, err = s.store.Cities(gctx, token, perKindLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]types.Suggestion, 0, len(cities)+len(restaurants))
	seen := map[string]bool{}
	for _, city := range cities {
		name := capitalize(city)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, types.Suggestion{Name: name, Type: "city"})
	}
	out = append(out, restaurants...)

	if len(out) > combinedLimit {
		out = out[:combinedLimit]
	}
	return out, nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
