// README: Natural-language query parser. Pure and deterministic: no I/O,
// never fails, worst case is an empty intent.
package query

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"

	"platefinder/internal/features"
)

type tokenKind int

const (
	kindCuisine tokenKind = iota
	kindFeature
	kindPrice
)

// vocabEntry ties a compiled pattern index back to its meaning.
type vocabEntry struct {
	kind      tokenKind
	canonical string
	tier      int
}

// A single automaton scans the query once for every known phrase. Whole-word
// matching keeps "vegan" from firing inside unrelated words, and
// leftmost-longest keeps "beer garden" from also counting as "garden".
var matcher, vocabEntries = buildMatcher()

func buildMatcher() (a.AhoCorasick, []vocabEntry) {
	var patterns []string
	var entries []vocabEntry

	for _, c := range cuisineVocab {
		for _, p := range c.phrases {
			patterns = append(patterns, p)
			entries = append(entries, vocabEntry{kind: kindCuisine, canonical: c.name})
		}
	}
	for _, f := range features.All() {
		for _, p := range f.Phrases {
			patterns = append(patterns, p)
			entries = append(entries, vocabEntry{kind: kindFeature, canonical: f.Key})
		}
	}
	for _, pr := range priceVocab {
		for _, p := range pr.phrases {
			patterns = append(patterns, p)
			entries = append(entries, vocabEntry{kind: kindPrice, tier: pr.tier})
		}
	}

	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            a.LeftMostLongestMatch,
		DFA:                  true,
	})
	return builder.Build(patterns), entries
}

// Parse turns a raw search string into a structured intent. Conflicting
// price phrases resolve to the last one in the string.
func Parse(raw string) Intent {
	intent := Intent{
		Cuisines: []string{},
		Features: map[string]bool{},
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return intent
	}

	matches := matcher.FindAll(trimmed)
	covered := make([]bool, len(trimmed))
	seenCuisine := map[string]bool{}

	for _, m := range matches {
		entry := vocabEntries[m.Pattern()]
		switch entry.kind {
		case kindCuisine:
			if !seenCuisine[entry.canonical] {
				seenCuisine[entry.canonical] = true
				intent.Cuisines = append(intent.Cuisines, entry.canonical)
			}
		case kindFeature:
			intent.Features[entry.canonical] = true
		case kindPrice:
			tier := entry.tier
			intent.PriceLevel = &tier
		}
		for i := m.Start(); i < m.End() && i < len(covered); i++ {
			covered[i] = true
		}
	}

	intent.Location = residualLocation(trimmed, covered)
	return intent
}

// residualLocation extracts a location token from the text the vocabulary
// matches did not consume. Only text following a location marker ("near",
// "in", ...) qualifies; the last marker in the string wins.
func residualLocation(raw string, covered []bool) string {
	type token struct {
		text  string
		lower string
	}
	var leftover []token

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := strings.Trim(raw[start:end], ",.!?;:'\"()")
		if word != "" {
			leftover = append(leftover, token{text: word, lower: strings.ToLower(word)})
		}
		start = -1
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || covered[i] {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(raw))

	markerAt := -1
	for i, tok := range leftover {
		if _, ok := locationMarkers[tok.lower]; ok {
			markerAt = i
		}
	}
	if markerAt < 0 {
		return ""
	}

	var parts []string
	for _, tok := range leftover[markerAt+1:] {
		if _, stop := stopwords[tok.lower]; stop {
			continue
		}
		parts = append(parts, tok.text)
	}
	return strings.Join(parts, " ")
}
