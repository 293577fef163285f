// README: Parsed search intent produced by the natural-language parser.
package query

// Intent is the structured reading of a free-text search query. Features
// holds only flags that were explicitly mentioned; an absent key means "not
// mentioned", never "false". Location is empty when the query carried no
// location marker.
type Intent struct {
	Location   string
	Cuisines   []string
	PriceLevel *int
	Features   map[string]bool
}

// HasStructuredSignal reports whether the parser recognised any cuisine or
// feature mention. Queries without one fall through to the broad text-search
// branch of the resolver.
func (i Intent) HasStructuredSignal() bool {
	return len(i.Cuisines) > 0 || len(i.Features) > 0
}
