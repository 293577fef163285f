// README: Cuisine and price vocabularies for the natural-language parser.
package query

// cuisineEntry maps spoken forms to the canonical cuisine token stored in
// the cuisine column.
type cuisineEntry struct {
	name    string
	phrases []string
}

var cuisineVocab = []cuisineEntry{
	{name: "Italian", phrases: []string{"italian", "pizza", "pasta"}},
	{name: "Chinese", phrases: []string{"chinese", "dim sum"}},
	{name: "Indian", phrases: []string{"indian", "curry"}},
	{name: "Thai", phrases: []string{"thai"}},
	{name: "Japanese", phrases: []string{"japanese", "sushi", "ramen"}},
	{name: "Mexican", phrases: []string{"mexican", "tacos", "burritos"}},
	{name: "French", phrases: []string{"french"}},
	{name: "Spanish", phrases: []string{"spanish", "tapas"}},
	{name: "Greek", phrases: []string{"greek"}},
	{name: "Turkish", phrases: []string{"turkish"}},
	{name: "Lebanese", phrases: []string{"lebanese"}},
	{name: "Vietnamese", phrases: []string{"vietnamese", "pho"}},
	{name: "Korean", phrases: []string{"korean"}},
	{name: "American", phrases: []string{"american", "burger", "burgers"}},
	{name: "British", phrases: []string{"british", "fish and chips"}},
	{name: "Caribbean", phrases: []string{"caribbean", "jerk chicken"}},
	{name: "Ethiopian", phrases: []string{"ethiopian"}},
	{name: "Portuguese", phrases: []string{"portuguese"}},
	{name: "Polish", phrases: []string{"polish"}},
	{name: "Moroccan", phrases: []string{"moroccan"}},
	{name: "Pakistani", phrases: []string{"pakistani"}},
	{name: "Nepalese", phrases: []string{"nepalese"}},
	{name: "Malaysian", phrases: []string{"malaysian"}},
	{name: "Indonesian", phrases: []string{"indonesian"}},
	{name: "Mediterranean", phrases: []string{"mediterranean", "mezze"}},
	{name: "Seafood", phrases: []string{"seafood", "fish restaurant", "oysters"}},
	{name: "Steakhouse", phrases: []string{"steakhouse", "steak"}},
}

// priceEntry maps spoken forms to a price tier (1 cheapest, 4 finest).
type priceEntry struct {
	tier    int
	phrases []string
}

var priceVocab = []priceEntry{
	{tier: 1, phrases: []string{"cheap", "budget", "inexpensive", "affordable", "bargain", "cheap eats"}},
	{tier: 2, phrases: []string{"mid range", "mid-range", "moderate", "reasonably priced"}},
	{tier: 3, phrases: []string{"upscale", "fancy", "expensive", "high end", "high-end", "posh"}},
	{tier: 4, phrases: []string{"fine dining", "luxury", "michelin"}},
}

// Words removed from the residual location: query filler and the location
// markers themselves.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "some": {}, "any": {},
	"restaurant": {}, "restaurants": {}, "food": {}, "place": {}, "places": {},
	"spot": {}, "spots": {}, "eat": {}, "eats": {}, "dinner": {}, "lunch": {},
	"good": {}, "best": {}, "nice": {}, "great": {},
	"find": {}, "show": {}, "me": {}, "want": {}, "looking": {}, "for": {},
	"with": {}, "and": {}, "that": {}, "has": {}, "have": {},
	"near": {}, "in": {}, "at": {}, "around": {}, "nearby": {}, "close": {}, "to": {}, "by": {},
}

// locationMarkers are the prepositions that introduce a location token.
// Residual text is only treated as a location when it follows one of these;
// a bare leftover (for example a restaurant's proper name) must instead fall
// through to the broad text-search branch.
var locationMarkers = map[string]struct{}{
	"near": {}, "in": {}, "at": {}, "around": {}, "by": {}, "to": {},
}
