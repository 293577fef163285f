// README: Canonical feature-flag vocabulary shared by the query parser, the
// search store and the HTTP filter parsing. Key is the semantic name used by
// the UI, Column is the storage column, Phrases are the spoken forms the
// natural-language parser recognises. Keep this as the single source of
// truth; nothing else may hardcode a flag-to-column mapping.
package features

// Feature describes one boolean restaurant attribute.
type Feature struct {
	Key     string
	Column  string
	Phrases []string
}

var all = []Feature{
	// Family
	{Key: "kidsMenu", Column: "kids_menu", Phrases: []string{"kids menu", "kid's menu", "childrens menu", "children's menu", "kid friendly menu"}},
	{Key: "highChairs", Column: "high_chairs", Phrases: []string{"high chair", "high chairs", "highchair", "highchairs"}},
	{Key: "babyChanging", Column: "baby_changing", Phrases: []string{"baby changing", "changing table", "changing facilities"}},
	{Key: "playArea", Column: "play_area", Phrases: []string{"play area", "soft play", "playground"}},
	{Key: "outdoorPlayArea", Column: "outdoor_play_area", Phrases: []string{"outdoor play area", "outdoor playground"}},
	{Key: "kidsEatFree", Column: "kids_eat_free", Phrases: []string{"kids eat free", "children eat free"}},
	{Key: "kidsEntertainment", Column: "kids_entertainment", Phrases: []string{"kids entertainment", "entertainer", "face painting"}},
	{Key: "childrensPortions", Column: "childrens_portions", Phrases: []string{"childrens portions", "children's portions", "half portions", "small portions"}},
	{Key: "pramAccess", Column: "pram_access", Phrases: []string{"pram access", "pram friendly", "stroller friendly", "buggy friendly"}},
	{Key: "familyFriendly", Column: "family_friendly", Phrases: []string{"family friendly", "family-friendly", "good for families", "good for kids", "child friendly", "kid friendly"}},
	{Key: "babyFriendly", Column: "baby_friendly", Phrases: []string{"baby friendly", "babies welcome"}},
	{Key: "bottleWarming", Column: "bottle_warming", Phrases: []string{"bottle warming", "warm bottles"}},

	// Dietary
	{Key: "veganOptions", Column: "vegan_options", Phrases: []string{"vegan", "plant based", "plant-based"}},
	{Key: "vegetarianOptions", Column: "vegetarian_options", Phrases: []string{"vegetarian", "veggie"}},
	{Key: "glutenFreeOptions", Column: "gluten_free_options", Phrases: []string{"gluten free", "gluten-free", "coeliac friendly"}},
	{Key: "dairyFreeOptions", Column: "dairy_free_options", Phrases: []string{"dairy free", "dairy-free", "lactose free"}},
	{Key: "nutFreeOptions", Column: "nut_free_options", Phrases: []string{"nut free", "nut-free"}},
	{Key: "halalOptions", Column: "halal_options", Phrases: []string{"halal"}},
	{Key: "kosherOptions", Column: "kosher_options", Phrases: []string{"kosher"}},
	{Key: "organicOptions", Column: "organic_options", Phrases: []string{"organic"}},
	{Key: "allergyAware", Column: "allergy_aware", Phrases: []string{"allergy aware", "allergy friendly", "allergen menu"}},

	// Atmosphere
	{Key: "outdoorSeating", Column: "outdoor_seating", Phrases: []string{"outdoor seating", "outside seating", "al fresco", "terrace", "patio"}},
	{Key: "garden", Column: "garden", Phrases: []string{"garden", "beer garden"}},
	{Key: "rooftop", Column: "rooftop", Phrases: []string{"rooftop", "roof terrace"}},
	{Key: "waterfrontView", Column: "waterfront_view", Phrases: []string{"waterfront", "sea view", "river view", "harbour view"}},
	{Key: "quietAtmosphere", Column: "quiet_atmosphere", Phrases: []string{"quiet", "calm", "peaceful"}},
	{Key: "livelyAtmosphere", Column: "lively_atmosphere", Phrases: []string{"lively", "buzzing", "vibrant"}},
	{Key: "romanticSetting", Column: "romantic_setting", Phrases: []string{"romantic", "date night"}},
	{Key: "dogFriendly", Column: "dog_friendly", Phrases: []string{"dog friendly", "dog-friendly", "dogs welcome", "pet friendly"}},
	{Key: "liveMusic", Column: "live_music", Phrases: []string{"live music", "live band"}},
	{Key: "sportsScreens", Column: "sports_screens", Phrases: []string{"sports screens", "shows sports", "watch the game", "big screen"}},

	// Accessibility
	{Key: "wheelchairAccess", Column: "wheelchair_access", Phrases: []string{"wheelchair access", "wheelchair accessible", "wheelchair friendly"}},
	{Key: "accessibleToilet", Column: "accessible_toilet", Phrases: []string{"accessible toilet", "disabled toilet"}},
	{Key: "stepFreeAccess", Column: "step_free_access", Phrases: []string{"step free", "step-free", "no steps"}},
	{Key: "brailleMenu", Column: "braille_menu", Phrases: []string{"braille menu"}},
	{Key: "hearingLoop", Column: "hearing_loop", Phrases: []string{"hearing loop", "induction loop"}},

	// Amenities
	{Key: "parking", Column: "parking", Phrases: []string{"parking", "car park"}},
	{Key: "freeWifi", Column: "free_wifi", Phrases: []string{"wifi", "wi-fi", "free wifi"}},
	{Key: "takesReservations", Column: "takes_reservations", Phrases: []string{"reservations", "bookable", "takes bookings"}},
	{Key: "deliveryAvailable", Column: "delivery_available", Phrases: []string{"delivery", "delivers"}},
	{Key: "takeawayAvailable", Column: "takeaway_available", Phrases: []string{"takeaway", "take away", "take out", "takeout"}},
	{Key: "cardPayments", Column: "card_payments", Phrases: []string{"card payments", "takes cards", "contactless"}},
	{Key: "breakfastServed", Column: "breakfast_served", Phrases: []string{"breakfast", "brunch"}},
	{Key: "sundayRoast", Column: "sunday_roast", Phrases: []string{"sunday roast", "sunday lunch", "roast dinner"}},
	{Key: "openLate", Column: "open_late", Phrases: []string{"open late", "late night"}},
}

var columnByKey = func() map[string]string {
	m := make(map[string]string, len(all))
	for _, f := range all {
		m[f.Key] = f.Column
	}
	return m
}()

// All returns the full vocabulary in declaration order.
func All() []Feature { return all }

// Column resolves a semantic flag key to its storage column. Unknown keys
// return false so callers can ignore them (UI schema drift tolerance).
func Column(key string) (string, bool) {
	col, ok := columnByKey[key]
	return col, ok
}

// Keys returns every semantic flag key in declaration order.
func Keys() []string {
	keys := make([]string, len(all))
	for i, f := range all {
		keys[i] = f.Key
	}
	return keys
}

// Columns returns every storage column in declaration order. The search
// store uses this to build its select list, so the order here defines the
// scan order as well.
func Columns() []string {
	cols := make([]string, len(all))
	for i, f := range all {
		cols[i] = f.Column
	}
	return cols
}
