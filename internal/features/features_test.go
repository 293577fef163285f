package features

import (
	"strings"
	"testing"
)

func TestColumn_KnownKeys(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"veganOptions", "vegan_options"},
		{"dogFriendly", "dog_friendly"},
		{"highChairs", "high_chairs"},
		{"sundayRoast", "sunday_roast"},
	}
	for _, tt := range tests {
		got, ok := Column(tt.key)
		if !ok {
			t.Errorf("Column(%q) not found", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("Column(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestColumn_UnknownKey(t *testing.T) {
	if _, ok := Column("notARealFlag"); ok {
		t.Error("Column must reject unknown keys")
	}
}

func TestVocabularyIsWellFormed(t *testing.T) {
	keys := map[string]bool{}
	cols := map[string]bool{}
	for _, f := range All() {
		if f.Key == "" || f.Column == "" {
			t.Fatalf("feature with empty key or column: %+v", f)
		}
		if keys[f.Key] {
			t.Errorf("duplicate key %q", f.Key)
		}
		if cols[f.Column] {
			t.Errorf("duplicate column %q", f.Column)
		}
		keys[f.Key] = true
		cols[f.Column] = true

		if len(f.Phrases) == 0 {
			t.Errorf("feature %q has no phrases", f.Key)
		}
		for _, p := range f.Phrases {
			if p != strings.ToLower(p) {
				t.Errorf("phrase %q for %q must be lower case", p, f.Key)
			}
		}
	}
}

func TestKeysAndColumnsAlign(t *testing.T) {
	keys := Keys()
	cols := Columns()
	if len(keys) != len(cols) {
		t.Fatalf("len(Keys()) = %d, len(Columns()) = %d", len(keys), len(cols))
	}
	for i, f := range All() {
		if keys[i] != f.Key || cols[i] != f.Column {
			t.Fatalf("order mismatch at %d: %q/%q vs %+v", i, keys[i], cols[i], f)
		}
	}
}
