package search

import (
	"testing"
)

type text string

func (t text) FilterValue() string { return string(t) }

func indexes(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello", "hello"},
		{"Café", "cafe"},
		{"Beyoncé", "beyonce"},
		{"벚꽃 엔딩", "벚꽃 엔딩"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGenerateTrigrams(t *testing.T) {
	tris := generateTrigrams("ab")
	want := []string{"  a", " ab", "ab ", "b  "}
	if len(tris) != len(want) {
		t.Fatalf("got %d trigrams, want %d: %v", len(tris), len(want), tris)
	}
	for _, w := range want {
		if _, ok := tris[w]; !ok {
			t.Errorf("missing trigram %q", w)
		}
	}

	if generateTrigrams("") != nil {
		t.Error("empty string should have no trigrams")
	}
}

func TestTrigramCoverage(t *testing.T) {
	query := generateTrigrams("abc")
	if got := trigramCoverage(query, query); got != 1 {
		t.Errorf("self coverage = %f, want 1", got)
	}
	if got := trigramCoverage(query, generateTrigrams("xyz")); got != 0 {
		t.Errorf("disjoint coverage = %f, want 0", got)
	}
	if got := trigramCoverage(nil, query); got != 0 {
		t.Errorf("empty query coverage = %f, want 0", got)
	}
}

func TestMatcher_EmptyQueryMatchesAll(t *testing.T) {
	m := NewMatcher([]text{"one", "two", "three"})
	got := indexes(m.Search("   "))
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("Search() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Search()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMatcher_Search(t *testing.T) {
	items := []text{
		"Super Shy NewJeans Get Up",
		"Hot Summer f(x) Hot Summer",
		"Spicy aespa MY WORLD",
		"벚꽃 엔딩 버스커 버스커",
	}
	m := NewMatcher(items)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"exact word", "spicy", []int{2}},
		{"case insensitive", "NEWJEANS", []int{0}},
		{"typo tolerated", "summr", []int{1}},
		{"all words must match", "hot shy", nil},
		{"short word uses substring", "f(", []int{1}},
		{"hangul", "벚꽃", []int{3}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indexes(m.Search(tt.query))
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Search(%q)[%d] = %d, want %d", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatcher_SortedByScore(t *testing.T) {
	m := NewMatcher([]text{"summertime sadness", "summer", "endless summer"})
	matches := m.Search("summer")
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted: %v", matches)
		}
	}
	if matches[0].Index != 1 {
		t.Errorf("best match = %d, want the exact title", matches[0].Index)
	}

	// Equal scores keep item order
	tied := indexes(NewMatcher([]text{"abc x", "abc y"}).Search("abc"))
	if len(tied) != 2 || tied[0] != 0 || tied[1] != 1 {
		t.Errorf("tied matches = %v, want [0 1]", tied)
	}
}

func TestNewMatcher_Empty(t *testing.T) {
	m := NewMatcher([]text{})
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if got := m.Search("x"); len(got) != 0 {
		t.Errorf("Search() = %v, want none", got)
	}
}
