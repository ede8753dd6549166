// Package search ranks items against a free-text query using trigram
// coverage, so small typos and partial words still match.
package search

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minCoverage is the share of a query word's trigrams an item must contain.
const minCoverage = 0.4

// Item is anything that can be matched by text.
type Item interface {
	FilterValue() string
}

// Match is a matching item index with its score.
type Match struct {
	Index int
	Score float64
}

// Matcher performs trigram-based search with multi-word support.
type Matcher struct {
	normalized []string
	trigrams   []map[string]struct{}
}

// NewMatcher indexes the given items.
func NewMatcher[T Item](items []T) *Matcher {
	m := &Matcher{
		normalized: make([]string, len(items)),
		trigrams:   make([]map[string]struct{}, len(items)),
	}
	for i, item := range items {
		text := Normalize(item.FilterValue())
		m.normalized[i] = text
		m.trigrams[i] = generateTrigrams(text)
	}
	return m
}

// Len returns the number of indexed items.
func (m *Matcher) Len() int {
	return len(m.normalized)
}

// Search finds items matching the query. Every word must match (AND).
// Results are sorted best first; equal scores keep index order.
// An empty query matches every item with a zero score.
func (m *Matcher) Search(query string) []Match {
	words := strings.Fields(Normalize(query))
	if len(words) == 0 {
		matches := make([]Match, len(m.normalized))
		for i := range matches {
			matches[i] = Match{Index: i}
		}
		return matches
	}

	wordTrigrams := make([]map[string]struct{}, len(words))
	for i, word := range words {
		wordTrigrams[i] = generateTrigrams(word)
	}

	var matches []Match
	for i := range m.normalized {
		if score := m.score(i, words, wordTrigrams); score > 0 {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return matches
}

func (m *Matcher) score(idx int, words []string, wordTrigrams []map[string]struct{}) float64 {
	text := m.normalized[idx]
	total := 0.0

	for i, word := range words {
		// Too short for trigrams to say anything
		if utf8.RuneCountInString(word) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			total++
			continue
		}

		similarity := trigramCoverage(wordTrigrams[i], m.trigrams[idx])
		if similarity < minCoverage {
			return 0
		}
		if strings.Contains(text, word) {
			similarity += 0.5
		}
		total += similarity
	}

	return total / float64(len(words))
}

// Normalize lowercases s and strips diacritics, so "Café" matches "cafe".
// Precomposed Hangul survives the round trip.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// generateTrigrams pads s with spaces so prefixes and suffixes count.
func generateTrigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}

	tris := make(map[string]struct{})
	padded := []rune("  " + s + "  ")
	for i := 0; i+3 <= len(padded); i++ {
		tri := string(padded[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// trigramCoverage is |query ∩ item| / |query|. Unlike Jaccard it does not
// penalize short queries against long texts.
func trigramCoverage(query, item map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for tri := range query {
		if _, ok := item[tri]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}
