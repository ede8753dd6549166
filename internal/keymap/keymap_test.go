//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 5},
		{"player context", "player", true, 4},
		{"map context", "map", true, 5},
		{"carousel context", "carousel", true, 5},
		{"dial context", "dial", true, 3},
		{"modal context", "modal", true, 5},
		{"drop-results context", "drop-results", true, 3},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}
			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}
			for _, kb := range result {
				if kb.Context != tt.context {
					t.Errorf("binding %v has context %q, want %q", kb.Keys, kb.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_NoDuplicateKeysWithinContext(t *testing.T) {
	seen := make(map[string]map[string]Action)
	for _, kb := range All {
		if seen[kb.Context] == nil {
			seen[kb.Context] = make(map[string]Action)
		}
		for _, key := range kb.Keys {
			if prev, ok := seen[kb.Context][key]; ok {
				t.Errorf("key %q bound twice in %q: %s and %s", key, kb.Context, prev, kb.Action)
			}
			seen[kb.Context][key] = kb.Action
		}
	}
}

func TestAll_EveryBindingHasDescription(t *testing.T) {
	for _, kb := range All {
		if kb.Description == "" {
			t.Errorf("binding %v (%s) has no description", kb.Keys, kb.Action)
		}
		if len(kb.Keys) == 0 {
			t.Errorf("binding %s has no keys", kb.Action)
		}
	}
}

func TestForContexts_LaterContextWins(t *testing.T) {
	// "l" pans on the map but rotates on the dial.
	r := ForContexts("map", "dial")
	if got := r.Resolve("l"); got != ActionNextItem {
		t.Errorf("Resolve(l) = %q, want %q", got, ActionNextItem)
	}
	if got := r.Resolve("0"); got != ActionRecenter {
		t.Errorf("Resolve(0) = %q, want %q", got, ActionRecenter)
	}
}
