//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDrop,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpDrop,
			err:      errors.New("song already dropped here"),
			expected: "Failed to drop song: song already dropped here",
		},
		{
			name:     "like operation",
			op:       OpLikeToggle,
			err:      errors.New("not found"),
			expected: "Failed to update like: not found",
		},
		{
			name:     "startup operation",
			op:       OpStoreOpen,
			err:      errors.New("out of memory"),
			expected: "Failed to open song store: out of memory",
		},
		{
			name:     "wrapped deadline reads as timeout",
			op:       OpLoadLocations,
			err:      fmt.Errorf("query: %w", context.DeadlineExceeded),
			expected: "Failed to load nearby locations: timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaySong,
			context:  "Spicy",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpPlaySong,
			context:  "Spicy",
			err:      errors.New("not found"),
			expected: "Failed to play song 'Spicy': not found",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpOpenLocation,
			context:  "",
			err:      errors.New("not found"),
			expected: "Failed to open location: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
