// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"context"
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Map and locations
	OpLoadLocations Op = "load nearby locations"
	OpOpenLocation  Op = "open location"

	// Songs
	OpLikeToggle Op = "update like"
	OpRecordPlay Op = "record play"
	OpPlaySong   Op = "play song"

	// Drop page
	OpLoadLibrary Op = "load library"
	OpLoadTags    Op = "load tags"
	OpDrop        Op = "drop song"

	// Profile
	OpLoadProfile  Op = "load profile"
	OpLoadActivity Op = "load recent activity"

	// Initialization
	OpLoadConfig Op = "load configuration"
	OpStoreOpen  Op = "open song store"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Failed to %s: timed out", op)
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context, usually the
// name of the song or place involved.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
