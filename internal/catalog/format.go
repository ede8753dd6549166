package catalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// CompactCount abbreviates counts above one thousand as "Nk".
func CompactCount(n int) string {
	if n > 1000 {
		return strconv.Itoa(n/1000) + "k"
	}
	return strconv.Itoa(n)
}

// GroupedCount formats a count with thousands separators.
func GroupedCount(n int) string {
	return humanize.Comma(int64(n))
}

// MarkerBadge is the count shown on a map marker, capped at "9+".
func MarkerBadge(n int) string {
	if n >= 10 {
		return "9+"
	}
	return strconv.Itoa(n)
}

// Ago describes t relative to now ("2 hours ago").
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatDuration renders a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
