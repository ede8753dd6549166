package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// RenderProgressBar renders the elapsed time, the bar and the duration.
// Format: 1:23 ━━━━━──────── 3:45
func RenderProgressBar(position, duration time.Duration, width int) string {
	s := styles.T().S()
	posStr := catalog.FormatDuration(position)
	durStr := catalog.FormatDuration(duration)

	barWidth := progressWidth(position, duration, width)
	if barWidth < 3 {
		return s.Muted.Render(posStr + " / " + durStr)
	}

	filled := filledCells(position, duration, barWidth)
	bar := s.Accent.Render(strings.Repeat(filledBlock, filled)) +
		s.Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return s.Muted.Render(posStr) + " " + bar + " " + s.Muted.Render(durStr)
}

// progressWidth returns the number of cells used by the bar itself.
func progressWidth(position, duration time.Duration, width int) int {
	return width - barStart(position) - lipgloss.Width(catalog.FormatDuration(duration)) - 1
}

// barStart is the column where the bar begins.
func barStart(position time.Duration) int {
	return lipgloss.Width(catalog.FormatDuration(position)) + 1
}

func filledCells(position, duration time.Duration, barWidth int) int {
	if duration <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(max(int(float64(barWidth)*ratio), 0), barWidth)
}
