// Package headerbar renders the top header: app title and signed-in user.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// Height is the header height: the title row and a rule under it.
const Height = 2

// Title is the app name shown in the header.
const Title = "히히"

// Render returns the header for the given width.
func Render(user catalog.User, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	left := styles.BrandGradient(icons.Music() + " " + Title)

	var right string
	if user.ID != "" {
		badge := s.Muted.Render(catalog.LevelBadge(user.Level))
		name := s.Accent.Render(icons.FormatUser(user.Username))
		right = badge + "  " + name
		if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
			right = badge
		}
	}

	lines := []string{
		render.Row(left, right, width),
		s.Subtle.Render(render.Separator(width)),
	}
	return strings.Join(lines, "\n")
}
