package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range Blend(len(clusters), from, to) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(bold).Render(clusters[i]))
	}
	return b.String()
}

// BrandGradient renders text in the theme's cyan to blue gradient.
func BrandGradient(text string) string {
	t := T()
	return Gradient(text, true, t.Primary, t.Secondary)
}

// Blend returns n colors evenly spaced between from and to, blended in HCL
// space. Colors that are not #rrggbb hex fall back to from.
func Blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	colors := make([]lipgloss.Color, n)
	for i := range colors {
		if err1 != nil || err2 != nil {
			colors[i] = from
			continue
		}
		t := float64(i) / float64(n-1)
		colors[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return colors
}
