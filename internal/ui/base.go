package ui

// Base provides common UI component functionality for focus and size management.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    carousel carousel.Model[catalog.Song]
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions. Negative values are treated as zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(0, width)
	b.height = max(0, height)
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Contains reports whether a point in component-local coordinates falls
// inside the component.
func (b Base) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}
