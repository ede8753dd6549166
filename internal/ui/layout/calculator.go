// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight       int
	PlayerBarHeight    int // 0 until a song is selected
	NotificationHeight int // 0 when no message is shown
	NavBarHeight       int
}

// Band is a horizontal strip of the screen: its first row and its height.
type Band struct {
	Top    int
	Height int
}

// Contains reports whether row y falls inside the band.
func (b Band) Contains(y int) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Screen holds the bands the window is split into, top to bottom.
type Screen struct {
	Header       Band
	Content      Band
	Player       Band
	Notification Band
	Nav          Band
}

// ContentHeight calculates the available height for the page content.
// This is the terminal height minus header, player bar, notification
// line and navigation bar, never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.PlayerBarHeight
	height -= opts.NotificationHeight
	height -= opts.NavBarHeight
	return max(0, height)
}

// Split lays the bands out from the top of the window. Bands that do not
// fit are clipped to the window.
func Split(windowHeight int, opts ContentOpts) Screen {
	var s Screen
	row := 0
	next := func(h int) Band {
		h = max(0, min(h, windowHeight-row))
		b := Band{Top: row, Height: h}
		row += h
		return b
	}

	s.Header = next(opts.HeaderHeight)
	s.Content = next(ContentHeight(windowHeight, opts))
	s.Player = next(opts.PlayerBarHeight)
	s.Notification = next(opts.NotificationHeight)
	s.Nav = next(opts.NavBarHeight)
	return s
}

// MapSplit divides the map page content between the map canvas and the
// carousel below it. The carousel keeps its full height while the map can
// still get minMap rows; otherwise the map is served first.
func MapSplit(contentHeight, carouselHeight, minMap int) (mapHeight, stripHeight int) {
	if contentHeight <= 0 {
		return 0, 0
	}
	if contentHeight-carouselHeight >= minMap {
		return contentHeight - carouselHeight, carouselHeight
	}
	mapHeight = min(contentHeight, minMap)
	return mapHeight, contentHeight - mapHeight
}

// PopupSize returns the size of a centered popup for the given window,
// capped at maxWidth x maxHeight and leaving a two cell margin.
func PopupSize(windowWidth, windowHeight, maxWidth, maxHeight int) (width, height int) {
	width = max(0, min(maxWidth, windowWidth-4))
	height = max(0, min(maxHeight, windowHeight-4))
	return width, height
}
