// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the top bar: title row plus separator.
	HeaderHeight = 2

	// NavBarHeight is the bottom tab bar: separator row plus tabs.
	NavBarHeight = 2

	// PlayerBarHeight is the bordered mini player shown once a song is selected.
	PlayerBarHeight = 5

	// NotificationHeight is the status line used for errors and confirmations.
	NotificationHeight = 1

	// CarouselHeight is the nearby songs strip: header, cards and page dots.
	CarouselHeight = 8

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// MinMapHeight is the smallest map canvas worth drawing.
	MinMapHeight = 6

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// CellAspect is how many columns a terminal cell must be stretched by to
	// look as tall as it is wide.
	CellAspect = 2.0
)
