// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "player", "map", "carousel", "dial", "modal", "drop", "drop-tags", "drop-results"
}

// All contains all key bindings, used for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionViewMap, []string{"f1"}, "Map", "global"},
	{ActionViewDrop, []string{"f2"}, "Drop a song", "global"},
	{ActionViewProfile, []string{"f3"}, "Profile", "global"},

	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", "player"},
	{ActionNextSong, []string{"pgdown"}, "Next song", "player"},
	{ActionPrevSong, []string{"pgup"}, "Previous song", "player"},
	{ActionLikePlayed, []string{"L"}, "Like playing song", "player"},

	// Map
	{ActionPanLeft, []string{"h", "left"}, "Pan left", "map"},
	{ActionPanRight, []string{"l", "right"}, "Pan right", "map"},
	{ActionPanUp, []string{"k", "up"}, "Pan up", "map"},
	{ActionPanDown, []string{"j", "down"}, "Pan down", "map"},
	{ActionRecenter, []string{"0"}, "Back to my location", "map"},
	{ActionNextLocation, []string{"n"}, "Highlight next location", "map"},
	{ActionOpenNearby, []string{"enter"}, "Open highlighted location", "map"},
	{ActionToggleDial, []string{"d"}, "Toggle dial view", "map"},

	// Carousel
	{ActionPrevItem, []string{"h", "left"}, "Previous song", "carousel"},
	{ActionNextItem, []string{"l", "right"}, "Next song", "carousel"},
	{ActionFirstPage, []string{"home"}, "First page", "carousel"},
	{ActionLastPage, []string{"end"}, "Last page", "carousel"},
	{ActionSelect, []string{"enter"}, "Play first visible song", "carousel"},
	{ActionToggleDial, []string{"d"}, "Toggle dial view", "carousel"},

	// Dial
	{ActionPrevItem, []string{"h", "left", "k", "up"}, "Rotate back", "dial"},
	{ActionNextItem, []string{"l", "right", "j", "down"}, "Rotate forward", "dial"},
	{ActionSelect, []string{"enter"}, "Play highlighted song", "dial"},
	{ActionBack, []string{"esc"}, "Close dial", "dial"},
	{ActionToggleDial, []string{"d"}, "Back to carousel", "dial"},

	// Location modal
	{ActionMoveUp, []string{"k", "up"}, "Move up", "modal"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "modal"},
	{ActionCycleSort, []string{"s"}, "Cycle sort", "modal"},
	{ActionToggleLike, []string{"l"}, "Like/unlike", "modal"},
	{ActionSelect, []string{"enter"}, "Play song", "modal"},
	{ActionBack, []string{"esc"}, "Close", "modal"},

	// Drop page
	{ActionBack, []string{"esc"}, "Leave search", "drop"},
	{ActionPrevItem, []string{"h", "left"}, "Previous tag", "drop-tags"},
	{ActionNextItem, []string{"l", "right"}, "Next tag", "drop-tags"},
	{ActionToggleTag, []string{"enter", "x"}, "Toggle tag", "drop-tags"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "drop-results"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "drop-results"},
	{ActionSelect, []string{"enter"}, "Play song", "drop-results"},
	{ActionDrop, []string{"D"}, "Drop here", "drop-results"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts builds a resolver from the bindings of the given contexts.
// Later contexts override earlier ones for the same key.
func ForContexts(contexts ...string) *Resolver {
	var bindings []Binding
	for _, c := range contexts {
		bindings = append(bindings, ByContext(c)...)
	}
	return NewResolver(bindings)
}
