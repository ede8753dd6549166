// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionSwitchFocus Action = "switch_focus"
	ActionBack        Action = "back"

	// Page switching
	ActionViewMap     Action = "view_map"
	ActionViewDrop    Action = "view_drop"
	ActionViewProfile Action = "view_profile"

	// Player actions
	ActionPlayPause  Action = "play_pause"
	ActionNextSong   Action = "next_song"
	ActionPrevSong   Action = "prev_song"
	ActionLikePlayed Action = "like_played"

	// Map actions
	ActionPanLeft      Action = "pan_left"
	ActionPanRight     Action = "pan_right"
	ActionPanUp        Action = "pan_up"
	ActionPanDown      Action = "pan_down"
	ActionRecenter     Action = "recenter"
	ActionOpenNearby   Action = "open_nearby"
	ActionToggleDial   Action = "toggle_dial"
	ActionNextLocation Action = "next_location"

	// Carousel and dial navigation
	ActionPrevItem  Action = "prev_item"
	ActionNextItem  Action = "next_item"
	ActionFirstPage Action = "first_page"
	ActionLastPage  Action = "last_page"
	ActionSelect    Action = "select" // enter - play/activate

	// List navigation
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"

	// Location modal
	ActionCycleSort  Action = "cycle_sort"
	ActionToggleLike Action = "toggle_like"

	// Drop page
	ActionToggleTag Action = "toggle_tag"
	ActionDrop      Action = "drop"
)
