package locationmodal

import (
	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/action"
)

// Play asks the app to play a song. Queue is the list in display order so
// the player can step through it.
type Play struct {
	Queue []catalog.Song
	Index int
}

// ActionType implements action.Action.
func (a Play) ActionType() string { return "locationmodal.play" }

// ToggleLike asks the app to flip the like state of a song.
type ToggleLike struct {
	SongID string
}

// ActionType implements action.Action.
func (a ToggleLike) ActionType() string { return "locationmodal.toggle_like" }

// Close signals the modal should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "locationmodal.close" }

// ActionMsg creates an action.Msg for a location modal action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "locationmodal", Action: a}
}
