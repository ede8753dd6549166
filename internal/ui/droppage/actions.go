package droppage

import (
	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/action"
)

// Play asks the app to play a search result.
type Play struct {
	Queue []catalog.Song
	Index int
}

// ActionType implements action.Action.
func (a Play) ActionType() string { return "droppage.play" }

// Drop asks the app to drop a song at the nearby location. The app is
// expected to confirm before writing anything.
type Drop struct {
	Song catalog.Song
}

// ActionType implements action.Action.
func (a Drop) ActionType() string { return "droppage.drop" }

// ActionMsg creates an action.Msg for a drop page action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "droppage", Action: a}
}
