package confirm

import (
	"github.com/llehouerou/songdrop/internal/ui/action"
)

// Result reports how the confirmation was answered.
type Result struct {
	Confirmed bool
	Context   any
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg creates an action.Msg for a confirm action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
