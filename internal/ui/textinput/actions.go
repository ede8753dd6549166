package textinput

import (
	"github.com/llehouerou/songdrop/internal/ui/action"
)

// Result is sent when the input is submitted or canceled.
type Result struct {
	Text     string
	Context  any  // passed through from Start
	Canceled bool // esc pressed
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "textinput.result" }

// ActionMsg creates an action.Msg for a textinput action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
