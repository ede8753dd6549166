// Package handler provides the result type shared by key handlers and a way
// to try several of them in order.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a key handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled lets the next handler try the key.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func(key string) Result

// Chain offers key to each handler in turn and returns the first result that
// handled it, or NotHandled.
func Chain(key string, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return r
		}
	}
	return NotHandled
}
