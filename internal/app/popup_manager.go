package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/ui/confirm"
	"github.com/llehouerou/songdrop/internal/ui/helpbindings"
	"github.com/llehouerou/songdrop/internal/ui/layout"
	"github.com/llehouerou/songdrop/internal/ui/locationmodal"
	"github.com/llehouerou/songdrop/internal/ui/popup"
	"github.com/llehouerou/songdrop/internal/ui/textinput"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupLocation
	PopupHelp
	PopupTextInput
	PopupConfirm
)

// Largest outer size of each popup.
const (
	locationMaxWidth, locationMaxHeight = 64, 26
	helpMaxWidth, helpMaxHeight         = 60, 32
	inputMaxWidth, inputMaxHeight       = 54, 9
	confirmMaxWidth, confirmMaxHeight   = 48, 11
)

// PopupManager manages all modal popups. Several can be open at once; the
// one with the highest priority receives input and is drawn on top.
type PopupManager struct {
	help         helpbindings.Model
	showHelp     bool
	confirm      confirm.Model
	textInput    textinput.Model
	showInput    bool
	location     locationmodal.Model
	showLocation bool

	width  int
	height int
}

// NewPopupManager creates a new PopupManager with initialized components.
func NewPopupManager(location locationmodal.Model) PopupManager {
	return PopupManager{
		help:      helpbindings.New(),
		confirm:   confirm.New(),
		textInput: textinput.New(),
		location:  location,
	}
}

// SetSize updates the screen size and resizes open popups.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.location.SetSize(p.innerSize(locationMaxWidth, locationMaxHeight))
	p.help.SetSize(p.innerSize(helpMaxWidth, helpMaxHeight))
	p.textInput.SetSize(p.innerSize(inputMaxWidth, inputMaxHeight))
	p.confirm.SetSize(p.innerSize(confirmMaxWidth, confirmMaxHeight))
}

func (p *PopupManager) innerSize(maxWidth, maxHeight int) (width, height int) {
	return popup.InnerSize(layout.PopupSize(p.width, p.height, maxWidth, maxHeight))
}

// ActivePopup returns which popup is currently active (if any).
func (p *PopupManager) ActivePopup() PopupType {
	switch {
	case p.confirm.Active():
		return PopupConfirm
	case p.showInput:
		return PopupTextInput
	case p.showHelp:
		return PopupHelp
	case p.showLocation:
		return PopupLocation
	}
	return PopupNone
}

// current returns the active popup component.
func (p *PopupManager) current() popup.Popup {
	switch p.ActivePopup() {
	case PopupConfirm:
		return &p.confirm
	case PopupTextInput:
		return &p.textInput
	case PopupHelp:
		return &p.help
	case PopupLocation:
		return &p.location
	case PopupNone:
	}
	return nil
}

// Update forwards a message to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	c := p.current()
	if c == nil {
		return nil
	}
	_, cmd := c.Update(msg)
	return cmd
}

// Box frames the active popup and centers it on screen.
func (p *PopupManager) Box() (popup.Box, bool) {
	c := p.current()
	if c == nil {
		return popup.Box{}, false
	}
	var innerWidth int
	switch p.ActivePopup() {
	case PopupConfirm:
		innerWidth = p.confirm.Width()
	case PopupTextInput:
		innerWidth = p.textInput.Width()
	case PopupHelp:
		innerWidth = p.help.Width()
	case PopupLocation:
		innerWidth = p.location.Width()
	case PopupNone:
	}
	return popup.Frame(c.View(), innerWidth, popup.DefaultStyle(), p.width, p.height), true
}

// Render draws the active popup over base.
func (p *PopupManager) Render(base string) string {
	box, ok := p.Box()
	if !ok {
		return base
	}
	return box.Over(base, p.width)
}

// --- Help Popup ---

// ShowHelp displays the help popup with the given contexts.
func (p *PopupManager) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.showHelp = true
}

// HideHelp hides the help popup.
func (p *PopupManager) HideHelp() {
	p.showHelp = false
}

// --- Confirm Popup ---

// ShowConfirm displays a confirmation dialog.
func (p *PopupManager) ShowConfirm(title, message, yes string, context any) {
	p.confirm.Show(title, message, yes, context)
}

// HideConfirm hides the confirmation popup.
func (p *PopupManager) HideConfirm() {
	p.confirm.Reset()
}

// --- Text Input Popup ---

// ShowTextInput displays a text input popup.
func (p *PopupManager) ShowTextInput(title, placeholder string, context any) {
	p.textInput.SetPlaceholder(placeholder)
	w, h := p.innerSize(inputMaxWidth, inputMaxHeight)
	p.textInput.Start(title, "", context, w, h)
	p.showInput = true
}

// HideTextInput hides the text input popup.
func (p *PopupManager) HideTextInput() {
	p.textInput.Reset()
	p.showInput = false
}

// --- Location Popup ---

// ShowLocation opens the song list of a location.
func (p *PopupManager) ShowLocation(loc catalog.Location) {
	p.location.SetLocation(loc)
	p.showLocation = true
}

// HideLocation closes the location popup.
func (p *PopupManager) HideLocation() {
	p.showLocation = false
}

// LocationVisible reports whether the location popup is open, even if
// another popup is drawn over it.
func (p *PopupManager) LocationVisible() bool {
	return p.showLocation
}

// Location returns the location popup model for direct access.
func (p *PopupManager) Location() *locationmodal.Model {
	return &p.location
}
