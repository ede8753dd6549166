package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/errmsg"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui/action"
	"github.com/llehouerou/songdrop/internal/ui/confirm"
	"github.com/llehouerou/songdrop/internal/ui/droppage"
	"github.com/llehouerou/songdrop/internal/ui/helpbindings"
	"github.com/llehouerou/songdrop/internal/ui/locationmodal"
	"github.com/llehouerou/songdrop/internal/ui/textinput"
)

// dropDraft travels through the comment and confirmation popups of a drop.
type dropDraft struct {
	Song    catalog.Song
	Comment string
}

// handleAction dispatches actions emitted by UI components.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	slog.Debug("ui action", "source", msg.Source, "action", msg.Action.ActionType())

	switch a := msg.Action.(type) {
	case locationmodal.Play:
		m.Popups.HideLocation()
		cmd := m.play(a.Queue, a.Index)
		return m, cmd
	case locationmodal.ToggleLike:
		return m, toggleLikeCmd(m.Store, a.SongID)
	case locationmodal.Close:
		m.Popups.HideLocation()
		return m, nil

	case droppage.Play:
		cmd := m.play(a.Queue, a.Index)
		return m, cmd
	case droppage.Drop:
		return m.startDrop(a.Song)

	case textinput.Result:
		return m.handleTextInputResult(a)
	case confirm.Result:
		return m.handleConfirmResult(a)

	case helpbindings.Close:
		m.Popups.HideHelp()
		return m, nil
	}
	return m, nil
}

// play starts a queue and records the play of the chosen song.
func (m *Model) play(queue []catalog.Song, index int) tea.Cmd {
	if err := m.Player.Play(queue, index); err != nil {
		return m.notify(errmsg.Format(errmsg.OpPlaySong, err), true)
	}
	m.relayout()
	song, _ := m.Player.Song()
	slog.Debug("play", "song", song.ID, "queue", len(queue))
	return recordPlayCmd(m.Store, song.ID)
}

// startDrop asks for a comment before confirming a drop.
func (m Model) startDrop(song catalog.Song) (tea.Model, tea.Cmd) {
	if !m.hasNearby {
		cmd := m.notify(errmsg.FormatWith(errmsg.OpDrop, song.Title, errNoNearby), true)
		return m, cmd
	}
	m.Popups.ShowTextInput(
		icons.FormatComment("코멘트 남기기"),
		"이 노래와 함께 남길 한마디",
		dropDraft{Song: song},
	)
	return m, nil
}

func (m Model) handleTextInputResult(r textinput.Result) (tea.Model, tea.Cmd) {
	m.Popups.HideTextInput()
	draft, ok := r.Context.(dropDraft)
	if !ok || r.Canceled {
		return m, nil
	}
	draft.Comment = r.Text

	message := fmt.Sprintf("%s - %s\n%s", draft.Song.Title, draft.Song.Artist, icons.FormatDrop(m.nearby.Address))
	if draft.Comment != "" {
		message += "\n" + icons.FormatComment(draft.Comment)
	}
	m.Popups.ShowConfirm("여기에 드랍할까요?", message, "드랍", draft)
	return m, nil
}

func (m Model) handleConfirmResult(r confirm.Result) (tea.Model, tea.Cmd) {
	m.Popups.HideConfirm()
	draft, ok := r.Context.(dropDraft)
	if !ok || !r.Confirmed {
		return m, nil
	}
	return m, dropCmd(m.Store, draft.Song, m.nearby, draft.Comment)
}
