package helpbindings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/ui/action"
	"github.com/llehouerou/songdrop/internal/ui/testutil"
)

var allContexts = []string{"global", "player", "map", "carousel", "dial", "modal", "drop", "drop-tags", "drop-results"}

func newTestHelpPopup(contexts []string) (*Model, *testutil.PopupHarness) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(60, 20)
	return &m, testutil.NewPopupHarness(&m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	actionMsg, ok := h.LastMsg().(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", h.LastMsg())
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"?", "q"} {
		_, h := newTestHelpPopup([]string{"global"})
		h.SendKey(key)
		assertClosed(t, h)
	}
	_, h := newTestHelpPopup([]string{"global"})
	h.SendEscape()
	assertClosed(t, h)
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(allContexts)
	if m.maxScroll() == 0 {
		t.Fatal("expected scrollable content for all contexts")
	}

	h.SendKey("j")
	h.SendKey("j")
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}

	h.SendKey("k")
	if m.scrollOffset != 1 {
		t.Errorf("scrollOffset = %d, want 1", m.scrollOffset)
	}

	h.SendMsg(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset after wheel = %d, want 2", m.scrollOffset)
	}
}

func TestHelpBindings_ScrollClamped(t *testing.T) {
	m, h := newTestHelpPopup(allContexts)

	h.SendKey("k")
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0 at top", m.scrollOffset)
	}

	for range 500 {
		h.SendKey("j")
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset = %d, want max %d", m.scrollOffset, m.maxScroll())
	}
}

func TestHelpBindings_ShortContentDoesNotScroll(t *testing.T) {
	m, h := newTestHelpPopup([]string{"drop"})
	h.SendKey("j")
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", m.scrollOffset)
	}
	if strings.Contains(h.View(), "scroll") {
		t.Error("footer mentions scrolling for short content")
	}
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newTestHelpPopup([]string{"global", "player"})
	view := h.View()

	for _, want := range []string{"Help", "Global", "Player", "Quit application", "space", "close"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Nearby Songs") {
		t.Error("view shows a context that was not requested")
	}
}

func TestHelpBindings_ViewHeight(t *testing.T) {
	_, h := newTestHelpPopup(allContexts)
	if got := len(strings.Split(h.View(), "\n")); got != 20 {
		t.Errorf("view height = %d, want 20", got)
	}
}

func TestHelpBindings_ZeroSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})
	if m.View() != "" {
		t.Error("expected empty view before sizing")
	}
}
