package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/config"
	"github.com/llehouerou/songdrop/internal/keymap"
	"github.com/llehouerou/songdrop/internal/player"
	"github.com/llehouerou/songdrop/internal/store"
	"github.com/llehouerou/songdrop/internal/ui/carousel"
	"github.com/llehouerou/songdrop/internal/ui/dial"
	"github.com/llehouerou/songdrop/internal/ui/droppage"
	"github.com/llehouerou/songdrop/internal/ui/locationmodal"
	"github.com/llehouerou/songdrop/internal/ui/mapview"
	"github.com/llehouerou/songdrop/internal/ui/navbar"
	"github.com/llehouerou/songdrop/internal/ui/profile"
)

// Focus is the part of the map page receiving keys.
type Focus int

const (
	FocusStrip Focus = iota // nearby songs carousel, or the dial when shown
	FocusMap
)

// hereLabel names the area around the configured position on the map.
const hereLabel = "강남구 역삼동"

// notice is the status line shown above the navigation bar.
type notice struct {
	text    string
	isError bool
	version int
}

// Model is the root model of the application.
type Model struct {
	Store  store.Interface
	Player player.Interface

	cfg      *config.Config
	now      func() time.Time
	position catalog.Position
	keys     *keymap.Resolver // global and player bindings
	dialKeys *keymap.Resolver // the dial toggle, in every map page context

	page     navbar.Page
	focus    Focus
	showDial bool

	mapView  mapview.Model
	carousel carousel.Model[catalog.Song]
	dial     dial.Model
	dropPage droppage.Model
	profile  profile.Model
	Popups   PopupManager

	locations []catalog.Location
	nearby    catalog.Location
	hasNearby bool
	user      catalog.User

	notice  notice
	capture captureTarget

	width  int
	height int
}

// New creates the root model. now is the clock used for relative times.
func New(cfg *config.Config, s store.Interface, p player.Interface, now func() time.Time) Model {
	cc := cfg.GetCarouselConfig()
	pos := cfg.GetPosition()

	strip := carousel.New[catalog.Song](carousel.Options{
		PageSize:  cc.PageSize,
		Gain:      cc.DragGain,
		Slop:      cc.TapThreshold,
		Settle:    cc.SettleDuration(),
		Title:     "내 주변 노래",
		Counter:   func(n int) string { return fmt.Sprintf("%d곡", n) },
		EmptyText: "근처에 드랍된 노래가 없어요",
	})

	m := Model{
		Store:    s,
		Player:   p,
		cfg:      cfg,
		now:      now,
		position: catalog.Position{Lat: pos.Lat, Lng: pos.Lng},
		keys:     keymap.ForContexts("global", "player"),
		dialKeys: keymap.ForContexts("map", "carousel", "dial"),
		page:     navbar.PageMap,
		focus:    FocusStrip,
		mapView: mapview.New(mapview.Options{
			Slop:   cc.TapThreshold,
			Settle: cc.SettleDuration(),
			Here:   hereLabel,
		}),
		carousel: strip,
		dial: dial.New(dial.Options{
			Radius: cfg.GetDialConfig().Radius,
			Slop:   cc.TapThreshold,
		}),
		dropPage: droppage.New(),
		profile:  profile.New(now),
		Popups:   NewPopupManager(locationmodal.New(now)),
	}
	m.applyFocus()
	return m
}

// Init loads the data and starts the playback clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadLocationsCmd(m.Store),
		loadProfileCmd(m.Store),
		loadDropDataCmd(m.Store),
		TickCmd(),
	)
}

// Page returns the page being shown.
func (m Model) Page() navbar.Page {
	return m.page
}

// Focus returns which part of the map page receives keys.
func (m Model) Focus() Focus {
	return m.focus
}

// DialVisible reports whether the dial replaces the map page.
func (m Model) DialVisible() bool {
	return m.showDial
}

// Nearby returns the location closest to the configured position.
func (m Model) Nearby() (catalog.Location, bool) {
	return m.nearby, m.hasNearby
}

// Notice returns the status line text and whether it reports an error.
func (m Model) Notice() (string, bool) {
	return m.notice.text, m.notice.isError
}

// setPage switches pages. The location popup belongs to the map page.
func (m *Model) setPage(p navbar.Page) {
	if p == m.page {
		return
	}
	m.page = p
	m.releaseCapture()
	if p != navbar.PageMap {
		m.Popups.HideLocation()
	}
	m.applyFocus()
}

func (m *Model) toggleFocus() {
	if m.focus == FocusMap {
		m.focus = FocusStrip
	} else {
		m.focus = FocusMap
	}
	m.applyFocus()
}

func (m *Model) toggleDial() {
	m.showDial = !m.showDial
	m.releaseCapture()
	if m.showDial {
		m.focus = FocusStrip
	}
	m.applyFocus()
}

// applyFocus gives keyboard focus to exactly one component.
func (m *Model) applyFocus() {
	onMap := m.page == navbar.PageMap
	m.mapView.SetFocused(onMap && !m.showDial && m.focus == FocusMap)
	m.carousel.SetFocused(onMap && !m.showDial && m.focus == FocusStrip)
	m.dial.SetFocused(onMap && m.showDial)
	m.dropPage.SetFocused(m.page == navbar.PageDrop)
	m.profile.SetFocused(m.page == navbar.PageProfile)
}

// helpContexts lists the binding groups relevant to the current page.
func (m Model) helpContexts() []string {
	contexts := []string{"global", "player"}
	switch m.page {
	case navbar.PageMap:
		if m.showDial {
			return append(contexts, "dial")
		}
		return append(contexts, "map", "carousel")
	case navbar.PageDrop:
		return append(contexts, "drop", "drop-tags", "drop-results")
	case navbar.PageProfile:
	}
	return contexts
}
