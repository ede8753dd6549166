package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
// Every glyph is a single cell wide so map and dial canvases stay aligned.
type Icons struct {
	Music    string
	Marker   string
	Here     string
	Liked    string
	Unliked  string
	Play     string
	Pause    string
	Prev     string
	Next     string
	User     string
	Drop     string
	Comment  string
	Compass  string
	Activity string
}

var (
	nerdIcons = Icons{
		Music:    "", // nf-fa-music
		Marker:   "", // nf-fa-map_marker
		Here:     "", // nf-fa-location_arrow
		Liked:    "", // nf-fa-heart
		Unliked:  "", // nf-fa-heart_o
		Play:     "", // nf-fa-play
		Pause:    "", // nf-fa-pause
		Prev:     "", // nf-fa-step_backward
		Next:     "", // nf-fa-step_forward
		User:     "", // nf-fa-user
		Drop:     "", // nf-fa-plus
		Comment:  "", // nf-fa-comment
		Compass:  "", // nf-fa-compass
		Activity: "", // nf-fa-clock_o
	}

	unicodeIcons = Icons{
		Music:    "♫",
		Marker:   "◆",
		Here:     "◉",
		Liked:    "♥",
		Unliked:  "♡",
		Play:     "▶",
		Pause:    "‖",
		Prev:     "«",
		Next:     "»",
		User:     "☺",
		Drop:     "+",
		Comment:  "»",
		Compass:  "✦",
		Activity: "•",
	}

	noneIcons = Icons{
		Music:    "#",
		Marker:   "@",
		Here:     "o",
		Liked:    "*",
		Unliked:  ".",
		Play:     ">",
		Pause:    "=",
		Prev:     "<<",
		Next:     ">>",
		User:     "",
		Drop:     "+",
		Comment:  "\"",
		Compass:  "N",
		Activity: "-",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Music returns the glyph drawn for a single-song marker.
func Music() string {
	return current.Music
}

// Marker returns the location marker glyph.
func Marker() string {
	return current.Marker
}

// Here returns the current position indicator.
func Here() string {
	return current.Here
}

// Like returns the heart icon matching the liked state.
func Like(liked bool) string {
	if liked {
		return current.Liked
	}
	return current.Unliked
}

// PlayPause returns the icon for the action that toggles playback: pause
// while playing, play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

func Prev() string {
	return current.Prev
}

func Next() string {
	return current.Next
}

func Compass() string {
	return current.Compass
}

func Activity() string {
	return current.Activity
}

// FormatSong formats a song title with the music icon.
func FormatSong(title string) string {
	if current == noneIcons {
		return title
	}
	return current.Music + " " + title
}

// FormatUser formats a username with the user icon.
func FormatUser(name string) string {
	if current.User == "" {
		return name
	}
	return current.User + " " + name
}

// FormatComment prefixes a dropper's comment.
func FormatComment(comment string) string {
	return current.Comment + " " + comment
}

// FormatDrop labels the drop action.
func FormatDrop(label string) string {
	return current.Drop + " " + label
}
