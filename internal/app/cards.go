package app

import (
	"strings"

	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/ui/render"
	"github.com/llehouerou/songdrop/internal/ui/styles"
)

// songCard renders one nearby song for the carousel.
func songCard(song catalog.Song, width int) string {
	s := styles.T().S()
	inner := max(width-2, 1)
	line := func(text string) string {
		return " " + render.Truncate(text, inner)
	}

	stats := icons.Like(song.Liked) + " " + catalog.CompactCount(song.Likes) +
		"  " + icons.PlayPause(false) + " " + catalog.CompactCount(song.Plays)

	likeStyle := s.Muted
	if song.Liked {
		likeStyle = s.Liked
	}

	return strings.Join([]string{
		s.Title.Render(line(icons.FormatSong(song.Title))),
		s.Base.Render(line(song.Artist)),
		s.Subtle.Render(line(icons.FormatUser("@"+song.DroppedBy))),
		likeStyle.Render(line(stats)),
		s.Muted.Render(line(catalog.FormatDuration(song.Duration))),
	}, "\n")
}
