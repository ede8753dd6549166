package catalog

import "fmt"

var levelTitles = []string{"루키 DJ", "로컬 DJ", "스페셜 DJ", "마스터 DJ"}

// LevelTitle names a DJ level. Levels past the last title keep it.
func LevelTitle(level int) string {
	i := min(max(level, 1), len(levelTitles)) - 1
	return levelTitles[i]
}

// LevelBadge is the short label shown next to a user ("L.3 스페셜 DJ").
func LevelBadge(level int) string {
	return fmt.Sprintf("L.%d %s", level, LevelTitle(level))
}

// levelThreshold is the number of drops a level starts at: 0, 2, 6, 14, ...
func levelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	return 1<<level - 2
}

// LevelProgress reports how many more drops reach the next level and the
// fraction of the current level already covered.
func LevelProgress(level, dropped int) (remaining int, ratio float64) {
	level = max(level, 1)
	lo, hi := levelThreshold(level), levelThreshold(level+1)
	remaining = max(hi-dropped, 0)
	ratio = float64(dropped-lo) / float64(hi-lo)
	return remaining, min(max(ratio, 0), 1)
}
