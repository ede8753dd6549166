package catalog

import "testing"

func TestLevelBadge(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "L.0 루키 DJ"},
		{1, "L.1 루키 DJ"},
		{3, "L.3 스페셜 DJ"},
		{9, "L.9 마스터 DJ"},
	}
	for _, tt := range tests {
		if got := LevelBadge(tt.level); got != tt.want {
			t.Errorf("LevelBadge(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		name          string
		level         int
		dropped       int
		wantRemaining int
		wantRatio     float64
	}{
		{"sample user", 3, 12, 2, 0.75},
		{"level start", 3, 6, 8, 0},
		{"beyond next threshold", 3, 20, 0, 1},
		{"first level", 1, 1, 1, 0.5},
		{"fewer drops than level start", 4, 3, 27, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, ratio := LevelProgress(tt.level, tt.dropped)
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %d, want %d", remaining, tt.wantRemaining)
			}
			if ratio != tt.wantRatio {
				t.Errorf("ratio = %v, want %v", ratio, tt.wantRatio)
			}
		})
	}
}
