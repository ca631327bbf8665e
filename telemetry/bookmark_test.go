package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, want BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == want {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_KillSpree(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Lives: 3, RockKills: 2})
	}

	spree := WindowStats{WindowEndTick: 3000, Lives: 3, RockKills: 5, EnemyKills: 2}
	if !hasBookmark(bd.Check(spree), BookmarkKillSpree) {
		t.Error("expected kill_spree bookmark")
	}
}

func TestBookmarkDetector_KillSpreeNeedsHistory(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{Lives: 3, RockKills: 1})

	if hasBookmark(bd.Check(WindowStats{Lives: 3, RockKills: 20}), BookmarkKillSpree) {
		t.Error("kill_spree fired with only one window of history")
	}
}

func TestBookmarkDetector_EffectsSaturatedEdge(t *testing.T) {
	bd := NewBookmarkDetector(10)

	tests := []struct {
		dropped int
		want    bool
	}{
		{0, false},
		{4, true},
		{2, false}, // still saturated
		{0, false},
		{1, true},
	}
	for i, tt := range tests {
		got := hasBookmark(bd.Check(WindowStats{Lives: 3, EffectsDropped: tt.dropped}), BookmarkEffectsSaturated)
		if got != tt.want {
			t.Errorf("window %d (dropped %d): bookmark = %v, want %v", i, tt.dropped, got, tt.want)
		}
	}
}

func TestBookmarkDetector_FlawlessStretch(t *testing.T) {
	bd := NewBookmarkDetector(10)

	fired := 0
	for i := 0; i < 12; i++ {
		stats := WindowStats{WindowEndTick: int32(i * 600), Lives: 3}
		if i == 2 {
			stats.ShipHits = 1
		}
		bms := bd.Check(stats)
		if hasBookmark(bms, BookmarkFlawlessStretch) {
			fired++
			// Windows 3..7 are the first clean run of five.
			if i != 7 {
				t.Errorf("flawless_stretch at window %d, want 7", i)
			}
		}
	}
	if fired != 1 {
		t.Errorf("flawless_stretch fired %d times, want 1", fired)
	}
}

func TestBookmarkDetector_Reset(t *testing.T) {
	bd := NewBookmarkDetector(4)
	for i := 0; i < 4; i++ {
		bd.Check(WindowStats{Lives: 3, EffectsDropped: 1})
	}
	bd.Reset()

	if len(bd.getHistory()) != 0 {
		t.Errorf("history length = %d after Reset, want 0", len(bd.getHistory()))
	}
	if !hasBookmark(bd.Check(WindowStats{Lives: 3, EffectsDropped: 1}), BookmarkEffectsSaturated) {
		t.Error("saturation edge not re-armed by Reset")
	}
}
