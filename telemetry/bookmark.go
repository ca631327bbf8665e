package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkKillSpree        BookmarkType = "kill_spree"
	BookmarkEffectsSaturated BookmarkType = "effects_saturated"
	BookmarkFlawlessStretch  BookmarkType = "flawless_stretch"
)

// flawlessWindows is how many hit-free windows make a flawless stretch.
const flawlessWindows = 5

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector watches flushed windows for moments worth marking.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	lastDropped  int // effects dropped in the previous window
	cleanWindows int // consecutive windows without a ship hit
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	// Kill spree: kills > 2x rolling average
	if b := bd.checkKillSpree(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Effects saturated: the emitter pool started dropping requests
	if b := bd.checkEffectsSaturated(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Flawless stretch: several windows in play without losing a life
	if b := bd.checkFlawlessStretch(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

// Reset forgets all history, e.g. between rounds.
func (bd *BookmarkDetector) Reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.lastDropped = 0
	bd.cleanWindows = 0
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkKillSpree(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.RockKills + h.EnemyKills
	}
	avg := float64(total) / float64(len(history))
	kills := stats.RockKills + stats.EnemyKills
	if avg == 0 || kills < 3 {
		return nil
	}

	if float64(kills) > avg*2.0 {
		return &Bookmark{
			Type:        BookmarkKillSpree,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d kills is %.1fx average (%.1f)", kills, float64(kills)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkEffectsSaturated(stats WindowStats) *Bookmark {
	prev := bd.lastDropped
	bd.lastDropped = stats.EffectsDropped
	if stats.EffectsDropped == 0 || prev > 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkEffectsSaturated,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d effects dropped with %.0f emitters busy at peak", stats.EffectsDropped, stats.EmittersMax),
	}
}

func (bd *BookmarkDetector) checkFlawlessStretch(stats WindowStats) *Bookmark {
	if stats.ShipHits > 0 || stats.Lives <= 0 {
		bd.cleanWindows = 0
		return nil
	}
	bd.cleanWindows++

	if bd.cleanWindows == flawlessWindows { // trigger exactly once per stretch
		return &Bookmark{
			Type:        BookmarkFlawlessStretch,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No hits over %d windows, score %d", flawlessWindows, stats.Score),
		}
	}
	return nil
}
