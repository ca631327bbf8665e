package game

import (
	"log/slog"

	"github.com/pthm-cable/rockdodge/telemetry"
)

// sampleTelemetry records this tick's effect counters and step time. Only
// ticks inside a round are sampled.
func (g *Game) sampleTelemetry(dt float32) {
	claimed, dropped := g.effects.Claimed(), g.emitters.Dropped()
	g.collector.RecordEffects(claimed-g.lastClaimed, dropped-g.lastDropped)
	g.lastClaimed, g.lastDropped = claimed, dropped
	g.collector.SampleEffects(g.particles.Count(), g.emitters.NumActive())
	g.collector.RecordStep(dt)
}

// flushTelemetry flushes the stats window when it is full.
func (g *Game) flushTelemetry() {
	if g.collector.ShouldFlush(g.tick) {
		g.writeWindow()
	}
}

// writeWindow flushes the current stats window, full or not.
func (g *Game) writeWindow() {
	stats := g.collector.Flush(g.tick, g.snapshot())
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	bookmarks := g.bookmarks.Check(stats)
	for _, b := range bookmarks {
		b.LogBookmark()
	}
	if err := g.outputManager.WriteBookmarks(bookmarks); err != nil {
		slog.Error("failed to write bookmarks", "error", err)
	}
}

// snapshot samples the round state for a stats window.
func (g *Game) snapshot() telemetry.Snapshot {
	return telemetry.Snapshot{
		Score:         g.combat.Score(),
		Lives:         g.combat.Lives(),
		ActiveRocks:   g.countActive(g.rocks),
		ActiveEnemies: g.countActive(g.enemies),
		ActiveBullets: g.countActive(g.bullets),
	}
}
