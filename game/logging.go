package game

import (
	"log/slog"

	"github.com/pthm-cable/rockdodge/telemetry"
)

// logRoundSummary logs a finished round.
func (g *Game) logRoundSummary(r telemetry.RoundSummary) {
	slog.Info("round over",
		"round", r.Round,
		"tick", r.EndTick,
		"duration_sec", r.DurationSec,
		"score", r.Score,
		"best", g.scores.Best(),
		"rock_kills", r.RockKills,
		"enemy_kills", r.EnemyKills,
		"qualified", r.Qualified,
		"particles_released", g.particles.Released(),
		"effects_dropped", g.emitters.Dropped(),
	)
}

// logPoolState logs the particle pool occupancy. Used by the debug key.
func (g *Game) logPoolState() {
	p := g.particles.Pool()
	slog.Info("particle pool",
		"tick", g.tick,
		"busy", p.BusyLen(),
		"free", p.FreeLen(),
		"capacity", p.Cap(),
		"emitters_active", g.emitters.NumActive(),
	)
	if err := p.Validate(); err != nil {
		slog.Error("particle pool corrupt", "error", err)
	}
}
