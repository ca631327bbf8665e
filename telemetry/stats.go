package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated gameplay statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Round state at window end
	Score         int `csv:"score"`
	Lives         int `csv:"lives"`
	ActiveRocks   int `csv:"rocks"`
	ActiveEnemies int `csv:"enemies"`
	ActiveBullets int `csv:"bullets"`

	// Spawning
	RocksSpawned     int `csv:"rocks_spawned"`
	EnemiesSpawned   int `csv:"enemies_spawned"`
	PlacementSamples int `csv:"placement_samples"`
	PlacementFailed  int `csv:"placement_failed"`

	// Combat
	CollisionChecks int `csv:"collision_checks"`
	CollisionPairs  int `csv:"collision_pairs"`
	RockKills       int `csv:"rock_kills"`
	EnemyKills      int `csv:"enemy_kills"`
	ShipHits        int `csv:"ship_hits"`
	ShotsFired      int `csv:"shots_fired"`

	// Effects, sampled once per tick
	EffectsClaimed int     `csv:"effects_claimed"`
	EffectsDropped int     `csv:"effects_dropped"`
	ParticlesMean  float64 `csv:"particles_mean"`
	ParticlesStd   float64 `csv:"particles_std"`
	ParticlesP90   float64 `csv:"particles_p90"`
	ParticlesMax   float64 `csv:"particles_max"`
	EmittersMean   float64 `csv:"emitters_mean"`
	EmittersMax    float64 `csv:"emitters_max"`
}

// Summary describes a sampled series.
type Summary struct {
	Mean, Std, P90, Max float64
}

// Summarize computes mean, sample standard deviation, 90th percentile and
// maximum. Fewer than two samples give a zero deviation.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var s Summary
	if len(sorted) < 2 {
		s.Mean = sorted[0]
	} else {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	s.Max = floats.Max(sorted)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", s.Score),
		slog.Int("lives", s.Lives),
		slog.Int("rocks", s.ActiveRocks),
		slog.Int("enemies", s.ActiveEnemies),
		slog.Int("bullets", s.ActiveBullets),
		slog.Int("rocks_spawned", s.RocksSpawned),
		slog.Int("enemies_spawned", s.EnemiesSpawned),
		slog.Int("placement_samples", s.PlacementSamples),
		slog.Int("placement_failed", s.PlacementFailed),
		slog.Int("collision_checks", s.CollisionChecks),
		slog.Int("collision_pairs", s.CollisionPairs),
		slog.Int("rock_kills", s.RockKills),
		slog.Int("enemy_kills", s.EnemyKills),
		slog.Int("ship_hits", s.ShipHits),
		slog.Int("shots_fired", s.ShotsFired),
		slog.Int("effects_claimed", s.EffectsClaimed),
		slog.Int("effects_dropped", s.EffectsDropped),
		slog.Float64("particles_mean", s.ParticlesMean),
		slog.Float64("particles_std", s.ParticlesStd),
		slog.Float64("particles_p90", s.ParticlesP90),
		slog.Float64("particles_max", s.ParticlesMax),
		slog.Float64("emitters_mean", s.EmittersMean),
		slog.Float64("emitters_max", s.EmittersMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
