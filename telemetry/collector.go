package telemetry

import (
	"math"

	"github.com/pthm-cable/rockdodge/components"
)

// Snapshot is the round state sampled when a window is flushed.
type Snapshot struct {
	Score         int
	Lives         int
	ActiveRocks   int
	ActiveEnemies int
	ActiveBullets int
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32

	windowStartTick int32
	simTime         float64 // Seconds actually simulated, summed from the dt of each step

	// Event counters for current window
	rocksSpawned     int
	enemiesSpawned   int
	placementSamples int
	placementFailed  int
	collisionChecks  int
	collisionPairs   int
	rockKills        int
	enemyKills       int
	shipHits         int
	shotsFired       int
	effectsClaimed   int
	effectsDropped   int

	// Per-tick samples, reused across windows
	particles []float64
	emitters  []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: nominal seconds per tick, used to size the window in ticks
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationTicks: ticksPerWindow,
		particles:           make([]float64, 0, ticksPerWindow),
		emitters:            make([]float64, 0, ticksPerWindow),
	}
}

// RecordSpawn records an entity entering the field.
func (c *Collector) RecordSpawn(kind components.Kind) {
	switch kind {
	case components.KindRock:
		c.rocksSpawned++
	case components.KindEnemy:
		c.enemiesSpawned++
	}
}

// RecordPlacement adds placement counters from one tick.
func (c *Collector) RecordPlacement(samples, failed int) {
	c.placementSamples += samples
	c.placementFailed += failed
}

// RecordCollisions adds the counters of one collision pass.
func (c *Collector) RecordCollisions(checks, pairs int) {
	c.collisionChecks += checks
	c.collisionPairs += pairs
}

// RecordKills adds destroyed rocks and enemies.
func (c *Collector) RecordKills(rocks, enemies int) {
	c.rockKills += rocks
	c.enemyKills += enemies
}

// RecordShipHit records the ship losing a life.
func (c *Collector) RecordShipHit() {
	c.shipHits++
}

// RecordShot records a bullet being fired.
func (c *Collector) RecordShot() {
	c.shotsFired++
}

// RecordEffects adds emitter claims and drops.
func (c *Collector) RecordEffects(claimed, dropped int) {
	c.effectsClaimed += claimed
	c.effectsDropped += dropped
}

// SampleEffects records the busy particle and active emitter counts for one tick.
func (c *Collector) SampleEffects(particles, emitters int) {
	c.particles = append(c.particles, float64(particles))
	c.emitters = append(c.emitters, float64(emitters))
}

// RecordStep adds one simulated step of dt seconds.
func (c *Collector) RecordStep(dt float32) {
	c.simTime += float64(dt)
}

// Samples returns the number of per-tick samples in the current window.
func (c *Collector) Samples() int {
	return len(c.particles)
}

// Pending reports whether the current window holds any samples.
func (c *Collector) Pending() bool {
	return len(c.particles) > 0
}

// Restart discards the current window and starts a new one at tick.
func (c *Collector) Restart(tick int32) {
	c.reset(tick)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, snap Snapshot) WindowStats {
	particles := Summarize(c.particles)
	emitters := Summarize(c.emitters)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.simTime,

		Score:         snap.Score,
		Lives:         snap.Lives,
		ActiveRocks:   snap.ActiveRocks,
		ActiveEnemies: snap.ActiveEnemies,
		ActiveBullets: snap.ActiveBullets,

		RocksSpawned:     c.rocksSpawned,
		EnemiesSpawned:   c.enemiesSpawned,
		PlacementSamples: c.placementSamples,
		PlacementFailed:  c.placementFailed,

		CollisionChecks: c.collisionChecks,
		CollisionPairs:  c.collisionPairs,
		RockKills:       c.rockKills,
		EnemyKills:      c.enemyKills,
		ShipHits:        c.shipHits,
		ShotsFired:      c.shotsFired,

		EffectsClaimed: c.effectsClaimed,
		EffectsDropped: c.effectsDropped,
		ParticlesMean:  particles.Mean,
		ParticlesStd:   particles.Std,
		ParticlesP90:   particles.P90,
		ParticlesMax:   particles.Max,
		EmittersMean:   emitters.Mean,
		EmittersMax:    emitters.Max,
	}

	c.reset(currentTick)
	return stats
}

func (c *Collector) reset(tick int32) {
	c.windowStartTick = tick
	c.rocksSpawned = 0
	c.enemiesSpawned = 0
	c.placementSamples = 0
	c.placementFailed = 0
	c.collisionChecks = 0
	c.collisionPairs = 0
	c.rockKills = 0
	c.enemyKills = 0
	c.shipHits = 0
	c.shotsFired = 0
	c.effectsClaimed = 0
	c.effectsDropped = 0
	c.particles = c.particles[:0]
	c.emitters = c.emitters[:0]
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
