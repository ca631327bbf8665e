package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/rockdodge/components"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []float64{7}, Summary{Mean: 7, P90: 7, Max: 7}},
		{"one to ten", []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}, Summary{Mean: 5.5, Std: 3.0277, P90: 9, Max: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if !approx(got.Mean, tt.want.Mean) || !approx(got.Std, tt.want.Std) ||
				!approx(got.P90, tt.want.P90) || !approx(got.Max, tt.want.Max) {
				t.Errorf("Summarize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarizeLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 {
		t.Errorf("input reordered: %v", values)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1, 0.1)
	if c.WindowDurationTicks() != 10 {
		t.Fatalf("WindowDurationTicks() = %d, want 10", c.WindowDurationTicks())
	}

	c.RecordSpawn(components.KindRock)
	c.RecordSpawn(components.KindRock)
	c.RecordSpawn(components.KindEnemy)
	c.RecordSpawn(components.KindBullet)
	c.RecordPlacement(7, 1)
	c.RecordCollisions(20, 2)
	c.RecordKills(1, 1)
	c.RecordShipHit()
	c.RecordShot()
	c.RecordShot()
	c.RecordEffects(3, 1)
	c.SampleEffects(100, 2)
	c.SampleEffects(300, 4)
	for i := 0; i < 10; i++ {
		c.RecordStep(0.1)
	}

	if c.ShouldFlush(9) {
		t.Error("ShouldFlush(9) = true before the window is full")
	}
	if !c.ShouldFlush(10) {
		t.Fatal("ShouldFlush(10) = false")
	}

	s := c.Flush(10, Snapshot{Score: 60, Lives: 2, ActiveRocks: 4})

	checks := []struct {
		name      string
		got, want int
	}{
		{"RocksSpawned", s.RocksSpawned, 2},
		{"EnemiesSpawned", s.EnemiesSpawned, 1},
		{"PlacementSamples", s.PlacementSamples, 7},
		{"PlacementFailed", s.PlacementFailed, 1},
		{"CollisionChecks", s.CollisionChecks, 20},
		{"CollisionPairs", s.CollisionPairs, 2},
		{"RockKills", s.RockKills, 1},
		{"EnemyKills", s.EnemyKills, 1},
		{"ShipHits", s.ShipHits, 1},
		{"ShotsFired", s.ShotsFired, 2},
		{"EffectsClaimed", s.EffectsClaimed, 3},
		{"EffectsDropped", s.EffectsDropped, 1},
		{"Score", s.Score, 60},
		{"ActiveRocks", s.ActiveRocks, 4},
	}
	for _, ck := range checks {
		if ck.got != ck.want {
			t.Errorf("%s = %d, want %d", ck.name, ck.got, ck.want)
		}
	}
	if s.ParticlesMean != 200 || s.ParticlesMax != 300 || s.EmittersMax != 4 {
		t.Errorf("particles mean/max = %v/%v emitters max = %v", s.ParticlesMean, s.ParticlesMax, s.EmittersMax)
	}
	if !approx(s.SimTimeSec, 1) {
		t.Errorf("SimTimeSec = %v, want 1", s.SimTimeSec)
	}

	next := c.Flush(20, Snapshot{})
	if next.WindowStartTick != 10 || next.RocksSpawned != 0 || next.ParticlesMax != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestCollectorSimTimeFollowsSteps(t *testing.T) {
	c := NewCollector(1, 0.1)

	// Uneven frame times, and ticks that were never stepped, do not count.
	for _, dt := range []float32{0.05, 0.2, 0.15} {
		c.RecordStep(dt)
	}
	s := c.Flush(500, Snapshot{})
	if !approx(s.SimTimeSec, 0.4) {
		t.Errorf("SimTimeSec = %v, want 0.4", s.SimTimeSec)
	}

	c.RecordStep(0.1)
	if s := c.Flush(600, Snapshot{}); !approx(s.SimTimeSec, 0.5) {
		t.Errorf("SimTimeSec = %v after another step, want 0.5", s.SimTimeSec)
	}
}

func TestCollectorRestartDropsPartialWindow(t *testing.T) {
	c := NewCollector(1, 0.1)
	c.RecordShipHit()
	c.SampleEffects(50, 1)
	if !c.Pending() || c.Samples() != 1 {
		t.Fatalf("Pending()/Samples() = %v/%d, want true/1", c.Pending(), c.Samples())
	}

	c.Restart(100)
	if c.Pending() || c.Samples() != 0 {
		t.Errorf("Pending()/Samples() = %v/%d after Restart, want false/0", c.Pending(), c.Samples())
	}
	if c.ShouldFlush(109) || !c.ShouldFlush(110) {
		t.Error("window not restarted at tick 100")
	}
	if s := c.Flush(110, Snapshot{}); s.WindowStartTick != 100 || s.ShipHits != 0 {
		t.Errorf("window start/hits = %d/%d, want 100/0", s.WindowStartTick, s.ShipHits)
	}
}
