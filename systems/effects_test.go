package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/rockdodge/config"
)

func testPresets(t *testing.T) map[string]EmitterConfig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return PresetsFromConfig(cfg.Effects)
}

func TestRockDebrisSpeed(t *testing.T) {
	tests := []struct {
		radius, maxRadius float32
		wantMax, wantMin  float64
	}{
		{40, 40, 125, 62},
		{10, 40, 50, 25},
		{20, 40, 75, 37},
		{5, 0, 25, 12},
	}

	for _, tt := range tests {
		gotMax, gotMin := RockDebrisSpeed(tt.radius, tt.maxRadius)
		if gotMax != tt.wantMax || gotMin != tt.wantMin {
			t.Errorf("RockDebrisSpeed(%v, %v) = (%v, %v), want (%v, %v)",
				tt.radius, tt.maxRadius, gotMax, gotMin, tt.wantMax, tt.wantMin)
		}
	}
}

func TestPresetsFromConfig(t *testing.T) {
	presets := testPresets(t)

	ship, ok := presets[PresetShipExplode]
	if !ok {
		t.Fatal("ship explosion preset missing")
	}
	if ship.Budget != 1000 || ship.PerBurst != 50 {
		t.Errorf("ship budget/burst = %d/%d, want 1000/50", ship.Budget, ship.PerBurst)
	}
	if ship.SpeedMin != 50 || ship.SpeedMax != 350 {
		t.Errorf("ship speed = [%v, %v], want [50, 350]", ship.SpeedMin, ship.SpeedMax)
	}
	if ship.ScaleMin != 0.5 || ship.ScaleMax != 0.75 {
		t.Errorf("ship scale = [%v, %v], want [0.5, 0.75]", ship.ScaleMin, ship.ScaleMax)
	}
	if len(presets) != 4 {
		t.Errorf("len(presets) = %d, want 4", len(presets))
	}
}

func TestEffectsClaimAndDrop(t *testing.T) {
	ep := NewEmitterPool(1)
	fx := NewEffects(ep, testPresets(t))

	pos := r2.Vec{X: 30, Y: 40}
	if !fx.BulletSplash(pos, r2.Vec{X: -150}) {
		t.Fatal("BulletSplash should claim the free emitter")
	}
	if fx.EnemySplash(pos) {
		t.Error("EnemySplash should drop when no emitter is free")
	}

	e := &ep.emitters[0]
	if e.Pos != pos || e.InitVel != (r2.Vec{X: -150}) {
		t.Errorf("emitter pos/vel = %v/%v, want %v/(-150,0)", e.Pos, e.InitVel, pos)
	}
	if e.Budget != 30 || e.PerBurst != 30 {
		t.Errorf("budget/burst = %d/%d, want 30/30", e.Budget, e.PerBurst)
	}
	if fx.Claimed() != 1 || ep.Dropped() != 1 {
		t.Errorf("Claimed()/Dropped() = %d/%d, want 1/1", fx.Claimed(), ep.Dropped())
	}
}

func TestEffectsRockExplodeScalesSpeed(t *testing.T) {
	ep := NewEmitterPool(1)
	fx := NewEffects(ep, testPresets(t))

	if !fx.RockExplode(r2.Vec{}, 40, 40) {
		t.Fatal("RockExplode did not claim")
	}
	e := &ep.emitters[0]
	if e.SpeedMax != 125 || e.SpeedMin != 62 {
		t.Errorf("speed = [%v, %v], want [62, 125]", e.SpeedMin, e.SpeedMax)
	}
}

func TestEffectsUnknownPreset(t *testing.T) {
	fx := NewEffects(NewEmitterPool(2), map[string]EmitterConfig{})
	if fx.ShipExplode(r2.Vec{}, r2.Vec{}) {
		t.Error("claimed an emitter for a missing preset")
	}
}
