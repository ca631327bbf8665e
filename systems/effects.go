package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/config"
)

// Preset names used by gameplay events.
const (
	PresetEnemySplash  = "enemy_splash"
	PresetBulletSplash = "bullet_splash"
	PresetRockExplode  = "rock_explode"
	PresetShipExplode  = "ship_explode"
)

// EmitterConfigFromPreset converts one configured preset. Position and
// initial velocity are left for the caller.
func EmitterConfigFromPreset(p config.EffectConfig) EmitterConfig {
	return EmitterConfig{
		Tint:     components.TintFromRGBA(p.Color),
		ScaleMin: float32(p.ScaleMin),
		ScaleMax: float32(p.ScaleMax),
		SpeedMin: p.SpeedMin,
		SpeedMax: p.SpeedMax,
		Rate:     float32(p.Rate),
		Life:     float32(p.Life),
		Budget:   p.Budget,
		PerBurst: p.PerBurst,
	}
}

// PresetsFromConfig builds the named preset table.
func PresetsFromConfig(cfg config.EffectsConfig) map[string]EmitterConfig {
	return map[string]EmitterConfig{
		PresetEnemySplash:  EmitterConfigFromPreset(cfg.EnemySplash),
		PresetBulletSplash: EmitterConfigFromPreset(cfg.BulletSplash),
		PresetRockExplode:  EmitterConfigFromPreset(cfg.RockExplode),
		PresetShipExplode:  EmitterConfigFromPreset(cfg.ShipExplode),
	}
}

// Effects claims emitters for gameplay events. Every method drops the
// effect silently when no emitter is free and reports whether one was claimed.
type Effects struct {
	emitters *EmitterPool
	presets  map[string]EmitterConfig
	claimed  int
}

// NewEffects creates an effects helper over an emitter pool.
func NewEffects(emitters *EmitterPool, presets map[string]EmitterConfig) *Effects {
	return &Effects{emitters: emitters, presets: presets}
}

func (fx *Effects) claim(name string, pos, initVel r2.Vec, adjust func(*EmitterConfig)) bool {
	cfg, ok := fx.presets[name]
	if !ok {
		return false
	}
	cfg.Pos = pos
	cfg.InitVel = initVel
	if adjust != nil {
		adjust(&cfg)
	}
	if fx.emitters.Claim(cfg) == nil {
		return false
	}
	fx.claimed++
	return true
}

// Claimed returns how many effects found an emitter.
func (fx *Effects) Claimed() int {
	return fx.claimed
}

// EnemySplash bursts where an enemy died.
func (fx *Effects) EnemySplash(pos r2.Vec) bool {
	return fx.claim(PresetEnemySplash, pos, r2.Vec{}, nil)
}

// BulletSplash bursts where a bullet hit, drifting with initVel.
func (fx *Effects) BulletSplash(pos, initVel r2.Vec) bool {
	return fx.claim(PresetBulletSplash, pos, initVel, nil)
}

// RockExplode bursts where a rock was destroyed. Bigger rocks throw debris
// faster: the top speed grows with radius/maxRadius and the bottom is half of it.
func (fx *Effects) RockExplode(pos r2.Vec, radius, maxRadius float32) bool {
	return fx.claim(PresetRockExplode, pos, r2.Vec{}, func(cfg *EmitterConfig) {
		cfg.SpeedMax, cfg.SpeedMin = RockDebrisSpeed(radius, maxRadius)
	})
}

// RockDebrisSpeed returns the (max, min) debris speed for a rock of radius.
func RockDebrisSpeed(radius, maxRadius float32) (float64, float64) {
	size := 0.0
	if maxRadius > 0 {
		size = float64(radius/maxRadius) * 2
	}
	top := 25 + math.Floor(50*size)
	return top, math.Floor(top * 0.5)
}

// ShipExplode bursts where the ship was hit.
func (fx *Effects) ShipExplode(pos, initVel r2.Vec) bool {
	return fx.claim(PresetShipExplode, pos, initVel, nil)
}
