package game

import (
	"log/slog"

	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/systems"
	"github.com/pthm-cable/rockdodge/telemetry"
)

// step advances the game by dt seconds.
func (g *Game) step(dt float32, in systems.ShipInput) {
	g.perfCollector.StartTick()
	g.modeTime += dt

	if g.mode == ModePlaying {
		g.simulationStep(dt, in)
	} else {
		// Explosions keep playing behind the menus.
		g.perfCollector.StartPhase(telemetry.PhaseEffects)
		g.updateEffects(dt)
	}

	g.perfCollector.EndTick()
	g.tick++
}

// simulationStep runs a single tick of a round.
func (g *Game) simulationStep(dt float32, in systems.ShipInput) {
	g.roundTime += float64(dt)

	// 1. Spawn timers and placement
	g.perfCollector.StartPhase(telemetry.PhaseSpawn)
	g.updateSpawns(dt)

	// 2. Collision detection and reaction
	g.perfCollector.StartPhase(telemetry.PhaseCollision)
	g.collision.DetectAndReact(g.items, g.react)
	g.collector.RecordCollisions(g.collision.Checks(), g.collision.Pairs())

	// 3. Movement and player control
	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	g.movement.Update(dt)
	g.updateShip(dt, in)

	// 4. Weapons
	g.perfCollector.StartPhase(telemetry.PhaseWeapons)
	g.updateWeapons(dt, in)

	// 5. Particles, then emitters
	g.perfCollector.StartPhase(telemetry.PhaseEffects)
	g.updateEffects(dt)

	// 6. Telemetry
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordKills()
	g.sampleTelemetry(dt)
	g.flushTelemetry()

	// 7. The round ends once the last explosion has faded
	if g.roundOver() {
		g.endRound()
	}
}

// updateSpawns runs the spawn clocks, retries the ship respawn and reports
// placement counters.
func (g *Game) updateSpawns(dt float32) {
	cfg := g.cfg
	defer g.recordPlacement()

	// Nothing new arrives once the last life is gone.
	if g.combat.Lives() <= 0 {
		return
	}

	if g.rockTimer.Cycle(dt) {
		if g.spawnRock(g.edgePlacer, float32(cfg.Placement.RockClear), cfg.Placement.EdgeTries) {
			g.rockTimer.Restart()
		}
	}
	if g.enemyTimer.Cycle(dt) {
		if g.spawnEnemy() {
			g.enemyTimer.Restart()
		}
	}

	if !g.items[g.ship].Actor.Active {
		g.respawnIn -= dt
		if g.respawnIn <= 0 && g.placeShip() {
			slog.Debug("ship respawned", "lives", g.combat.Lives(), "tick", g.tick)
		}
	}
}

// recordPlacement moves the placers' counters into the collector.
func (g *Game) recordPlacement() {
	for _, p := range []*systems.Placer{g.placer, g.edgePlacer} {
		st := p.Stats()
		g.collector.RecordPlacement(st.Samples, st.Failed)
		p.ResetStats()
	}
}

// updateShip applies input to the ship and advances its animation.
func (g *Game) updateShip(dt float32, in systems.ShipInput) {
	ship := g.items[g.ship]
	if !ship.Actor.Active {
		return
	}
	clip := systems.ControlShip(ship.Pos, &g.shipThrust, *ship.Body, in, g.field, g.control, dt)

	frames := g.cfg.Animation.IdleFrames
	switch clip {
	case components.ClipWalk:
		frames = g.cfg.Animation.WalkFrames
	case components.ClipAttack:
		frames = g.cfg.Animation.AttackFrames
	}
	g.shipAnim.Play(clip, frames)
	g.shipAnim.Advance(dt)
}

// updateWeapons fires the ship's gun on request and every enemy gun whenever
// it is ready.
func (g *Game) updateWeapons(dt float32, in systems.ShipInput) {
	cfg := g.cfg

	g.shipWeapon.Cool(dt)
	canFire := in.Fire && g.modeTime >= fireGrace && g.items[g.ship].Actor.Active
	if canFire && g.shipWeapon.Trigger() {
		g.fireBullet(g.ship, float32(cfg.Bullet.Speed))
	}

	for i := g.enemies.start; i < g.enemies.end; i++ {
		if !g.items[i].Actor.Active {
			continue
		}
		// Enemies waiting beyond the edge hold fire.
		if g.items[i].Pos.X > g.field.MaxX {
			continue
		}
		if g.enemyGuns[i-g.enemies.start].Ready(dt) {
			g.fireBullet(i, -float32(cfg.Bullet.EnemySpeed))
		}
	}
}

// updateEffects ticks the particles, then the emitters, then the camera shake.
func (g *Game) updateEffects(dt float32) {
	g.particles.Tick(dt)
	g.emitters.Update(dt, g.particles, g.rng)
	if g.camera != nil {
		g.camera.Update(dt, g.rng)
	}
}

// recordKills forwards this tick's kills to the collector.
func (g *Game) recordKills() {
	rocks := g.combat.Kills(components.KindRock)
	enemies := g.combat.Kills(components.KindEnemy)
	g.collector.RecordKills(rocks-g.lastKills[0], enemies-g.lastKills[1])
	g.lastKills = [2]int{rocks, enemies}
}

// onShipHit starts the respawn delay and shakes the screen.
func (g *Game) onShipHit() {
	g.respawnIn = float32(g.cfg.Ship.RespawnDelay)
	g.collector.RecordShipHit()
	if g.camera != nil {
		g.camera.Shake(float32(g.cfg.Effects.ShakeAmount), float32(g.cfg.Effects.ShakeTime))
	}
}
