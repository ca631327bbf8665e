package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/systems"
)

// setupEntities creates every entity the game will ever use, inactive. The
// storage order is fixed for the lifetime of the game: ship, rocks, bullets,
// enemies. Spawning only flips Actor.Active.
func (g *Game) setupEntities() {
	cfg := g.cfg
	g.slots = make([]ecs.Entity, 0, cfg.Derived.Total)

	newEntity := func(kind components.Kind, body components.Body) ecs.Entity {
		pos := components.Position{}
		vel := components.Velocity{}
		actor := components.Actor{Kind: kind}
		e := g.entityMapper.NewEntity(&pos, &vel, &body, &actor)
		g.slots = append(g.slots, e)
		return e
	}

	ship := newEntity(components.KindShip, components.ShipBody())
	g.weaponMap.Add(ship, &components.Weapon{Delay: float32(cfg.Ship.FireDelay)})
	g.animMap.Add(ship, &components.Animation{FrameTime: float32(cfg.Animation.FrameTime)})
	g.ship = 0

	g.rocks.start = len(g.slots)
	for i := 0; i < cfg.Entities.Rocks; i++ {
		newEntity(components.KindRock, components.CircleBody(float32(cfg.Rock.RadiusMin)))
	}
	g.rocks.end = len(g.slots)

	g.bullets.start = len(g.slots)
	for i := 0; i < cfg.Entities.Bullets; i++ {
		newEntity(components.KindBullet, components.BulletBody())
	}
	g.bullets.end = len(g.slots)

	g.enemies.start = len(g.slots)
	for i := 0; i < cfg.Entities.Enemies; i++ {
		e := newEntity(components.KindEnemy, components.EnemyBody())
		g.weaponMap.Add(e, &components.Weapon{Delay: float32(cfg.Enemy.FireDelay)})
	}
	g.enemies.end = len(g.slots)

	// Component pointers are taken only after every structural change.
	g.items = make([]systems.Collider, len(g.slots))
	for i, e := range g.slots {
		pos, _, body, actor := g.entityMapper.Get(e)
		g.items[i] = systems.Collider{Pos: pos, Body: body, Actor: actor}
	}
	g.shipWeapon = g.weaponMap.Get(ship)
	g.shipAnim = g.animMap.Get(ship)
	g.enemyGuns = make([]*components.Weapon, 0, g.enemies.len())
	for i := g.enemies.start; i < g.enemies.end; i++ {
		g.enemyGuns = append(g.enemyGuns, g.weaponMap.Get(g.slots[i]))
	}
}

// velocity returns the velocity component of the entity at index i.
func (g *Game) velocity(i int) *components.Velocity {
	_, vel, _, _ := g.entityMapper.Get(g.slots[i])
	return vel
}

// freeSlot returns the first inactive index in s, or -1.
func (g *Game) freeSlot(s span) int {
	for i := s.start; i < s.end; i++ {
		if !g.items[i].Actor.Active {
			return i
		}
	}
	return -1
}

// countActive returns the number of active entities in s.
func (g *Game) countActive(s span) int {
	n := 0
	for i := s.start; i < s.end; i++ {
		if g.items[i].Actor.Active {
			n++
		}
	}
	return n
}

// resetRound clears the field and puts the ship and the opening rocks in place.
func (g *Game) resetRound() {
	cfg := g.cfg

	for i := range g.items {
		g.items[i].Actor.Deactivate()
	}
	g.emitters.Reset()
	g.combat.Reset(cfg.Entities.Lives)
	g.rockTimer.Reset(float32(cfg.Spawn.RockDelay), float32(cfg.Spawn.RockDecayDelay), float32(cfg.Spawn.DecayMultiplier))
	g.enemyTimer.Reset(float32(cfg.Spawn.EnemyDelay), float32(cfg.Spawn.EnemyDecayDelay), float32(cfg.Spawn.DecayMultiplier))
	g.respawnIn = 0
	g.roundTime = 0
	g.lastKills = [2]int{}
	g.bookmarks.Reset()

	g.placeShip()
	for i := 0; i < cfg.Placement.InitialRocks; i++ {
		g.spawnRock(g.placer, float32(cfg.Placement.RockMinDist), cfg.Placement.PlaceTries)
	}
}

// shipStart returns where the ship enters: the left edge, vertically centred.
func (g *Game) shipStart() components.Position {
	body := g.items[g.ship].Body
	return components.Position{
		X: g.field.MinX + body.HalfW*2*g.control.Edge,
		Y: (g.field.MinY + g.field.MaxY) / 2,
	}
}

// placeShip activates the ship at its start position if nothing is in the way.
func (g *Game) placeShip() bool {
	ship := g.items[g.ship]
	*ship.Pos = g.shipStart()
	if systems.TestAgainstAll(g.ship, g.items) {
		return false
	}
	ship.Actor.Health = g.cfg.Ship.Health
	ship.Actor.Spawner = components.NoRef
	ship.Actor.Activate()
	g.shipThrust = components.Velocity{}
	g.shipWeapon.Cooldown = 0
	g.shipAnim.Play(components.ClipIdle, g.cfg.Animation.IdleFrames)
	return true
}

// spawnRock places a rock of random size with p. It returns false when no
// slot is free or placement failed this tick.
func (g *Game) spawnRock(p *systems.Placer, clearance float32, tries int) bool {
	idx := g.freeSlot(g.rocks)
	if idx < 0 {
		return false
	}
	cfg := g.cfg.Rock
	radius := float32(cfg.RadiusMin + g.rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin))

	it := g.items[idx]
	*it.Body = components.CircleBody(radius)
	it.Actor.Health = max(1, int(float64(radius)*cfg.HealthPerRadius))
	it.Actor.Score = g.cfg.Scoring.Rock
	it.Actor.Spawner = components.NoRef
	*g.velocity(idx) = components.Velocity{X: -float32(cfg.Speed)}

	if !p.TryPlace(g.items, idx, clearance, tries) {
		return false
	}
	g.collector.RecordSpawn(components.KindRock)
	return true
}

// spawnEnemy places an enemy beyond the right edge.
func (g *Game) spawnEnemy() bool {
	idx := g.freeSlot(g.enemies)
	if idx < 0 {
		return false
	}
	cfg := g.cfg.Enemy

	it := g.items[idx]
	*it.Body = components.EnemyBody()
	it.Actor.Health = cfg.Health
	it.Actor.Score = g.cfg.Scoring.Enemy
	it.Actor.Spawner = components.NoRef
	*g.velocity(idx) = components.Velocity{X: -float32(cfg.Speed)}
	g.enemyGuns[idx-g.enemies.start].Cooldown = float32(cfg.FireDelay)

	if !g.edgePlacer.TryPlace(g.items, idx, float32(g.cfg.Placement.EnemyClear), g.cfg.Placement.EdgeTries) {
		return false
	}
	g.collector.RecordSpawn(components.KindEnemy)
	return true
}

// fireBullet launches a bullet from the entity at spawner with velocity vx.
// Bullets are not placed: they start inside their spawner, which the
// collision rules ignore.
func (g *Game) fireBullet(spawner int, vx float32) bool {
	idx := g.freeSlot(g.bullets)
	if idx < 0 {
		return false
	}
	src := g.items[spawner]
	it := g.items[idx]

	*it.Body = components.BulletBody()
	*it.Pos = *src.Pos
	it.Actor.Health = 1
	it.Actor.Score = 0
	it.Actor.Faction = src.Actor.Kind
	it.Actor.Spawner = src.Actor.RefTo(spawner)
	*g.velocity(idx) = components.Velocity{X: vx}
	it.Actor.Activate()

	g.collector.RecordShot()
	return true
}
