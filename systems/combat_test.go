package systems

import (
	"testing"

	"github.com/pthm-cable/rockdodge/components"
)

// combatFixture holds a ship, a ship bullet, a rock, an enemy and an enemy
// bullet, all stacked on the same spot.
type combatFixture struct {
	items  []Collider
	combat *CombatSystem
	ep     *EmitterPool
	hits   int
}

const (
	fxShip = iota
	fxShipBullet
	fxRock
	fxEnemy
	fxEnemyBullet
)

func newCombatFixture(t *testing.T) *combatFixture {
	t.Helper()
	kinds := []components.Kind{
		components.KindShip,
		components.KindBullet,
		components.KindRock,
		components.KindEnemy,
		components.KindBullet,
	}
	items := make([]Collider, len(kinds))
	for i, k := range kinds {
		items[i] = Collider{
			Pos:   &components.Position{X: 50, Y: 50},
			Body:  &components.Body{Radius: 10, HalfW: 10, HalfH: 10},
			Actor: &components.Actor{Kind: k, Health: 1},
		}
		items[i].Actor.Activate()
	}
	items[fxRock].Actor.Score = 10
	items[fxEnemy].Actor.Score = 50

	items[fxShipBullet].Actor.Spawner = items[fxShip].Actor.RefTo(fxShip)
	items[fxShipBullet].Actor.Faction = components.KindShip
	items[fxEnemyBullet].Actor.Spawner = items[fxEnemy].Actor.RefTo(fxEnemy)
	items[fxEnemyBullet].Actor.Faction = components.KindEnemy

	f := &combatFixture{items: items, ep: NewEmitterPool(16)}
	f.combat = NewCombatSystem(CombatConfig{ShipDamage: 999, RockSpeed: 150, RockMaxRadius: 40},
		NewEffects(f.ep, testPresets(t)))
	f.combat.Reset(3)
	f.combat.OnShipHit = func() { f.hits++ }
	return f
}

// both runs the reaction in both directions, as DetectAndReact does.
func (f *combatFixture) both(a, b int) {
	f.combat.React(f.items, a, b)
	f.combat.React(f.items, b, a)
}

func (f *combatFixture) alive(i int) bool {
	return f.items[i].Actor.Active
}

func TestCombatShipIgnoresOwnBullet(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxShip, fxShipBullet)

	if !f.alive(fxShip) || !f.alive(fxShipBullet) {
		t.Error("ship and its bullet should pass through each other")
	}
	if f.combat.Lives() != 3 {
		t.Errorf("Lives() = %d, want 3", f.combat.Lives())
	}
}

func TestCombatEnemyBulletHitsShip(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxShip, fxEnemyBullet)

	if f.alive(fxShip) || f.alive(fxEnemyBullet) {
		t.Error("ship and enemy bullet should both be destroyed")
	}
	if f.combat.Lives() != 2 || f.hits != 1 {
		t.Errorf("Lives()=%d hits=%d, want 2 and 1", f.combat.Lives(), f.hits)
	}
	// Ship explosion plus bullet splash.
	if f.ep.NumActive() != 2 {
		t.Errorf("NumActive() = %d, want 2", f.ep.NumActive())
	}
}

func TestCombatEnemyIgnoresOwnBullets(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxEnemy, fxEnemyBullet)

	if !f.alive(fxEnemy) || !f.alive(fxEnemyBullet) {
		t.Error("enemy and enemy bullet should pass through each other")
	}
}

func TestCombatBulletsIgnoreBullets(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxShipBullet, fxEnemyBullet)

	if !f.alive(fxShipBullet) || !f.alive(fxEnemyBullet) {
		t.Error("bullets should not damage each other")
	}
}

func TestCombatShipBulletKillsRockAndScores(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxShipBullet, fxRock)

	if f.alive(fxRock) || f.alive(fxShipBullet) {
		t.Error("rock and bullet should both be destroyed")
	}
	if f.combat.Score() != 10 {
		t.Errorf("Score() = %d, want 10", f.combat.Score())
	}
	if f.combat.Kills(components.KindRock) != 1 {
		t.Errorf("Kills(rock) = %d, want 1", f.combat.Kills(components.KindRock))
	}
}

func TestCombatEnemyBulletKillsRockWithoutScore(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxEnemyBullet, fxRock)

	if f.alive(fxRock) {
		t.Error("rock should be destroyed")
	}
	if f.combat.Score() != 0 {
		t.Errorf("Score() = %d, want 0 for a kill the player did not make", f.combat.Score())
	}
}

func TestCombatShipBulletKillsEnemy(t *testing.T) {
	f := newCombatFixture(t)
	f.items[fxEnemy].Actor.Health = 2

	f.both(fxShipBullet, fxEnemy)
	if !f.alive(fxEnemy) {
		t.Fatal("enemy with 2 health died from one hit")
	}
	if f.combat.Score() != 0 {
		t.Fatalf("scored for a wounded enemy")
	}

	f.combat.React(f.items, fxShipBullet, fxEnemy)
	if f.alive(fxEnemy) {
		t.Error("enemy should die from the second hit")
	}
	if f.combat.Score() != 50 {
		t.Errorf("Score() = %d, want 50", f.combat.Score())
	}
}

func TestCombatRockHurtsEverything(t *testing.T) {
	f := newCombatFixture(t)
	f.combat.React(f.items, fxRock, fxEnemy)
	if f.alive(fxEnemy) {
		t.Error("rock should damage enemies")
	}
	f.combat.React(f.items, fxRock, fxShip)
	if f.alive(fxShip) {
		t.Error("rock should damage the ship")
	}
}

func TestCombatStaleSpawnerRef(t *testing.T) {
	f := newCombatFixture(t)
	if !isSpawner(f.items, fxEnemyBullet, fxEnemy) {
		t.Fatal("live spawner not recognised")
	}

	f.items[fxEnemy].Actor.Deactivate()
	f.items[fxEnemy].Actor.Activate()
	if isSpawner(f.items, fxEnemyBullet, fxEnemy) {
		t.Error("respawned entity should not count as the bullet's spawner")
	}
}

func TestCombatThroughDetectAndReact(t *testing.T) {
	f := newCombatFixture(t)
	// Only the ship bullet and the rock take part.
	for _, i := range []int{fxShip, fxEnemy, fxEnemyBullet} {
		f.items[i].Actor.Deactivate()
	}

	pairs := NewCollisionSystem().DetectAndReact(f.items, f.combat.Reactor(f.items))

	if pairs != 1 {
		t.Fatalf("pairs = %d, want 1", pairs)
	}
	if f.alive(fxRock) || f.alive(fxShipBullet) {
		t.Error("both should be destroyed")
	}
	if f.combat.Score() != 10 {
		t.Errorf("Score() = %d, want 10", f.combat.Score())
	}
	// Rock explosion plus bullet splash.
	if f.ep.NumActive() != 2 {
		t.Errorf("NumActive() = %d, want 2", f.ep.NumActive())
	}
}

func TestCombatReset(t *testing.T) {
	f := newCombatFixture(t)
	f.both(fxShipBullet, fxRock)
	f.combat.Reset(5)

	if f.combat.Lives() != 5 || f.combat.Score() != 0 || f.combat.Kills(components.KindRock) != 0 {
		t.Errorf("Reset left lives=%d score=%d", f.combat.Lives(), f.combat.Score())
	}
}

func TestCombatShipLosesOneLifePerPass(t *testing.T) {
	f := newCombatFixture(t)
	// The enemy bullet and the rock both overlap the ship in one pass.
	f.both(fxShip, fxEnemyBullet)
	f.both(fxShip, fxRock)

	if f.combat.Lives() != 2 {
		t.Errorf("Lives() = %d, want 2", f.combat.Lives())
	}
	if f.hits != 1 {
		t.Errorf("OnShipHit called %d times, want 1", f.hits)
	}
	if f.alive(fxRock) {
		t.Error("the ship should still destroy the rock it was sampled against")
	}
}
