package systems

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/rockdodge/components"
)

// CombatConfig holds the numbers the damage rules need.
type CombatConfig struct {
	ShipDamage    int     // Contact damage dealt by the ship
	RockSpeed     float32 // Bullet splashes drift left at this speed
	RockMaxRadius float32 // Scales rock explosion debris speed
}

// CombatSystem implements the type-specific damage rules applied to every
// colliding pair, and keeps lives and score for the round.
type CombatSystem struct {
	cfg CombatConfig
	fx  *Effects

	lives int
	score int
	kills [4]int // Destroyed actors per Kind this round

	// OnShipHit is called after the ship loses a life.
	OnShipHit func()
}

// NewCombatSystem creates a combat system.
func NewCombatSystem(cfg CombatConfig, fx *Effects) *CombatSystem {
	return &CombatSystem{cfg: cfg, fx: fx}
}

// Reset starts a new round.
func (s *CombatSystem) Reset(lives int) {
	s.lives = lives
	s.score = 0
	s.kills = [4]int{}
}

// Lives returns the lives left.
func (s *CombatSystem) Lives() int {
	return s.lives
}

// Score returns the points scored this round.
func (s *CombatSystem) Score() int {
	return s.score
}

// Kills returns how many actors of kind were destroyed this round.
func (s *CombatSystem) Kills(kind components.Kind) int {
	if int(kind) >= len(s.kills) {
		return 0
	}
	return s.kills[kind]
}

// Reactor binds React to a collider slice for DetectAndReact.
func (s *CombatSystem) Reactor(items []Collider) ReactFunc {
	return func(a, b int) {
		s.React(items, a, b)
	}
}

// React applies what happens when items[a] hits items[b]. It is called for
// both orderings of a pair, so it only ever damages b.
func (s *CombatSystem) React(items []Collider, a, b int) {
	self, other := items[a].Actor, items[b].Actor

	switch self.Kind {
	case components.KindShip:
		if !ownedBy(other, components.KindShip) {
			s.TakeDamage(items, b, s.cfg.ShipDamage, a)
		}
	case components.KindBullet:
		if other.Kind == self.Faction || other.Kind == components.KindBullet || isSpawner(items, a, b) {
			return
		}
		s.TakeDamage(items, b, 1, a)
	case components.KindRock:
		s.TakeDamage(items, b, 1, a)
	case components.KindEnemy:
		if !ownedBy(other, components.KindEnemy) {
			s.TakeDamage(items, b, 1, a)
		}
	}
}

// ownedBy reports whether a was fired by something of kind.
func ownedBy(a *components.Actor, kind components.Kind) bool {
	return a.Spawner.IsSet() && a.Faction == kind
}

// isSpawner reports whether items[b] is the live entity that fired items[a].
func isSpawner(items []Collider, a, b int) bool {
	ref := items[a].Actor.Spawner
	if int(ref.Index) != b {
		return false
	}
	return items[b].Actor.Generation == ref.Gen
}

// TakeDamage subtracts amount from the victim's health, deactivates it at
// zero and fires the matching effect. source is the entity that dealt it.
//
// A ship that is already down takes no further hits in the same pass.
func (s *CombatSystem) TakeDamage(items []Collider, victim, amount, source int) {
	v := items[victim]
	if v.Actor.Kind == components.KindShip && !v.Actor.Active {
		return
	}
	v.Actor.Health -= amount
	destroyed := v.Actor.Health <= 0
	if destroyed {
		v.Actor.Deactivate()
		s.kills[v.Actor.Kind]++
	}

	pos := vecOf(v.Pos)
	switch v.Actor.Kind {
	case components.KindShip:
		s.fx.ShipExplode(pos, r2.Vec{})
		s.lives--
		slog.Debug("ship hit", "lives", s.lives, "by", items[source].Actor.Kind.String())
		if s.OnShipHit != nil {
			s.OnShipHit()
		}
	case components.KindBullet:
		s.fx.BulletSplash(pos, r2.Vec{X: -float64(s.cfg.RockSpeed)})
	case components.KindRock:
		if destroyed {
			s.fx.RockExplode(vecOf(items[source].Pos), v.Body.Radius, s.cfg.RockMaxRadius)
			s.credit(items[source].Actor, v.Actor)
		}
	case components.KindEnemy:
		if destroyed {
			s.fx.EnemySplash(pos)
			s.credit(items[source].Actor, v.Actor)
		}
	}
}

// credit awards the victim's points when the player dealt the blow.
func (s *CombatSystem) credit(source, victim *components.Actor) {
	if source.Kind == components.KindShip || ownedBy(source, components.KindShip) {
		s.score += victim.Score
	}
}

func vecOf(p *components.Position) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}
