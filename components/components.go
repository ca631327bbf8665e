// Package components defines ECS components for the game.
package components

// Kind tags what an entity is. It drives the combat rules and rendering.
type Kind uint8

const (
	KindShip Kind = iota
	KindRock
	KindBullet
	KindEnemy
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindRock:
		return "rock"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	}
	return "unknown"
}

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Tint is an RGBA colour kept free of any renderer types.
type Tint struct {
	R, G, B, A uint8
}

// TintFromRGBA converts config colour channels to a Tint, clamping to 0-255.
func TintFromRGBA(c [4]int) Tint {
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Tint{R: clamp(c[0]), G: clamp(c[1]), B: clamp(c[2]), A: clamp(c[3])}
}

// Ref is a weak reference into the fixed entity table. It stays valid only
// while the referenced actor keeps the generation it had when the ref was taken.
// Generations start at 1, so the zero Ref refers to nothing.
type Ref struct {
	Index int32
	Gen   uint32
}

// NoRef refers to nothing.
var NoRef = Ref{}

// IsSet reports whether the ref names a slot at all. It does not check liveness.
func (r Ref) IsSet() bool {
	return r.Gen != 0
}

// Actor holds gameplay state shared by every entity in the table.
type Actor struct {
	Kind       Kind
	Active     bool
	Colliding  bool // Set by collision detection, cleared at the start of each pass
	Health     int
	Generation uint32 // Bumped on every activation so stale Refs can be detected
	Spawner    Ref    // Bullets only: who fired it
	Faction    Kind   // Bullets only: kind of the spawner at fire time
	Score      int    // Points awarded when this actor is destroyed by the player
}

// Activate marks the actor live and starts a new generation.
func (a *Actor) Activate() {
	a.Active = true
	a.Generation++
}

// Deactivate retires the actor. The slot stays in the table for reuse.
func (a *Actor) Deactivate() {
	a.Active = false
	a.Colliding = false
}

// RefTo returns a Ref to the actor stored at index in its current generation.
func (a *Actor) RefTo(index int) Ref {
	return Ref{Index: int32(index), Gen: a.Generation}
}

// Weapon is a cooldown-gated trigger.
type Weapon struct {
	Delay    float32 // Seconds between shots
	Cooldown float32 // Seconds until the next shot is allowed
}

// Cool advances the cooldown without firing. It stops at zero.
func (w *Weapon) Cool(dt float32) {
	if w.Cooldown > 0 {
		w.Cooldown -= dt
	}
}

// Trigger fires if the cooldown has run out and re-arms it.
func (w *Weapon) Trigger() bool {
	if w.Cooldown > 0 {
		return false
	}
	w.Cooldown = w.Delay
	return true
}

// Ready advances the cooldown and reports whether a shot may fire now.
// A true result re-arms the cooldown.
func (w *Weapon) Ready(dt float32) bool {
	w.Cool(dt)
	return w.Trigger()
}
