package systems

import "github.com/pthm-cable/rockdodge/components"

// Collider is a per-tick view of one entity in the fixed entity table. Slices
// of colliders are always in storage order; their index is the entity's identity.
type Collider struct {
	Pos   *components.Position
	Body  *components.Body
	Actor *components.Actor
}

// ReactFunc is called when entity a has hit entity b. Indices refer to the
// collider slice passed to DetectAndReact.
type ReactFunc func(a, b int)

// CirclesOverlap reports whether two circles touch or intersect.
func CirclesOverlap(ax, ay, ar, bx, by, br float32) bool {
	return distance(ax, ay, bx, by) <= ar+br
}

func overlaps(a, b Collider) bool {
	return CirclesOverlap(a.Pos.X, a.Pos.Y, a.Body.Radius, b.Pos.X, b.Pos.Y, b.Body.Radius)
}

// CollisionSystem finds every overlapping pair of active entities by brute force.
type CollisionSystem struct {
	checks int // Pair tests in the last pass
	pairs  int // Overlapping pairs in the last pass
}

// NewCollisionSystem creates a collision system.
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// DetectAndReact clears every Colliding flag, then tests each unordered pair
// i<j of active entities in storage order. On overlap both are flagged and
// react fires as (i, j) then (j, i). It returns the number of overlapping pairs.
//
// Whether i is active is read once, when the outer loop reaches it. A reaction
// that deactivates i does not stop i from being tested against later entities.
func (s *CollisionSystem) DetectAndReact(items []Collider, react ReactFunc) int {
	for i := range items {
		items[i].Actor.Colliding = false
	}

	s.checks, s.pairs = 0, 0
	for i := 0; i < len(items); i++ {
		a := items[i]
		if !a.Actor.Active {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			b := items[j]
			if !b.Actor.Active {
				continue
			}
			s.checks++
			if !overlaps(a, b) {
				continue
			}
			a.Actor.Colliding = true
			b.Actor.Colliding = true
			s.pairs++
			if react != nil {
				react(i, j)
				react(j, i)
			}
		}
	}
	return s.pairs
}

// Checks returns the number of pair tests made by the last pass.
func (s *CollisionSystem) Checks() int {
	return s.checks
}

// Pairs returns the number of overlapping pairs found by the last pass.
func (s *CollisionSystem) Pairs() int {
	return s.pairs
}

// TestAgainstAll reports whether items[candidate] overlaps any other active
// entity. The candidate is excluded by index, so coincident twins still count.
// The candidate's own active flag is ignored.
func TestAgainstAll(candidate int, items []Collider) bool {
	c := items[candidate]
	for j := range items {
		if j == candidate || !items[j].Actor.Active {
			continue
		}
		if overlaps(c, items[j]) {
			return true
		}
	}
	return false
}
