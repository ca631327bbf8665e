package systems

import "math/rand"

// Rect is an axis-aligned region of the playfield.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// PlacementStats counts placement outcomes since the last reset.
type PlacementStats struct {
	Samples int
	Placed  int
	Failed  int
}

// Placer drops entities at random positions that keep clear of everything
// already active. It gives up after a bounded number of samples.
type Placer struct {
	rng    *rand.Rand
	bounds Rect
	stats  PlacementStats
}

// NewPlacer creates a placer sampling inside bounds.
func NewPlacer(rng *rand.Rand, bounds Rect) *Placer {
	return &Placer{rng: rng, bounds: bounds}
}

// Stats returns the counters accumulated since the last ResetStats.
func (p *Placer) Stats() PlacementStats {
	return p.stats
}

// ResetStats zeroes the counters.
func (p *Placer) ResetStats() {
	p.stats = PlacementStats{}
}

// TryPlace samples up to maxTries positions for items[idx] and activates it at
// the first one that does not overlap an active entity. While sampling, the
// candidate's radius is multiplied by clearance; the other entities keep their
// own radii. Samples stay inside the bounds shrunk by the entity's half-extents.
//
// On success the entity is activated at the new position. On failure its
// position is restored and it stays inactive; the caller should try again on
// a later tick. The radius is always restored to its exact original value.
func (p *Placer) TryPlace(items []Collider, idx int, clearance float32, maxTries int) bool {
	if maxTries <= 0 {
		p.stats.Failed++
		return false
	}

	c := items[idx]
	radius := c.Body.Radius
	origin := *c.Pos
	c.Body.Radius = radius * clearance
	defer func() { c.Body.Radius = radius }()

	minX, maxX := shrink(p.bounds.MinX, p.bounds.MaxX, c.Body.HalfW)
	minY, maxY := shrink(p.bounds.MinY, p.bounds.MaxY, c.Body.HalfH)

	for try := 0; try < maxTries; try++ {
		c.Pos.X = minX + p.rng.Float32()*(maxX-minX)
		c.Pos.Y = minY + p.rng.Float32()*(maxY-minY)
		p.stats.Samples++

		if !TestAgainstAll(idx, items) {
			c.Actor.Activate()
			p.stats.Placed++
			return true
		}
	}

	*c.Pos = origin
	p.stats.Failed++
	return false
}

// shrink pulls both ends of [lo, hi] in by half. A range narrower than the
// entity collapses to its midpoint.
func shrink(lo, hi, half float32) (float32, float32) {
	lo, hi = lo+half, hi-half
	if lo > hi {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return lo, hi
}
