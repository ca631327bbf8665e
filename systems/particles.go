package systems

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/pool"
)

// Particle is one visual effect particle. Life at or below zero means dead.
type Particle struct {
	Life  float32
	Pos   r2.Vec
	Vel   r2.Vec
	Tint  components.Tint
	Scale float32
}

// ParticleSystem ticks every busy particle in a fixed pool and recycles the
// expired ones in the same pass.
type ParticleSystem struct {
	pool  *pool.Pool[Particle]
	debug bool

	released int // Particles recycled by the last Tick
}

// NewParticleSystem creates a particle system backed by a pool of capacity slots.
func NewParticleSystem(capacity int) *ParticleSystem {
	return &ParticleSystem{pool: pool.New[Particle](capacity)}
}

// Pool exposes the backing pool to emitters.
func (s *ParticleSystem) Pool() *pool.Pool[Particle] {
	return s.pool
}

// SetDebug enables chain validation after every tick.
func (s *ParticleSystem) SetDebug(on bool) {
	s.debug = on
}

// Tick ages and moves all busy particles by dt. Life is counted down in
// float32 with no epsilon, so when dt is not exact in binary a particle can
// be released one tick after life/dt (0.3 at dt 0.1 goes on tick 4).
func (s *ParticleSystem) Tick(dt float32) {
	s.released = 0
	prev, cur := pool.None, s.pool.Busy()
	for cur != pool.None {
		p := s.pool.Get(cur)
		p.Life -= dt
		if p.Life <= 0 {
			// The successor takes cur's place; prev still links to it.
			cur = s.pool.Release(cur, prev)
			s.released++
			continue
		}
		p.Pos = r2.Add(p.Pos, r2.Scale(float64(dt), p.Vel))
		prev, cur = cur, s.pool.Next(cur)
	}

	if s.debug {
		s.mustValidate()
	}
}

func (s *ParticleSystem) mustValidate() {
	if err := s.pool.Validate(); err != nil {
		panic(fmt.Sprintf("particles: %v", err))
	}
	for i := s.pool.Busy(); i != pool.None; i = s.pool.Next(i) {
		if s.pool.Get(i).Life <= 0 {
			panic(fmt.Sprintf("particles: busy slot %d survived a tick with life %.3f", i, s.pool.Get(i).Life))
		}
	}
}

// IsBusy reports whether any particle is still playing.
func (s *ParticleSystem) IsBusy() bool {
	return s.pool.IsBusy()
}

// Count returns the number of busy particles.
func (s *ParticleSystem) Count() int {
	return s.pool.BusyLen()
}

// Released returns how many particles the last Tick recycled.
func (s *ParticleSystem) Released() int {
	return s.released
}

// Each calls fn for every busy particle, most recently acquired first.
func (s *ParticleSystem) Each(fn func(p *Particle)) {
	for i := s.pool.Busy(); i != pool.None; i = s.pool.Next(i) {
		fn(s.pool.Get(i))
	}
}
