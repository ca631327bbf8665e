package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/rockdodge/components"
)

// EmitterConfig is the full set of burst parameters. There are no hidden
// defaults: a zero field means zero.
type EmitterConfig struct {
	Pos      r2.Vec
	Tint     components.Tint
	ScaleMin float32
	ScaleMax float32
	InitVel  r2.Vec  // Added to every particle's velocity
	SpeedMin float64 // Speed range for the random direction
	SpeedMax float64
	Rate     float32 // Seconds between bursts
	Life     float32 // Seconds each particle lives
	Budget   int     // Particles left to emit
	PerBurst int
}

// Emitter produces bursts of particles until its budget runs out, then goes
// dormant and waits to be claimed again.
type Emitter struct {
	EmitterConfig

	alive      bool
	sinceBurst float32
}

// Alive reports whether the emitter still has budget to spend.
func (e *Emitter) Alive() bool {
	return e.alive
}

// Remaining returns the unspent budget.
func (e *Emitter) Remaining() int {
	return e.Budget
}

// start overwrites the emitter in place and marks it alive.
func (e *Emitter) start(cfg EmitterConfig) {
	if cfg.Rate < 0 {
		cfg.Rate = 0
	}
	e.EmitterConfig = cfg
	e.sinceBurst = 0
	e.alive = true
}

// Update emits at most one burst. Pool exhaustion drops particles silently;
// only particles that got a slot are charged to the budget.
func (e *Emitter) Update(dt float32, ps *ParticleSystem, rng *rand.Rand) {
	if !e.alive {
		return
	}

	e.sinceBurst += dt
	if e.sinceBurst > e.Rate {
		n := min(e.PerBurst, e.Budget)
		emitted := 0
		for i := 0; i < n; i++ {
			if e.emitOne(ps, rng) {
				emitted++
			}
		}
		e.Budget -= emitted
		e.sinceBurst = 0
	}

	if e.Budget <= 0 || e.PerBurst <= 0 {
		e.alive = false
	}
}

func (e *Emitter) emitOne(ps *ParticleSystem, rng *rand.Rand) bool {
	idx, ok := ps.pool.Acquire()
	if !ok {
		return false
	}

	angle := rng.Float64() * 2 * math.Pi
	speed := e.SpeedMin + rng.Float64()*(e.SpeedMax-e.SpeedMin)
	dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}

	p := ps.pool.Get(idx)
	p.Life = e.Life
	p.Pos = e.Pos
	p.Vel = r2.Add(r2.Scale(speed, dir), e.InitVel)
	p.Tint = e.Tint
	p.Scale = e.ScaleMin + rng.Float32()*(e.ScaleMax-e.ScaleMin)
	return true
}

// EmitterPool is a fixed array of reusable emitters.
type EmitterPool struct {
	emitters []Emitter
	dropped  int
}

// NewEmitterPool creates n dormant emitters.
func NewEmitterPool(n int) *EmitterPool {
	return &EmitterPool{emitters: make([]Emitter, n)}
}

// Claim configures the first dormant emitter with cfg and marks it alive.
// It returns nil when every emitter is busy; the effect is simply dropped.
func (ep *EmitterPool) Claim(cfg EmitterConfig) *Emitter {
	for i := range ep.emitters {
		e := &ep.emitters[i]
		if !e.alive {
			e.start(cfg)
			return e
		}
	}
	ep.dropped++
	return nil
}

// Update advances every emitter.
func (ep *EmitterPool) Update(dt float32, ps *ParticleSystem, rng *rand.Rand) {
	for i := range ep.emitters {
		ep.emitters[i].Update(dt, ps, rng)
	}
}

// NumActive counts alive emitters.
func (ep *EmitterPool) NumActive() int {
	n := 0
	for i := range ep.emitters {
		if ep.emitters[i].alive {
			n++
		}
	}
	return n
}

// Dropped returns how many claims found no dormant emitter.
func (ep *EmitterPool) Dropped() int {
	return ep.dropped
}

// Reset makes every emitter dormant.
func (ep *EmitterPool) Reset() {
	for i := range ep.emitters {
		ep.emitters[i].alive = false
	}
}
