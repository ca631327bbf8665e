package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockdodge/camera"
	"github.com/pthm-cable/rockdodge/systems"
)

// particleSize is the drawn radius, in world units, of a particle at scale 1.
const particleSize = 8

// ParticleRenderer renders effect particles.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders every busy particle.
func (r *ParticleRenderer) Draw(ps *systems.ParticleSystem, cam *camera.Camera) {
	ps.Each(func(p *systems.Particle) {
		x, y := float32(p.Pos.X), float32(p.Pos.Y)
		size := p.Scale * particleSize
		if !cam.IsVisible(x, y, size) {
			return
		}

		sx, sy := cam.WorldToScreen(x, y)
		radius := cam.Scale(size)
		if radius < 0.5 {
			radius = 0.5
		}
		color := rl.Color{R: p.Tint.R, G: p.Tint.G, B: p.Tint.B, A: p.Tint.A}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, color)
	})
}
