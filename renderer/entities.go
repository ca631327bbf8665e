// Package renderer draws the entity table and the particle pool.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockdodge/camera"
	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/systems"
)

// Palette
var (
	shipColor        = rl.Color{R: 200, G: 200, B: 220, A: 255}
	shipAttackColor  = rl.Color{R: 255, G: 220, B: 120, A: 255}
	rockColor        = rl.Color{R: 110, G: 100, B: 90, A: 255}
	rockEdgeColor    = rl.Color{R: 60, G: 55, B: 50, A: 255}
	enemyColor       = rl.Color{R: 150, G: 40, B: 40, A: 255}
	shipBulletColor  = rl.Color{R: 255, G: 240, B: 160, A: 255}
	enemyBulletColor = rl.Color{R: 255, G: 90, B: 60, A: 255}
	collidingColor   = rl.Color{R: 255, G: 0, B: 255, A: 255}
)

// EntityRenderer draws active entities as simple shapes.
type EntityRenderer struct {
	// ShowColliders outlines every collision circle, highlighting overlaps.
	ShowColliders bool
}

// NewEntityRenderer creates a new entity renderer.
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

// Draw renders every active entity in storage order.
func (r *EntityRenderer) Draw(items []systems.Collider, cam *camera.Camera, shipAnim *components.Animation) {
	for i := range items {
		it := items[i]
		if !it.Actor.Active || !cam.IsVisible(it.Pos.X, it.Pos.Y, max(it.Body.HalfW, it.Body.HalfH)) {
			continue
		}

		sx, sy := cam.WorldToScreen(it.Pos.X, it.Pos.Y)
		switch it.Actor.Kind {
		case components.KindShip:
			drawShip(sx, sy, cam.Scale(it.Body.HalfW), cam.Scale(it.Body.HalfH), shipAnim)
		case components.KindRock:
			radius := cam.Scale(it.Body.Radius)
			rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, rockColor)
			rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, radius, rockEdgeColor)
		case components.KindEnemy:
			drawEnemy(sx, sy, cam.Scale(it.Body.Radius))
		case components.KindBullet:
			color := enemyBulletColor
			if it.Actor.Faction == components.KindShip {
				color = shipBulletColor
			}
			rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, cam.Scale(it.Body.Radius), color)
		}

		if r.ShowColliders {
			color := rl.Green
			if it.Actor.Colliding {
				color = collidingColor
			}
			rl.DrawCircleLinesV(rl.Vector2{X: sx, Y: sy}, cam.Scale(it.Body.Radius), color)
		}
	}
}

// drawShip draws the knight as a box with a lance that bobs with the
// animation frame.
func drawShip(x, y, halfW, halfH float32, anim *components.Animation) {
	color := shipColor
	bob := float32(0)
	if anim != nil {
		if anim.Clip == components.ClipAttack {
			color = shipAttackColor
		}
		if anim.Frames > 0 {
			phase := float64(anim.Frame) / float64(anim.Frames) * 2 * math.Pi
			bob = float32(math.Sin(phase)) * halfH * 0.1
		}
	}

	rl.DrawRectangleRec(rl.Rectangle{X: x - halfW*0.6, Y: y - halfH + bob, Width: halfW * 1.2, Height: halfH * 2}, color)
	rl.DrawTriangle(
		rl.Vector2{X: x + halfW, Y: y + bob},
		rl.Vector2{X: x + halfW*0.4, Y: y - halfH*0.25 + bob},
		rl.Vector2{X: x + halfW*0.4, Y: y + halfH*0.25 + bob},
		color,
	)
}

// drawEnemy draws an enemy as a circle with an eye facing left.
func drawEnemy(x, y, radius float32) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, enemyColor)
	rl.DrawCircleV(rl.Vector2{X: x - radius*0.4, Y: y - radius*0.2}, radius*0.25, rl.White)
}
