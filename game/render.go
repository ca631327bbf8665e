package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockdodge/ui"
)

// fieldColor is the playfield background; the letterbox bars stay black.
var fieldColor = rl.Color{R: 24, G: 28, B: 36, A: 255}

// Draw renders the game.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	x, y, w, h := g.camera.FieldRect()
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, fieldColor)

	g.entityRenderer.Draw(g.items, g.camera, g.shipAnim)
	g.particleRenderer.Draw(g.particles, g.camera)

	// Anything drawn past the field edge is covered by the letterbox again.
	g.drawLetterbox(x, y, w, h)

	g.hud.Draw(ui.HUDData{
		Score:        g.combat.Score(),
		Best:         g.scores.Best(),
		Lives:        g.combat.Lives(),
		Round:        g.round,
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Particles:    g.particles.Count(),
		Emitters:     g.emitters.NumActive(),
		Paused:       g.paused,
		Playing:      g.mode == ModePlaying,
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})

	if g.showPerf {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}

	g.drawMenu()

	rl.EndDrawing()
}

// drawLetterbox blacks out the screen outside the field rectangle.
func (g *Game) drawLetterbox(x, y, w, h float32) {
	sw, sh := g.screenWidth, g.screenHeight
	if x > 0 {
		rl.DrawRectangleRec(rl.Rectangle{Width: x, Height: sh}, rl.Black)
		rl.DrawRectangleRec(rl.Rectangle{X: x + w, Width: sw - x - w, Height: sh}, rl.Black)
	}
	if y > 0 {
		rl.DrawRectangleRec(rl.Rectangle{Width: sw, Height: y}, rl.Black)
		rl.DrawRectangleRec(rl.Rectangle{Y: y + h, Width: sw, Height: sh - y - h}, rl.Black)
	}
}

// drawMenu draws the screen for the current mode and applies the action the
// player picked.
func (g *Game) drawMenu() {
	sw, sh := int32(g.screenWidth), int32(g.screenHeight)

	switch g.mode {
	case ModeIntro:
		if g.menu.DrawIntro(sw, sh) {
			g.StartRound()
		}
	case ModeEnterName:
		if g.menu.DrawEnterName(sw, sh, g.combat.Score()) {
			g.SubmitName(g.menu.Name())
		}
	case ModeGameOver:
		if g.menu.DrawGameOver(sw, sh, g.combat.Score(), g.scores.Entries) {
			g.Continue()
		}
	}
}
