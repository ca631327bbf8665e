package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/systems"
)

// Update runs one frame in graphical mode.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}
	dt := min(rl.GetFrameTime(), float32(g.cfg.Physics.MaxFrame))
	g.step(dt, g.readShipInput())
}

// UpdateHeadless runs StepsPerUpdate fixed ticks with the autopilot at the
// controls. Menus are answered immediately.
func (g *Game) UpdateHeadless() {
	dt := g.cfg.Derived.DT32
	for i := 0; i < g.stepsPerUpdate; i++ {
		switch g.mode {
		case ModeIntro:
			g.StartRound()
		case ModeEnterName:
			g.SubmitName("autopilot")
		case ModeGameOver:
			g.Continue()
		}
		g.step(dt, g.autopilot())
	}
}

// handleInput processes keyboard input that is not ship control.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.entityRenderer.ShowColliders = !g.entityRenderer.ShowColliders
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		g.logPoolState()
	}

	switch g.mode {
	case ModeIntro:
		if rl.IsKeyPressed(rl.KeyEnter) {
			g.StartRound()
		}
	case ModePlaying:
		if rl.IsKeyPressed(rl.KeyP) {
			g.paused = !g.paused
		}
	case ModeEnterName:
		if rl.IsKeyPressed(rl.KeyEnter) {
			g.SubmitName(g.menu.Name())
		}
	case ModeGameOver:
		if rl.IsKeyPressed(rl.KeyEnter) {
			g.Continue()
		}
	}
}

// handleResize checks for window resize and refits the camera.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
}

// readShipInput samples the keyboard.
func (g *Game) readShipInput() systems.ShipInput {
	return systems.ShipInput{
		Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Up:    rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Down:  rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		Fire:  rl.IsKeyDown(rl.KeySpace),
	}
}

// autopilotMargin is the extra vertical gap the autopilot keeps from threats.
const autopilotMargin = 8

// autopilot steers away from the closest threat ahead of the ship and keeps
// firing. It is deterministic given the game state.
func (g *Game) autopilot() systems.ShipInput {
	in := systems.ShipInput{Fire: true}
	ship := g.items[g.ship]
	if !ship.Actor.Active {
		return in
	}

	threat := -1
	best := g.field.MaxX
	for i := g.rocks.start; i < g.enemies.end; i++ {
		it := g.items[i]
		if !it.Actor.Active || it.Pos.X < ship.Pos.X {
			continue
		}
		if it.Actor.Kind == components.KindBullet && it.Actor.Faction == components.KindShip {
			continue
		}
		dy := it.Pos.Y - ship.Pos.Y
		if dy < 0 {
			dy = -dy
		}
		if dy > it.Body.Radius+ship.Body.HalfH+autopilotMargin {
			continue
		}
		if dx := it.Pos.X - ship.Pos.X; dx < best {
			best = dx
			threat = i
		}
	}
	if threat < 0 {
		return in
	}

	// Dodge towards the roomier side.
	mid := (g.field.MinY + g.field.MaxY) / 2
	above := g.items[threat].Pos.Y < ship.Pos.Y
	switch {
	case above && ship.Pos.Y < g.field.MaxY-ship.Body.HalfH*4:
		in.Down = true
	case !above && ship.Pos.Y > g.field.MinY+ship.Body.HalfH*4:
		in.Up = true
	case ship.Pos.Y < mid:
		in.Down = true
	default:
		in.Up = true
	}
	return in
}
