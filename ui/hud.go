package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockdodge/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score        int
	Best         int
	Lives        int
	Round        int
	Tick         int32
	FPS          int32
	Particles    int
	Emitters     int
	Paused       bool
	Playing      bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	theme := h.renderer.Theme

	// Score, top left
	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", data.Best), 10, 35, 14, rl.LightGray)

	// Lives, top right
	if data.Playing {
		lives := fmt.Sprintf("Lives: %d", max(data.Lives, 0))
		w := rl.MeasureText(lives, 20)
		rl.DrawText(lives, data.ScreenWidth-w-10, 10, 20, theme.SectionHeader)
	}

	// Simulation info, bottom left
	rl.DrawText(
		fmt.Sprintf("Round: %d | Tick: %d | FPS: %d | Particles: %d | Emitters: %d",
			data.Round, data.Tick, data.FPS, data.Particles, data.Emitters),
		10, data.ScreenHeight-20, theme.FontSize, rl.Gray,
	)

	if data.Paused {
		h.renderer.DrawCentered("PAUSED", data.ScreenWidth, data.ScreenHeight/2, 30, rl.Yellow)
	}
}

// PerfPanel renders the per-phase tick timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	p.renderer.DrawPanel(x-4, y-4, 250, 130)

	rl.DrawText("Tick Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg tick: %s (max %s)",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.MaxTickDuration.Round(time.Microsecond)), x, y, 12, rl.Yellow)
	y += 16

	for phase := telemetry.PhaseSpawn; phase <= telemetry.PhaseTelemetry; phase++ {
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase.String(), stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
