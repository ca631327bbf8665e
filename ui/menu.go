package ui

import (
	"fmt"
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockdodge/scores"
)

// maxNameLen bounds the name typed into the score table.
const maxNameLen = 12

// Menu draws the intro, name entry and score table screens. Each Draw method
// returns true when the player chose to move on.
type Menu struct {
	renderer *Renderer
	name     string
	editing  bool
}

// NewMenu creates a new menu renderer.
func NewMenu() *Menu {
	return &Menu{renderer: NewRenderer(), editing: true}
}

// Reset clears the name box for a new entry.
func (m *Menu) Reset() {
	m.name = ""
	m.editing = true
}

// Name returns the text typed on the name entry screen.
func (m *Menu) Name() string {
	return m.name
}

// DrawIntro draws the title screen.
func (m *Menu) DrawIntro(screenWidth, screenHeight int32) bool {
	r := m.renderer
	t := r.Theme
	y := screenHeight / 4

	r.DrawCentered("ROCK DODGE", screenWidth, y, t.TitleFontSize, t.HighlightColor)
	y += t.TitleFontSize + t.Padding*2
	r.DrawCentered("Arrows or WASD to move, Space to fire", screenWidth, y, t.FontSize*3/2, t.LabelColor)
	y += t.LineHeight
	r.DrawCentered("P pause, F2 colliders, F3 timings", screenWidth, y, t.FontSize*3/2, t.LabelColor)
	y += t.LineHeight * 2

	return gui.Button(r.ButtonRect(screenWidth, y), "Start")
}

// DrawEnterName draws the name entry box for a qualifying score.
func (m *Menu) DrawEnterName(screenWidth, screenHeight int32, score int) bool {
	r := m.renderer
	t := r.Theme
	y := screenHeight / 3

	r.DrawCentered("NEW HIGH SCORE", screenWidth, y, t.HeaderFontSize*3/2, t.HighlightColor)
	y += t.HeaderFontSize*3/2 + t.Padding
	r.DrawCentered(strconv.Itoa(score), screenWidth, y, t.HeaderFontSize, rl.White)
	y += t.HeaderFontSize + t.Padding*2

	box := r.ButtonRect(screenWidth, y)
	if gui.TextBox(box, &m.name, maxNameLen, m.editing) {
		m.editing = !m.editing
	}
	y += int32(t.ButtonHeight) + t.Padding

	if gui.Button(r.ButtonRect(screenWidth, y), "OK") {
		return true
	}
	return false
}

// DrawGameOver draws the score table.
func (m *Menu) DrawGameOver(screenWidth, screenHeight int32, score int, entries []scores.Entry) bool {
	r := m.renderer
	t := r.Theme
	y := screenHeight / 8

	r.DrawCentered("GAME OVER", screenWidth, y, t.TitleFontSize, t.HighlightColor)
	y += t.TitleFontSize + t.Padding
	r.DrawCentered(fmt.Sprintf("Score: %d", score), screenWidth, y, t.HeaderFontSize, rl.White)
	y += t.HeaderFontSize + t.Padding*2

	x := (screenWidth - t.LabelWidth*2) / 2
	for i, e := range entries {
		color := t.ValueColor
		if e.Score == score && score > 0 {
			color = t.HighlightColor
		}
		y = r.DrawLabelValue(x, y, fmt.Sprintf("%2d. %s", i+1, e.Name), strconv.Itoa(e.Score), color)
	}
	y += t.Padding

	return gui.Button(r.ButtonRect(screenWidth, y), "Continue")
}
