package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawCentered draws text horizontally centred on a screen of the given width.
func (r *Renderer) DrawCentered(text string, screenWidth, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (screenWidth-w)/2, y, size, color)
}

// DrawLabelValue draws a label and value on the same line and returns the next Y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string, color rl.Color) int32 {
	rl.DrawText(label, x, y, r.Theme.FontSize*3/2, color)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize*3/2, color)
	return y + r.Theme.LineHeight
}

// ButtonRect returns a theme-sized button centred horizontally at y.
func (r *Renderer) ButtonRect(screenWidth, y int32) rl.Rectangle {
	return rl.Rectangle{
		X:      (float32(screenWidth) - r.Theme.ButtonWidth) / 2,
		Y:      float32(y),
		Width:  r.Theme.ButtonWidth,
		Height: r.Theme.ButtonHeight,
	}
}
