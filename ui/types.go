// Package ui draws the HUD, the debug panels and the menu screens.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	HighlightColor rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	ButtonWidth    float32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		HighlightColor: rl.Color{R: 255, G: 220, B: 120, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     140,
		FontSize:       12,
		HeaderFontSize: 20,
		TitleFontSize:  40,
		ButtonWidth:    160,
		ButtonHeight:   32,
	}
}
