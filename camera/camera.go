// Package camera maps the fixed playfield onto the window.
package camera

import "math/rand"

// Camera scales the playfield to fit the window, centres it with letterbox
// bars and applies screen shake.
type Camera struct {
	// Zoom is the uniform world-to-screen scale.
	Zoom float32

	// OffsetX, OffsetY place the field's top-left corner on screen.
	OffsetX, OffsetY float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions (the playfield)
	WorldW, WorldH float32

	// Current shake displacement in screen pixels
	ShakeX, ShakeY float32

	shakeAmount float32
	shakeTime   float32
	shakeLeft   float32
}

// New creates a camera fitting a worldW x worldH field into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize refits the field to a new viewport size.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if c.WorldW <= 0 || c.WorldH <= 0 {
		c.Zoom = 1
		return
	}
	c.Zoom = min(viewportW/c.WorldW, viewportH/c.WorldH)
	c.OffsetX = (viewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts world coordinates to screen coordinates, shake included.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Zoom + c.ShakeX, c.OffsetY + wy*c.Zoom + c.ShakeY
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.OffsetX - c.ShakeX) / c.Zoom, (sy - c.OffsetY - c.ShakeY) / c.Zoom
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(length float32) float32 {
	return length * c.Zoom
}

// IsVisible returns true if a circle at (wx, wy) overlaps the playfield.
// Entities waiting just outside the field are culled.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}

// FieldRect returns the on-screen rectangle of the playfield without shake.
func (c *Camera) FieldRect() (x, y, w, h float32) {
	return c.OffsetX, c.OffsetY, c.WorldW * c.Zoom, c.WorldH * c.Zoom
}

// Shake starts a shake of up to amount world units that fades out over
// duration seconds. A stronger shake replaces a weaker running one.
func (c *Camera) Shake(amount, duration float32) {
	if duration <= 0 || amount <= 0 {
		return
	}
	if c.shakeLeft > 0 && c.currentAmplitude() > amount {
		return
	}
	c.shakeAmount = amount
	c.shakeTime = duration
	c.shakeLeft = duration
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool {
	return c.shakeLeft > 0
}

func (c *Camera) currentAmplitude() float32 {
	if c.shakeTime <= 0 {
		return 0
	}
	return c.shakeAmount * c.shakeLeft / c.shakeTime
}

// Update advances the shake by dt and picks a new random displacement no
// larger than the current amplitude.
func (c *Camera) Update(dt float32, rng *rand.Rand) {
	if c.shakeLeft <= 0 {
		c.ShakeX, c.ShakeY = 0, 0
		return
	}
	c.shakeLeft -= dt
	if c.shakeLeft <= 0 {
		c.shakeLeft = 0
		c.ShakeX, c.ShakeY = 0, 0
		return
	}
	amp := c.currentAmplitude() * c.Zoom
	c.ShakeX = (rng.Float32()*2 - 1) * amp
	c.ShakeY = (rng.Float32()*2 - 1) * amp
}

// Reset stops any shake.
func (c *Camera) Reset() {
	c.shakeLeft = 0
	c.ShakeX, c.ShakeY = 0, 0
}
