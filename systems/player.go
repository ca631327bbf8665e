package systems

import "github.com/pthm-cable/rockdodge/components"

// ShipInput is one tick of player intent, decoupled from the input device.
type ShipInput struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// ShipControl holds the ship handling parameters.
type ShipControl struct {
	Speed         float32 // Thrust set while a direction is held
	Edge          float32 // Closest approach to a border, in multiples of the half-extent
	DecayPct      float32 // Fraction of thrust lost per DecayInterval
	DecayInterval float32
}

// Decay scales v down so that it loses pct of its value every interval
// seconds, pro rata for dt. Long frames stop at zero instead of reversing.
func Decay(v components.Velocity, pct, interval, dt float32) components.Velocity {
	if interval <= 0 {
		return v
	}
	mod := 1 - pct*(dt/interval)
	if mod < 0 {
		mod = 0
	}
	return components.Velocity{X: v.X * mod, Y: v.Y * mod}
}

// ControlShip applies input to the ship: held directions set the thrust, the
// ship moves by it, the thrust decays and the ship is clamped inside the
// field. It returns the clip the ship should play.
func ControlShip(pos *components.Position, thrust *components.Velocity, body components.Body,
	in ShipInput, field Rect, ctl ShipControl, dt float32) components.Clip {

	clip := components.ClipIdle
	switch {
	case in.Left:
		thrust.X = -ctl.Speed
		clip = components.ClipWalk
	case in.Right:
		thrust.X = ctl.Speed
		clip = components.ClipWalk
	}
	switch {
	case in.Up:
		thrust.Y = -ctl.Speed
		clip = components.ClipWalk
	case in.Down:
		thrust.Y = ctl.Speed
		clip = components.ClipWalk
	}
	if in.Fire {
		clip = components.ClipAttack
	}

	pos.X += thrust.X * dt
	pos.Y += thrust.Y * dt
	*thrust = Decay(*thrust, ctl.DecayPct, ctl.DecayInterval, dt)

	// Edge is measured against the full extent, i.e. 2*half.
	mx := body.HalfW * 2 * ctl.Edge
	my := body.HalfH * 2 * ctl.Edge
	pos.X = clampFloat(pos.X, field.MinX+mx, field.MaxX-mx)
	pos.Y = clampFloat(pos.Y, field.MinY+my, field.MaxY-my)
	return clip
}
