package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rockdodge/components"
)

// MovementSystem moves every active non-player entity by its velocity and
// retires those that have left the field.
type MovementSystem struct {
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Actor]
	bounds Rect

	retired int
}

// NewMovementSystem creates a movement system for a field of the given bounds.
func NewMovementSystem(w *ecs.World, bounds Rect) *MovementSystem {
	return &MovementSystem{
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Actor](w),
		bounds: bounds,
	}
}

// Update integrates positions by dt and returns how many entities were retired.
func (s *MovementSystem) Update(dt float32) int {
	s.retired = 0
	query := s.filter.Query()
	for query.Next() {
		pos, vel, body, actor := query.Get()
		if !actor.Active || actor.Kind == components.KindShip {
			continue
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		if s.leftField(pos, vel, body) {
			actor.Deactivate()
			s.retired++
		}
	}
	return s.retired
}

// Retired returns how many entities the last Update retired.
func (s *MovementSystem) Retired() int {
	return s.retired
}

// leftField reports whether an entity is fully outside the field on the side
// it is moving towards. Entities queued just off the right edge are moving
// left, so they are not retired before they enter.
func (s *MovementSystem) leftField(pos *components.Position, vel *components.Velocity, body *components.Body) bool {
	b := s.bounds
	switch {
	case vel.X < 0 && pos.X < b.MinX-body.HalfW:
		return true
	case vel.X > 0 && pos.X > b.MaxX+body.HalfW:
		return true
	case vel.Y < 0 && pos.Y < b.MinY-body.HalfH:
		return true
	case vel.Y > 0 && pos.Y > b.MaxY+body.HalfH:
		return true
	}
	return false
}
