package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rockdodge/components"
)

func TestMovementSystem(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Actor](w)

	spawn := func(x, y, vx float32, kind components.Kind, active bool) ecs.Entity {
		pos := components.Position{X: x, Y: y}
		vel := components.Velocity{X: vx}
		body := components.CircleBody(10)
		actor := components.Actor{Kind: kind, Active: active}
		return mapper.NewEntity(&pos, &vel, &body, &actor)
	}

	rock := spawn(100, 50, -100, components.KindRock, true)
	leaving := spawn(5, 50, -100, components.KindRock, true)
	queued := spawn(700, 50, -100, components.KindRock, true)
	bullet := spawn(635, 50, 400, components.KindBullet, true)
	ship := spawn(100, 50, 300, components.KindShip, true)
	dormant := spawn(100, 50, -100, components.KindEnemy, false)

	s := NewMovementSystem(w, Rect{MaxX: 640, MaxY: 384})
	retired := s.Update(0.5)

	tests := []struct {
		name       string
		e          ecs.Entity
		wantX      float32
		wantActive bool
	}{
		{"rock moves left", rock, 50, true},
		{"rock leaves left edge", leaving, -45, false},
		{"queued rock not retired", queued, 650, true},
		{"bullet leaves right edge", bullet, 835, false},
		{"ship left alone", ship, 100, true},
		{"inactive not moved", dormant, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _, _, actor := mapper.Get(tt.e)
			if pos.X != tt.wantX {
				t.Errorf("X = %v, want %v", pos.X, tt.wantX)
			}
			if actor.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", actor.Active, tt.wantActive)
			}
		})
	}

	if retired != 2 || s.Retired() != 2 {
		t.Errorf("retired = %d, want 2", retired)
	}
}
