package components

import "github.com/pthm-cable/rockdodge/config"

// Body holds the collision circle and the drawn half-extents of an entity.
// Placement keeps the half-extents inside the field.
type Body struct {
	Radius float32
	HalfW  float32
	HalfH  float32
}

// CircleBody returns a body whose drawn extent equals its collision circle.
func CircleBody(radius float32) Body {
	return Body{Radius: radius, HalfW: radius, HalfH: radius}
}

// ShipBody returns the player's body from configuration.
func ShipBody() Body {
	cfg := config.Cfg().Ship
	return Body{
		Radius: float32(cfg.Radius),
		HalfW:  float32(cfg.HalfW),
		HalfH:  float32(cfg.HalfH),
	}
}

// EnemyBody returns an enemy body from configuration.
func EnemyBody() Body {
	return CircleBody(float32(config.Cfg().Enemy.Radius))
}

// BulletBody returns a bullet body from configuration.
func BulletBody() Body {
	return CircleBody(float32(config.Cfg().Bullet.Radius))
}
