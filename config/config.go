// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Particles ParticlesConfig `yaml:"particles"`
	Placement PlacementConfig `yaml:"placement"`
	Entities  EntitiesConfig  `yaml:"entities"`
	Ship      ShipConfig      `yaml:"ship"`
	Rock      RockConfig      `yaml:"rock"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Effects   EffectsConfig   `yaml:"effects"`
	Animation AnimationConfig `yaml:"animation"`
	Scores    ScoresConfig    `yaml:"scores"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The playfield matches the screen size.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds simulation stepping parameters.
type PhysicsConfig struct {
	DT       float64 `yaml:"dt"`        // Fixed step for headless runs (graphical uses frame time)
	MaxFrame float64 `yaml:"max_frame"` // Frame times are clamped to this to avoid tunnelling after stalls
}

// ParticlesConfig sizes the particle pool and emitter array.
type ParticlesConfig struct {
	Capacity int `yaml:"capacity"`
	Emitters int `yaml:"emitters"`
}

// PlacementConfig holds spawn placement parameters.
type PlacementConfig struct {
	RockMinDist  float64 `yaml:"rock_min_dist"`  // Radius multiplier while placing scenery rocks
	PlaceTries   int     `yaml:"place_tries"`    // Samples before giving up for this tick
	InitialRocks int     `yaml:"initial_rocks"`  // Rocks scattered over the field at round start
	RockClear    float64 `yaml:"rock_clearance"` // Radius multiplier for rocks entering from the edge
	EnemyClear   float64 `yaml:"enemy_clearance"`
	EdgeTries    int     `yaml:"edge_tries"`
}

// EntitiesConfig sizes the fixed entity table.
type EntitiesConfig struct {
	Rocks   int `yaml:"rocks"`
	Bullets int `yaml:"bullets"`
	Enemies int `yaml:"enemies"`
	Lives   int `yaml:"lives"`
}

// ShipConfig holds player ship parameters.
type ShipConfig struct {
	Speed         float64 `yaml:"speed"`
	Edge          float64 `yaml:"edge"` // How close to the border the ship may get, in half-extents
	Radius        float64 `yaml:"radius"`
	HalfW         float64 `yaml:"half_w"`
	HalfH         float64 `yaml:"half_h"`
	Health        int     `yaml:"health"`
	DecayPct      float64 `yaml:"decay_pct"`      // Thrust lost per decay interval
	DecayInterval float64 `yaml:"decay_interval"` // Seconds for DecayPct to apply
	FireDelay     float64 `yaml:"fire_delay"`
	RespawnDelay  float64 `yaml:"respawn_delay"` // Seconds after losing a life before the ship reappears
	Damage        int     `yaml:"damage"`        // Damage the ship deals on contact
}

// RockConfig holds rock parameters.
type RockConfig struct {
	Speed           float64 `yaml:"speed"`
	RadiusMin       float64 `yaml:"radius_min"`
	RadiusMax       float64 `yaml:"radius_max"`
	HealthPerRadius float64 `yaml:"health_per_radius"`
}

// BulletConfig holds projectile parameters.
type BulletConfig struct {
	Speed      float64 `yaml:"speed"`
	EnemySpeed float64 `yaml:"enemy_speed"`
	Radius     float64 `yaml:"radius"`
}

// EnemyConfig holds enemy parameters.
type EnemyConfig struct {
	Speed     float64 `yaml:"speed"`
	Radius    float64 `yaml:"radius"`
	Health    int     `yaml:"health"`
	FireDelay float64 `yaml:"fire_delay"`
}

// SpawnConfig holds spawn timer parameters.
type SpawnConfig struct {
	RockDelay       float64 `yaml:"rock_delay"`
	RockDecayDelay  float64 `yaml:"rock_decay_delay"`
	EnemyDelay      float64 `yaml:"enemy_delay"`
	EnemyDecayDelay float64 `yaml:"enemy_decay_delay"`
	DecayMultiplier float64 `yaml:"decay_multiplier"`
}

// ScoringConfig holds points per kill.
type ScoringConfig struct {
	Rock  int `yaml:"rock"`
	Enemy int `yaml:"enemy"`
}

// EffectConfig is one named particle burst preset.
type EffectConfig struct {
	Budget   int     `yaml:"budget"`
	PerBurst int     `yaml:"per_burst"`
	Rate     float64 `yaml:"rate"`
	Color    [4]int  `yaml:"color"` // RGBA, 0-255
	ScaleMin float64 `yaml:"scale_min"`
	ScaleMax float64 `yaml:"scale_max"`
	Life     float64 `yaml:"life"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
}

// EffectsConfig holds the burst presets used by gameplay events.
type EffectsConfig struct {
	EnemySplash  EffectConfig `yaml:"enemy_splash"`
	BulletSplash EffectConfig `yaml:"bullet_splash"`
	RockExplode  EffectConfig `yaml:"rock_explode"`
	ShipExplode  EffectConfig `yaml:"ship_explode"`
	ShakeAmount  float64      `yaml:"shake_amount"`
	ShakeTime    float64      `yaml:"shake_time"`
}

// AnimationConfig holds sprite clip timing.
type AnimationConfig struct {
	FrameTime    float64 `yaml:"frame_time"`
	WalkFrames   int     `yaml:"walk_frames"`
	IdleFrames   int     `yaml:"idle_frames"`
	AttackFrames int     `yaml:"attack_frames"`
}

// ScoresConfig holds score table settings.
type ScoresConfig struct {
	Path       string `yaml:"path"`
	MaxEntries int    `yaml:"max_entries"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	BookmarkHistory     int     `yaml:"bookmark_history"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32     float32 // Physics.DT as float32
	FieldW32 float32 // Screen.Width as float32
	FieldH32 float32 // Screen.Height as float32
	Total    int     // Size of the entity table: ship + rocks + bullets + enemies
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the fixed-size tables cannot work with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Particles.Capacity < 0 || c.Particles.Emitters < 0 {
		return fmt.Errorf("particle capacity and emitter count must not be negative")
	}
	if c.Entities.Rocks < 0 || c.Entities.Bullets < 0 || c.Entities.Enemies < 0 {
		return fmt.Errorf("entity counts must not be negative")
	}
	if c.Rock.RadiusMin > c.Rock.RadiusMax {
		return fmt.Errorf("rock.radius_min %.1f exceeds radius_max %.1f", c.Rock.RadiusMin, c.Rock.RadiusMax)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.FieldW32 = float32(c.Screen.Width)
	c.Derived.FieldH32 = float32(c.Screen.Height)
	c.Derived.Total = 1 + c.Entities.Rocks + c.Entities.Bullets + c.Entities.Enemies

	if c.Scores.MaxEntries <= 0 {
		c.Scores.MaxEntries = 10
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
