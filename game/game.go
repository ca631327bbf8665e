package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rockdodge/camera"
	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/config"
	"github.com/pthm-cable/rockdodge/renderer"
	"github.com/pthm-cable/rockdodge/scores"
	"github.com/pthm-cable/rockdodge/systems"
	"github.com/pthm-cable/rockdodge/telemetry"
	"github.com/pthm-cable/rockdodge/ui"
)

// span is a contiguous run of the entity table holding one kind.
type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

// Game holds the complete game state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config

	// Entity mappers
	entityMapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Actor]
	weaponMap    *ecs.Map[components.Weapon]
	animMap      *ecs.Map[components.Animation]

	// Fixed entity table in storage order: ship, rocks, bullets, enemies.
	slots   []ecs.Entity
	items   []systems.Collider
	ship    int
	rocks   span
	bullets span
	enemies span

	// Ship state outside the collider view
	shipThrust components.Velocity
	shipWeapon *components.Weapon
	shipAnim   *components.Animation
	enemyGuns  []*components.Weapon // Indexed by offset into enemies

	// Systems
	particles  *systems.ParticleSystem
	emitters   *systems.EmitterPool
	effects    *systems.Effects
	collision  *systems.CollisionSystem
	react      systems.ReactFunc
	combat     *systems.CombatSystem
	movement   *systems.MovementSystem
	placer     *systems.Placer // Whole field, for the opening rocks and the ship
	edgePlacer *systems.Placer // Strip beyond the right edge, for arrivals
	rockTimer  systems.SpawnTimer
	enemyTimer systems.SpawnTimer
	field      systems.Rect
	control    systems.ShipControl

	// Round state
	mode           Mode
	modeTime       float32
	round          int
	roundStartTick int32
	roundTime      float64
	respawnIn      float32
	lastKills      [2]int // Rock and enemy kills already reported to the collector
	lastClaimed    int
	lastDropped    int

	scores *scores.Table

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Rendering (nil when headless)
	camera           *camera.Camera
	entityRenderer   *renderer.EntityRenderer
	particleRenderer *renderer.ParticleRenderer
	hud              *ui.HUD
	menu             *ui.Menu
	perfPanel        *ui.PerfPanel
	showPerf         bool

	// State
	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int
	debugPool      bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a new game instance. config.Init must have been called.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		cfg:            cfg,
		entityMapper:   ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Actor](world),
		weaponMap:      ecs.NewMap[components.Weapon](world),
		animMap:        ecs.NewMap[components.Animation](world),
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		stepsPerUpdate: stepsPerUpdate,
		debugPool:      opts.DebugPool,
		screenWidth:    cfg.Derived.FieldW32,
		screenHeight:   cfg.Derived.FieldH32,
	}

	g.field = systems.Rect{MaxX: cfg.Derived.FieldW32, MaxY: cfg.Derived.FieldH32}
	g.control = systems.ShipControl{
		Speed:         float32(cfg.Ship.Speed),
		Edge:          float32(cfg.Ship.Edge),
		DecayPct:      float32(cfg.Ship.DecayPct),
		DecayInterval: float32(cfg.Ship.DecayInterval),
	}

	// Effects
	g.particles = systems.NewParticleSystem(cfg.Particles.Capacity)
	g.particles.SetDebug(opts.DebugPool)
	g.emitters = systems.NewEmitterPool(cfg.Particles.Emitters)
	g.effects = systems.NewEffects(g.emitters, systems.PresetsFromConfig(cfg.Effects))

	// Entity table, then everything that holds pointers into it
	g.setupEntities()

	g.collision = systems.NewCollisionSystem()
	g.combat = systems.NewCombatSystem(systems.CombatConfig{
		ShipDamage:    cfg.Ship.Damage,
		RockSpeed:     float32(cfg.Rock.Speed),
		RockMaxRadius: float32(cfg.Rock.RadiusMax),
	}, g.effects)
	g.combat.OnShipHit = g.onShipHit
	g.react = g.combat.Reactor(g.items)
	g.movement = systems.NewMovementSystem(world, g.field)

	g.placer = systems.NewPlacer(g.rng, g.field)
	strip := float32(2 * max(cfg.Rock.RadiusMax, cfg.Enemy.Radius))
	g.edgePlacer = systems.NewPlacer(g.rng, systems.Rect{
		MinX: g.field.MaxX,
		MaxX: g.field.MaxX + strip,
		MaxY: g.field.MaxY,
	})

	// Score table
	g.scores = loadScores(opts.ScoresPath, cfg)

	// Telemetry
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Derived.DT32)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.bookmarks = telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !g.headless {
		g.screenWidth = float32(rl.GetScreenWidth())
		g.screenHeight = float32(rl.GetScreenHeight())
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.field.MaxX, g.field.MaxY)
		g.entityRenderer = renderer.NewEntityRenderer()
		g.particleRenderer = renderer.NewParticleRenderer()
		g.hud = ui.NewHUD()
		g.menu = ui.NewMenu()
		g.perfPanel = ui.NewPerfPanel(10, 60)
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"entities", len(g.slots),
		"particles", cfg.Particles.Capacity,
		"emitters", cfg.Particles.Emitters,
	)

	return g
}

// loadScores opens the score table. A table that cannot be read is replaced
// by an empty one so a corrupt file never stops the game.
func loadScores(path string, cfg *config.Config) *scores.Table {
	switch path {
	case "":
		path = cfg.Scores.Path
	case "-":
		return scores.New("", cfg.Scores.MaxEntries)
	}
	t, err := scores.Load(path, cfg.Scores.MaxEntries)
	if err != nil {
		slog.Warn("failed to load scores, starting empty", "path", path, "error", err)
		return scores.New(path, cfg.Scores.MaxEntries)
	}
	return t
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Score returns the current round's score.
func (g *Game) Score() int {
	return g.combat.Score()
}

// Lives returns the lives left in the current round.
func (g *Game) Lives() int {
	return g.combat.Lives()
}

// Round returns how many rounds have been started.
func (g *Game) Round() int {
	return g.round
}

// Scores returns the score table.
func (g *Game) Scores() *scores.Table {
	return g.scores
}

// Unload releases all resources.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
