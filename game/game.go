// Package game wires the particle engine, emitters, wind, telemetry and the
// raylib viewer into one run loop.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cinder/camera"
	"github.com/pthm-cable/cinder/config"
	"github.com/pthm-cable/cinder/renderer"
	"github.com/pthm-cable/cinder/systems"
	"github.com/pthm-cable/cinder/telemetry"
	"github.com/pthm-cable/cinder/ui"
)

// Options configures game startup behavior.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete engine state.
type Game struct {
	rng *rand.Rand

	particles *systems.ParticleSystem
	wind      *systems.WindField

	// Continuous emitters live in an ECS world
	world    *ecs.World
	emitters *systems.EmitterSystem

	// Weather emitters (zero entity = off)
	rainEmitter ecs.Entity
	snowEmitter ecs.Entity
	rainOn      bool
	snowOn      bool
	gustOn      bool

	// Rendering (nil in headless mode)
	cam              *camera.Camera
	particleRenderer *renderer.ParticleRenderer
	worldRenderer    *renderer.WorldRenderer
	hud              *ui.HUD

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	windowTicks   int32

	// State
	tick           int32
	dt             float32
	paused         bool
	stepsPerUpdate int
	headless       bool
}

// paramsFromConfig maps the loaded configuration onto engine parameters.
func paramsFromConfig(cfg *config.Config) systems.Params {
	p := systems.DefaultParams()
	phys := cfg.Physics

	p.Gravity = float32(phys.Gravity)
	p.BuoyantDrag = float32(phys.BuoyantDrag)
	p.RisingBias = float32(phys.RisingBias)
	p.WindCoupling = float32(phys.WindCoupling)
	p.WindGravityFactor = float32(phys.WindGravityFactor)
	p.HorizontalDrag = float32(phys.HorizontalDrag)
	p.SizeGrowBuoyant = float32(phys.SizeGrowBuoyant)
	p.SizeShrink = float32(phys.SizeShrink)
	p.ColorFade = float32(phys.ColorFade)
	p.ImpactThreshold = float32(phys.ImpactThreshold)
	p.ReflectFactor = float32(phys.ReflectFactor)
	p.BounceDamping = float32(phys.BounceDamping)
	p.GroundBounceMin = float32(phys.GroundBounceMin)
	p.GroundRestitution = float32(phys.GroundRestitution)
	p.MinLifetime = float32(phys.MinLifetime)
	p.MaxRotationSpeed = float32(phys.MaxRotationSpeed)

	p.WorldRadius = cfg.Derived.Radius32
	if cfg.World.CollisionMode == "flat" {
		p.Mode = systems.CollideFlat
	} else {
		p.Mode = systems.CollideSphere
	}
	return p
}

// NewGameWithOptions creates a game instance with the given options.
// In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	world := ecs.NewWorld()

	g := &Game{
		rng:            rng,
		particles:      systems.NewParticleSystem(cfg.Pool.Capacity, paramsFromConfig(cfg), rng),
		wind:           systems.NewWindField(opts.Seed),
		world:          world,
		emitters:       systems.NewEmitterSystem(world),
		collector:      telemetry.NewCollector(),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		dt:             cfg.Derived.DT32,
		stepsPerUpdate: opts.StepsPerUpdate,
		headless:       opts.Headless,
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}

	// Initial wind state from config
	dir := cfg.Wind.Direction
	g.wind.SetWind(
		mgl32.Vec3{float32(dir[0]), float32(dir[1]), float32(dir[2])},
		float32(cfg.Wind.Strength),
	)
	g.wind.SetGust(float32(cfg.Wind.GustAmplitude), float32(cfg.Wind.GustFrequency))
	g.gustOn = cfg.Wind.GustAmplitude > 0

	// Stats window in ticks
	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	g.windowTicks = int32(windowSec / cfg.Physics.DT)
	if g.windowTicks < 1 {
		g.windowTicks = 1
	}

	// Structured output
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.outputManager = om
		if err := g.outputManager.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.cam = camera.New(cfg.Derived.Radius32, cfg.Derived.Radius32*2.5)
		g.particleRenderer = renderer.NewParticleRenderer()
		g.worldRenderer = renderer.NewWorldRenderer(g.particles.Params().Mode, cfg.Derived.Radius32)
		g.hud = ui.NewHUD()
	}

	return g
}

// Update handles input and runs simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	// 1. Continuous emitters produce this tick's particles
	g.perfCollector.StartPhase(telemetry.PhaseEmitters)
	spawned, requested := g.emitters.Update(g.dt, g.particles)
	g.collector.RecordEmit(spawned, requested)

	// 2. Integrate, fade, collide
	g.perfCollector.StartPhase(telemetry.PhaseIntegrate)
	env := g.wind.Snapshot(g.dt)
	stats := g.particles.Update(g.dt, env)

	// 3. Fold results into the stats window
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordStep(stats)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	g.tick++
}

// Burst fires a one-shot preset at the given position.
func (g *Game) Burst(name string, at mgl32.Vec3) {
	pr, ok := systems.Presets[name]
	if !ok {
		slog.Warn("unknown preset", "name", name)
		return
	}
	spawned, requested := g.particles.Emit(pr, at)
	g.collector.RecordEmit(spawned, requested)
}

// surfacePoint returns a random point on the world surface (sphere mode) or
// near the origin on the ground plane (flat mode).
func (g *Game) surfacePoint() mgl32.Vec3 {
	if g.particles.Params().Mode == systems.CollideFlat {
		a := g.rng.Float64() * 2 * math.Pi
		r := math.Sqrt(g.rng.Float64()) * 20
		return mgl32.Vec3{float32(r * math.Cos(a)), 0, float32(r * math.Sin(a))}
	}

	r := g.particles.Params().WorldRadius
	v := mgl32.Vec3{
		float32(g.rng.NormFloat64()),
		float32(g.rng.NormFloat64()),
		float32(g.rng.NormFloat64()),
	}
	if v.Len() < 1e-6 {
		v = mgl32.Vec3{0, 1, 0}
	}
	return v.Normalize().Mul(r)
}

// toggleRain switches the rain emitter on or off.
func (g *Game) toggleRain() {
	cfg := config.Cfg()
	if g.rainOn {
		g.emitters.Remove(g.rainEmitter)
		g.rainOn = false
		return
	}
	at := g.weatherShellPoint(float32(cfg.Weather.ShellHeight))
	g.rainEmitter = g.emitters.Spawn(at, "rain", float32(cfg.Weather.RainRate), 0)
	g.rainOn = true
}

// toggleSnow switches the snow emitter on or off.
func (g *Game) toggleSnow() {
	cfg := config.Cfg()
	if g.snowOn {
		g.emitters.Remove(g.snowEmitter)
		g.snowOn = false
		return
	}
	at := g.weatherShellPoint(float32(cfg.Weather.ShellHeight))
	g.snowEmitter = g.emitters.Spawn(at, "snow", float32(cfg.Weather.SnowRate), 0)
	g.snowOn = true
}

// weatherShellPoint picks a spawn point a shell height above the surface,
// on the camera side so weather is visible.
func (g *Game) weatherShellPoint(height float32) mgl32.Vec3 {
	if g.particles.Params().Mode == systems.CollideFlat {
		return mgl32.Vec3{0, height, 0}
	}

	r := g.particles.Params().WorldRadius + height
	if g.cam != nil {
		return g.cam.Position().Normalize().Mul(r)
	}
	return mgl32.Vec3{0, 1, 0}.Mul(r)
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(8, 10, 18, 255))

	pos := g.cam.Position()
	cam3d := rl.Camera3D{
		Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
		Target:     rl.NewVector3(g.cam.Target.X(), g.cam.Target.Y(), g.cam.Target.Z()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam3d)
	g.worldRenderer.Draw()
	g.particleRenderer.Draw(cam3d, g.particles.Store())
	rl.EndMode3D()

	g.drawHUD()

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// drawHUD renders the overlay text.
func (g *Game) drawHUD() {
	cfg := config.Cfg()
	dir := g.wind.Direction()
	yawDeg := float32(math.Atan2(float64(dir.Z()), float64(dir.X()))) * 180 / math.Pi

	g.hud.Draw(ui.HUDData{
		Title:        "Cinder",
		Tick:         g.tick,
		Active:       g.particles.Count(),
		Capacity:     g.particles.Store().Capacity(),
		Emitters:     g.emitters.Count(),
		WindStrength: g.wind.Strength(),
		WindYawDeg:   yawDeg,
		GustOn:       g.gustOn,
		Speed:        g.stepsPerUpdate,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
	})
	g.hud.DrawControls(int32(cfg.Screen.Height),
		"SPACE pause | B/S/M/P/E/D bursts | R rain | N snow | arrows wind | G gust | drag orbit | wheel dolly | < > speed")
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases resources and closes output files.
func (g *Game) Unload() {
	if g.particleRenderer != nil {
		g.particleRenderer.Unload()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
	}
}
