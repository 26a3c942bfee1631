package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Wind control steps per frame while a key is held.
const (
	windYawStep      = 0.02 // radians
	windStrengthStep = 0.1
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.handleBurstInput()
	g.handleWeatherInput()
	g.handleWindInput()
	g.handleCameraInput()
}

// handleBurstInput fires one-shot presets at a random surface point.
func (g *Game) handleBurstInput() {
	keys := []struct {
		key    int32
		preset string
	}{
		{rl.KeyB, "burst"},
		{rl.KeyS, "sparks"},
		{rl.KeyM, "smoke"},
		{rl.KeyP, "splash"},
		{rl.KeyE, "embers"},
		{rl.KeyD, "dust"},
	}
	for _, k := range keys {
		if rl.IsKeyPressed(k.key) {
			g.Burst(k.preset, g.surfacePoint())
		}
	}
}

// handleWeatherInput toggles the continuous weather emitters.
func (g *Game) handleWeatherInput() {
	if rl.IsKeyPressed(rl.KeyR) {
		g.toggleRain()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.toggleSnow()
	}
}

// handleWindInput steers the wind field: left/right rotate the direction
// around Y, up/down change strength, G toggles gusting.
func (g *Game) handleWindInput() {
	dir := g.wind.Direction()
	strength := g.wind.Strength()
	yaw := float32(math.Atan2(float64(dir.Z()), float64(dir.X())))
	changed := false

	if rl.IsKeyDown(rl.KeyLeft) {
		yaw -= windYawStep
		changed = true
	}
	if rl.IsKeyDown(rl.KeyRight) {
		yaw += windYawStep
		changed = true
	}
	if rl.IsKeyDown(rl.KeyUp) {
		strength += windStrengthStep
		changed = true
	}
	if rl.IsKeyDown(rl.KeyDown) {
		strength -= windStrengthStep
		if strength < 0 {
			strength = 0
		}
		changed = true
	}

	if changed {
		newDir := mgl32.Vec3{
			float32(math.Cos(float64(yaw))),
			0,
			float32(math.Sin(float64(yaw))),
		}
		g.wind.SetWind(newDir, strength)
	}

	if rl.IsKeyPressed(rl.KeyG) {
		g.gustOn = !g.gustOn
		if g.gustOn {
			g.wind.SetGust(2.0, 0.5)
		} else {
			g.wind.SetGust(0, 0)
		}
	}
}

// handleCameraInput processes orbit and dolly controls.
func (g *Game) handleCameraInput() {
	if g.cam == nil {
		return
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		g.cam.Orbit(delta.X*0.005, -delta.Y*0.005)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Dolly(-wheel * g.cam.Distance * 0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Yaw = 0
		g.cam.Pitch = 0.4
	}
}
