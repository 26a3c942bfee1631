// Preset preview tool - interactive effect tuning with sliders.
//
// Usage: go run ./cmd/presetpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/cinder/camera"
	"github.com/pthm-cable/cinder/renderer"
	"github.com/pthm-cable/cinder/systems"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 300
	worldRadius  = 60
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Cinder Preset Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(42))
	params := systems.DefaultParams()
	params.WorldRadius = worldRadius
	ps := systems.NewParticleSystem(systems.DefaultCapacity, params, rng)
	wind := systems.NewWindField(42)

	particleRenderer := renderer.NewParticleRenderer()
	defer particleRenderer.Unload()
	worldRenderer := renderer.NewWorldRenderer(systems.CollideSphere, worldRadius)

	cam := camera.New(worldRadius, worldRadius*2.5)

	names := systems.PresetNames()
	selected := 0
	spawnAt := mgl32.Vec3{0, worldRadius, 0}

	// GUI state
	var windStrength float32
	var gustAmp float32
	rate := float32(30)
	var accum float32

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		// Orbit with right mouse so left clicks stay on the panel
		if rl.IsMouseButtonDown(rl.MouseRightButton) {
			delta := rl.GetMouseDelta()
			cam.Orbit(delta.X*0.005, -delta.Y*0.005)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.Dolly(-wheel * cam.Distance * 0.1)
		}

		// Continuous emission of the selected preset
		pr := systems.Presets[names[selected]]
		accum += rate * dt
		for n := int(accum); n > 0; n-- {
			ps.EmitOne(pr, spawnAt)
			accum--
		}

		wind.SetWind(wind.Direction(), windStrength)
		wind.SetGust(gustAmp, 0.5)
		ps.Update(dt, wind.Snapshot(dt))

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(8, 10, 18, 255))

		pos := cam.Position()
		cam3d := rl.Camera3D{
			Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		}
		rl.BeginMode3D(cam3d)
		worldRenderer.Draw()
		particleRenderer.Draw(cam3d, ps.Store())
		rl.EndMode3D()

		// Control panel
		panelX := float32(windowWidth - panelWidth - 10)
		panelY := float32(10)

		rl.DrawText("Presets", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 30

		for i, name := range names {
			label := name
			if i == selected {
				label = "> " + name
			}
			if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 20, Height: 24}, label) {
				selected = i
			}
			panelY += 30
		}
		panelY += 10

		rl.DrawText("Emission rate (per second)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rate = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "200",
			rate, 0, 200,
		)
		rl.DrawText(fmt.Sprintf("%.0f", rate), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		panelY += 35

		rl.DrawText("Wind strength", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		windStrength = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "20",
			windStrength, 0, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1f", windStrength), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		panelY += 35

		rl.DrawText("Gust amplitude", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		gustAmp = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "10",
			gustAmp, 0, 10,
		)
		rl.DrawText(fmt.Sprintf("%.1f", gustAmp), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		panelY += 35

		rl.DrawText(fmt.Sprintf("Active: %d / %d", ps.Count(), ps.Store().Capacity()),
			int32(panelX), int32(panelY), 16, rl.LightGray)

		rl.DrawText("Right-drag orbit | wheel dolly", 10, windowHeight-25, 14, rl.Gray)

		rl.EndDrawing()
	}
}
