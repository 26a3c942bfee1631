// Package ui renders the heads-up display for the viewer.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Tick         int32
	Active       int
	Capacity     int
	Emitters     int
	WindStrength float32
	WindYawDeg   float32
	GustOn       bool
	Speed        int
	FPS          int32
	Paused       bool
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Particles: %d / %d | Emitters: %d", data.Active, data.Capacity, data.Emitters),
		10, 35, 16, rl.LightGray,
	)

	gust := "off"
	if data.GustOn {
		gust = "on"
	}
	rl.DrawText(
		fmt.Sprintf("Wind: %.1f @ %.0f deg (gust %s)", data.WindStrength, data.WindYawDeg, gust),
		10, 55, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 75, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 95, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
