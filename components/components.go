// Package components defines ECS components for the continuous-emitter layer.
package components

import "github.com/go-gl/mathgl/mgl32"

// Position is an emitter's world position.
type Position struct {
	Pos mgl32.Vec3
}

// Emitter keeps a preset-driven particle source alive over time. Particles
// are metered out at Rate per second through a fractional accumulator, so
// low rates still emit eventually instead of rounding to zero every frame.
type Emitter struct {
	Preset   string  // key into systems.Presets
	Rate     float32 // particles per second
	Duration float32 // seconds; 0 = run until removed
	Age      float32
	Accum    float32 // fractional spawn accumulator
	Active   bool
}
