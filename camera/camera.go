// Package camera provides an orbit camera for viewing the world sphere.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a fixed target at a given distance. Yaw rotates around the
// world Y axis, pitch tilts toward the poles.
type Camera struct {
	Target   mgl32.Vec3
	Yaw      float32 // radians, around +Y
	Pitch    float32 // radians, clamped short of the poles
	Distance float32

	// Dolly constraints
	MinDistance, MaxDistance float32
}

// maxPitch keeps the camera off the poles so the up vector stays valid.
const maxPitch = float32(math.Pi/2) - 0.05

// New creates a camera orbiting the origin at the given distance.
// worldRadius sets the dolly limits so the camera cannot enter the sphere.
func New(worldRadius, distance float32) *Camera {
	minDist := worldRadius * 1.1
	if distance < minDist {
		distance = minDist
	}
	return &Camera{
		Pitch:       0.4,
		Distance:    distance,
		MinDistance: minDist,
		MaxDistance: worldRadius * 10,
	}
}

// Orbit rotates the camera by the given yaw and pitch deltas (radians).
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch = clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// Dolly moves the camera toward or away from the target. Positive delta
// moves away.
func (c *Camera) Dolly(delta float32) {
	c.Distance = clamp(c.Distance+delta, c.MinDistance, c.MaxDistance)
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl32.Vec3 {
	cosP := float32(math.Cos(float64(c.Pitch)))
	sinP := float32(math.Sin(float64(c.Pitch)))
	cosY := float32(math.Cos(float64(c.Yaw)))
	sinY := float32(math.Sin(float64(c.Yaw)))

	offset := mgl32.Vec3{
		cosP * cosY,
		sinP,
		cosP * sinY,
	}.Mul(c.Distance)
	return c.Target.Add(offset)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
