package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cinder/systems"
)

// WorldRenderer draws the collision boundary: a wireframe sphere in sphere
// mode, a grid plane in flat mode.
type WorldRenderer struct {
	mode   systems.CollisionMode
	radius float32
}

// NewWorldRenderer creates a boundary renderer for the given mode and radius.
func NewWorldRenderer(mode systems.CollisionMode, radius float32) *WorldRenderer {
	return &WorldRenderer{mode: mode, radius: radius}
}

// Draw renders the boundary. Must be called inside BeginMode3D.
func (r *WorldRenderer) Draw() {
	switch r.mode {
	case systems.CollideSphere:
		rl.DrawSphereWires(rl.NewVector3(0, 0, 0), r.radius, 24, 24, rl.NewColor(60, 80, 110, 255))
	case systems.CollideFlat:
		rl.DrawGrid(40, 4)
	}
}
