// Package renderer draws the particle pool and the world boundary with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cinder/systems"
)

// ParticleRenderer renders the particle pool as camera-facing billboards.
type ParticleRenderer struct {
	tex rl.Texture2D
}

// NewParticleRenderer creates a renderer with a soft radial sprite.
// Requires an open raylib window.
func NewParticleRenderer() *ParticleRenderer {
	img := rl.GenImageGradientRadial(64, 64, 0.0, rl.White, rl.Blank)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &ParticleRenderer{tex: tex}
}

// Draw renders every active particle. Inactive slots sit at the parked
// position and are skipped by the active flags, so the loop walks the full
// pool without branching on liveness in the hot path.
func (r *ParticleRenderer) Draw(cam rl.Camera3D, st *systems.Store) {
	// Nothing moved and nothing is alive: skip the pass entirely.
	if !st.ConsumeDirty() && st.ActiveCount() == 0 {
		return
	}

	pos := st.Positions()
	col := st.Colors()
	sizes := st.Sizes()
	alphas := st.Alphas()

	rl.BeginBlendMode(rl.BlendAlpha)
	for i := range pos {
		if !st.Active(i) {
			continue
		}

		c := col[i]
		tint := rl.NewColor(
			colByte(c.X()),
			colByte(c.Y()),
			colByte(c.Z()),
			colByte(alphas[i]),
		)
		center := rl.NewVector3(pos[i].X(), pos[i].Y(), pos[i].Z())
		rl.DrawBillboard(cam, r.tex, center, sizes[i], tint)
	}
	rl.EndBlendMode()
}

// Unload releases the sprite texture.
func (r *ParticleRenderer) Unload() {
	rl.UnloadTexture(r.tex)
}

// colByte maps a [0,1] channel to a byte, clamping out-of-range values.
func colByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
