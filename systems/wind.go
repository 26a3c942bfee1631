package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Environment is the read-only snapshot of external state consumed by one
// Update pass. Passing it explicitly keeps the pass side-effect-free with
// respect to collaborator state: the weather system mutates the WindField,
// the integrator only ever sees a frozen copy.
type Environment struct {
	WindDir      mgl32.Vec3 // unit vector
	WindStrength float32    // >= 0, gust already applied
}

// WindField is the single shared wind state, owned by the frame loop and
// mutated by the weather collaborator at any time between updates.
// Optionally modulates strength with coherent noise gusts.
type WindField struct {
	dir      mgl32.Vec3
	strength float32

	gustAmp  float32
	gustFreq float32
	noise    opensimplex.Noise
	t        float64
}

// NewWindField creates a calm wind field blowing along +X.
func NewWindField(seed int64) *WindField {
	return &WindField{
		dir:      mgl32.Vec3{1, 0, 0},
		strength: 0,
		gustFreq: 0.1,
		noise:    opensimplex.New(seed),
	}
}

// SetWind normalizes dir and stores it with the given strength. A
// zero-length direction keeps the previous direction; negative strength is
// clamped to zero.
func (w *WindField) SetWind(dir mgl32.Vec3, strength float32) {
	if dir.Len() > 1e-6 {
		w.dir = dir.Normalize()
	}
	if strength < 0 {
		strength = 0
	}
	w.strength = strength
}

// SetGust configures noise-driven strength modulation. amp is the maximum
// deviation from the base strength; zero disables gusting.
func (w *WindField) SetGust(amp, freq float32) {
	if amp < 0 {
		amp = 0
	}
	w.gustAmp = amp
	if freq > 0 {
		w.gustFreq = freq
	}
}

// Direction returns the current unit direction.
func (w *WindField) Direction() mgl32.Vec3 { return w.dir }

// Strength returns the base strength without gust modulation.
func (w *WindField) Strength() float32 { return w.strength }

// Snapshot advances the gust clock by dt and returns the environment the
// integrator should see this frame.
func (w *WindField) Snapshot(dt float32) Environment {
	w.t += float64(dt)

	strength := w.strength
	if w.gustAmp > 0 {
		// Eval2 is in [-1,1]; deviation stays within ±gustAmp.
		gust := float32(w.noise.Eval2(w.t*float64(w.gustFreq), 0))
		strength += w.gustAmp * gust
		if strength < 0 {
			strength = 0
		}
	}

	return Environment{WindDir: w.dir, WindStrength: strength}
}
