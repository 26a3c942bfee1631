package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSpawnRejectsNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		mod  func(*SpawnParams)
	}{
		{"nan position", func(p *SpawnParams) { p.Pos[1] = nan }},
		{"inf velocity", func(p *SpawnParams) { p.Vel[0] = inf }},
		{"nan color", func(p *SpawnParams) { p.Color[2] = nan }},
		{"nan size", func(p *SpawnParams) { p.Size = nan }},
		{"inf lifetime", func(p *SpawnParams) { p.Lifetime = inf }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ps := newTestSystem(4, CollideFlat)
			p := basicSpawn()
			tc.mod(&p)

			if idx, ok := ps.Spawn(p); ok {
				t.Errorf("spawn succeeded with index %d, want rejection", idx)
			}
			if ps.Count() != 0 {
				t.Errorf("Count() = %d, want 0", ps.Count())
			}
		})
	}
}

func TestSpawnClampsFields(t *testing.T) {
	ps := newTestSystem(4, CollideFlat)

	p := basicSpawn()
	p.Size = -1
	p.Lifetime = 0
	idx, ok := ps.Spawn(p)
	if !ok {
		t.Fatal("spawn failed")
	}

	if got := ps.Store().Sizes()[idx]; got != 0 {
		t.Errorf("negative size stored as %f, want 0", got)
	}
	if got := ps.Store().life[idx]; got != ps.Params().MinLifetime {
		t.Errorf("zero lifetime stored as %f, want %f", got, ps.Params().MinLifetime)
	}
}

func TestSpawnInitializesSlot(t *testing.T) {
	ps := newTestSystem(4, CollideFlat)

	p := basicSpawn()
	p.Pos = mgl32.Vec3{1, 2, 3}
	p.Type = Buoyant
	idx, ok := ps.Spawn(p)
	if !ok {
		t.Fatal("spawn failed")
	}

	st := ps.Store()
	if st.Positions()[idx] != p.Pos {
		t.Errorf("position = %v, want %v", st.Positions()[idx], p.Pos)
	}
	if st.Alphas()[idx] != 1.0 {
		t.Errorf("alpha = %f, want 1", st.Alphas()[idx])
	}
	if st.ptype[idx] != Buoyant {
		t.Errorf("type = %d, want Buoyant", st.ptype[idx])
	}
	if !st.Active(idx) {
		t.Error("slot not marked active")
	}
	maxRot := ps.Params().MaxRotationSpeed
	if st.rotSpeed[idx] < -maxRot || st.rotSpeed[idx] > maxRot {
		t.Errorf("rotation speed %f outside [%f, %f]", st.rotSpeed[idx], -maxRot, maxRot)
	}
}
