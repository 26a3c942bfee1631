package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSetWindNormalizes(t *testing.T) {
	w := NewWindField(1)

	w.SetWind(mgl32.Vec3{0, 0, 10}, 3)

	if got := w.Direction(); got.Sub(mgl32.Vec3{0, 0, 1}).Len() > tol {
		t.Errorf("Direction() = %v, want unit +Z", got)
	}
	if w.Strength() != 3 {
		t.Errorf("Strength() = %f, want 3", w.Strength())
	}
}

func TestSetWindZeroDirectionKeepsPrevious(t *testing.T) {
	w := NewWindField(1)
	w.SetWind(mgl32.Vec3{0, 0, 1}, 2)

	w.SetWind(mgl32.Vec3{}, 5)

	if got := w.Direction(); got.Sub(mgl32.Vec3{0, 0, 1}).Len() > tol {
		t.Errorf("Direction() = %v, want previous +Z", got)
	}
	if w.Strength() != 5 {
		t.Errorf("Strength() = %f, want 5", w.Strength())
	}
}

func TestSetWindClampsNegativeStrength(t *testing.T) {
	w := NewWindField(1)
	w.SetWind(mgl32.Vec3{1, 0, 0}, -4)

	if w.Strength() != 0 {
		t.Errorf("Strength() = %f, want 0", w.Strength())
	}
}

func TestSnapshotWithoutGustIsBaseStrength(t *testing.T) {
	w := NewWindField(1)
	w.SetWind(mgl32.Vec3{1, 0, 0}, 7)

	for i := 0; i < 10; i++ {
		env := w.Snapshot(0.016)
		if env.WindStrength != 7 {
			t.Fatalf("step %d: strength = %f, want 7", i, env.WindStrength)
		}
	}
}

func TestSnapshotGustStaysBounded(t *testing.T) {
	w := NewWindField(42)
	w.SetWind(mgl32.Vec3{1, 0, 0}, 5)
	w.SetGust(2, 0.5)

	varied := false
	for i := 0; i < 500; i++ {
		env := w.Snapshot(0.016)
		if env.WindStrength < 3-tol || env.WindStrength > 7+tol {
			t.Fatalf("step %d: strength %f outside [3, 7]", i, env.WindStrength)
		}
		if env.WindStrength != 5 {
			varied = true
		}
	}
	if !varied {
		t.Error("gusting never deviated from the base strength")
	}
}

func TestSnapshotGustNeverNegative(t *testing.T) {
	w := NewWindField(7)
	w.SetWind(mgl32.Vec3{1, 0, 0}, 0.5)
	w.SetGust(3, 1)

	for i := 0; i < 500; i++ {
		if env := w.Snapshot(0.016); env.WindStrength < 0 {
			t.Fatalf("step %d: negative strength %f", i, env.WindStrength)
		}
	}
}
