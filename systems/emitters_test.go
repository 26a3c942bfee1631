package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

func TestEmitterMetersRate(t *testing.T) {
	world := ecs.NewWorld()
	es := NewEmitterSystem(world)
	ps := newTestSystem(512, CollideSphere)

	// 30/s at 60fps: one particle every other tick
	es.Spawn(mgl32.Vec3{0, 60, 0}, "sparks", 30, 0)

	total := 0
	for i := 0; i < 60; i++ {
		spawned, _ := es.Update(1.0/60.0, ps)
		total += spawned
	}

	// Accumulator metering: a second of updates lands within one of rate*t
	if total < 29 || total > 31 {
		t.Errorf("spawned %d particles in 1s, want about 30", total)
	}
}

func TestEmitterFractionalRateAccumulates(t *testing.T) {
	world := ecs.NewWorld()
	es := NewEmitterSystem(world)
	ps := newTestSystem(512, CollideSphere)

	// Under one particle per tick: nothing until the accumulator crosses 1
	es.Spawn(mgl32.Vec3{0, 60, 0}, "sparks", 2, 0)

	spawned, _ := es.Update(0.1, ps)
	if spawned != 0 {
		t.Errorf("spawned %d on first 0.1s update, want 0", spawned)
	}

	total := spawned
	for i := 0; i < 9; i++ {
		n, _ := es.Update(0.1, ps)
		total += n
	}
	if total != 2 {
		t.Errorf("spawned %d in 1s at rate 2, want 2", total)
	}
}

func TestEmitterDurationExpires(t *testing.T) {
	world := ecs.NewWorld()
	es := NewEmitterSystem(world)
	ps := newTestSystem(512, CollideSphere)

	es.Spawn(mgl32.Vec3{0, 60, 0}, "sparks", 60, 0.5)

	for i := 0; i < 60; i++ {
		es.Update(1.0/60.0, ps)
	}

	if es.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after duration elapsed", es.Count())
	}

	// Expired emitter produces nothing further
	spawned, _ := es.Update(1.0/60.0, ps)
	if spawned != 0 {
		t.Errorf("spawned %d after expiry, want 0", spawned)
	}
}

func TestEmitterRemove(t *testing.T) {
	world := ecs.NewWorld()
	es := NewEmitterSystem(world)

	e := es.Spawn(mgl32.Vec3{0, 60, 0}, "sparks", 60, 0)
	if es.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", es.Count())
	}

	es.Remove(e)
	if es.Count() != 0 {
		t.Errorf("Count() = %d, want 0", es.Count())
	}
	// The entity itself must be gone, not just stripped of components
	if world.Alive(e) {
		t.Error("removed emitter entity still alive")
	}

	// Removing twice is a no-op
	es.Remove(e)
}

func TestEmitterUnknownPresetRetires(t *testing.T) {
	world := ecs.NewWorld()
	es := NewEmitterSystem(world)
	ps := newTestSystem(512, CollideSphere)

	es.Spawn(mgl32.Vec3{0, 60, 0}, "no-such-preset", 60, 0)

	spawned, _ := es.Update(1.0/60.0, ps)
	if spawned != 0 {
		t.Errorf("spawned %d from unknown preset, want 0", spawned)
	}
	if es.Count() != 0 {
		t.Errorf("Count() = %d, want 0", es.Count())
	}
}

func TestEmitterReportsDrops(t *testing.T) {
	world := ecs.NewWorld()
	es := NewEmitterSystem(world)
	ps := newTestSystem(5, CollideSphere)

	es.Spawn(mgl32.Vec3{0, 60, 0}, "sparks", 600, 0)

	spawned, requested := es.Update(1.0/60.0, ps)
	if requested != 10 {
		t.Errorf("requested = %d, want 10", requested)
	}
	if spawned != 5 {
		t.Errorf("spawned = %d, want pool capacity 5", spawned)
	}
}
