package systems

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cinder/components"
)

// EmitterSystem manages long-lived particle sources as ECS entities. One-shot
// effects go straight through Emit; anything that has to keep producing over
// time (weather, smoke columns) lives here so it survives across frames and
// retires itself when its duration runs out.
type EmitterSystem struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Emitter]
	filter *ecs.Filter2[components.Position, components.Emitter]
}

// NewEmitterSystem creates the system over the given ECS world.
func NewEmitterSystem(world *ecs.World) *EmitterSystem {
	return &EmitterSystem{
		world:  world,
		mapper: ecs.NewMap2[components.Position, components.Emitter](world),
		filter: ecs.NewFilter2[components.Position, components.Emitter](world),
	}
}

// Spawn creates an emitter entity. duration 0 runs until Remove.
func (es *EmitterSystem) Spawn(at mgl32.Vec3, preset string, rate, duration float32) ecs.Entity {
	pos := components.Position{Pos: at}
	em := components.Emitter{
		Preset:   preset,
		Rate:     rate,
		Duration: duration,
		Active:   true,
	}
	return es.mapper.NewEntity(&pos, &em)
}

// Remove deletes an emitter entity. Removing an already-dead entity is a
// no-op, so callers can hold stale handles across weather toggles.
func (es *EmitterSystem) Remove(e ecs.Entity) {
	if es.world.Alive(e) {
		es.world.RemoveEntity(e)
	}
}

// Update ages every emitter and meters particles into the engine. Finished
// emitters are collected during iteration and removed after, since the world
// is locked while a query is live. requested-spawned is the number of
// particles lost to pool exhaustion this step.
func (es *EmitterSystem) Update(dt float32, ps *ParticleSystem) (spawned, requested int) {
	var finished []ecs.Entity

	query := es.filter.Query()
	for query.Next() {
		pos, em := query.Get()

		if !em.Active {
			finished = append(finished, query.Entity())
			continue
		}

		em.Age += dt
		if em.Duration > 0 && em.Age >= em.Duration {
			em.Active = false
			finished = append(finished, query.Entity())
			continue
		}

		pr, ok := Presets[em.Preset]
		if !ok {
			finished = append(finished, query.Entity())
			continue
		}

		em.Accum += em.Rate * dt
		n := int(em.Accum)
		em.Accum -= float32(n)

		requested += n
		for i := 0; i < n; i++ {
			if ps.EmitOne(pr, pos.Pos) {
				spawned++
			}
		}
	}

	for _, e := range finished {
		es.Remove(e)
	}
	return spawned, requested
}

// Count returns the number of live emitter entities.
func (es *EmitterSystem) Count() int {
	n := 0
	query := es.filter.Query()
	for query.Next() {
		n++
	}
	return n
}
