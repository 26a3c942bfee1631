// Package systems implements the particle simulation engine: fixed-capacity
// pooled storage, per-type physics integration, boundary collision, wind, and
// the data-driven effect preset layer.
package systems

import "github.com/go-gl/mathgl/mgl32"

// PhysicsType selects which velocity-integration rule a particle follows.
type PhysicsType uint8

const (
	// Weighted particles fall under full gravity (debris, splash droplets).
	Weighted PhysicsType = iota
	// Buoyant particles drift upward against drag (smoke, fire, heat haze).
	Buoyant
	// WindDriven particles couple to the wind field under reduced gravity
	// (rain, snow, drifting dust).
	WindDriven
)

// Sentinel is where inactive slots park their position. It sits far below the
// world so stale rows in the render buffer never show up as a one-frame
// glitch before the next upload.
var Sentinel = mgl32.Vec3{0, -4096, 0}

// DefaultCapacity is the pool size used when the caller passes zero.
const DefaultCapacity = 2000

// Store holds all particle state as parallel arrays aligned by slot index.
// Slot i's entries across every array always describe the same logical
// particle. The store owns layout and allocation only; integration and
// collision live in ParticleSystem.
type Store struct {
	capacity int

	pos      []mgl32.Vec3
	vel      []mgl32.Vec3
	col      []mgl32.Vec3 // RGB, channels in [0,1]
	size     []float32
	life     []float32 // seconds remaining
	lifeMax  []float32 // seconds at spawn
	alpha    []float32
	rot      []float32
	rotSpeed []float32
	ptype    []PhysicsType
	active   []bool

	// Free-index stack: O(1) allocate/release. Kept in descending order
	// after Reset so allocation hands out low indices first.
	free []int32

	activeCount int
	dirty       bool
}

// NewStore creates a store with the given capacity (0 = DefaultCapacity).
// All slots start inactive at the sentinel position.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Store{
		capacity: capacity,
		pos:      make([]mgl32.Vec3, capacity),
		vel:      make([]mgl32.Vec3, capacity),
		col:      make([]mgl32.Vec3, capacity),
		size:     make([]float32, capacity),
		life:     make([]float32, capacity),
		lifeMax:  make([]float32, capacity),
		alpha:    make([]float32, capacity),
		rot:      make([]float32, capacity),
		rotSpeed: make([]float32, capacity),
		ptype:    make([]PhysicsType, capacity),
		active:   make([]bool, capacity),
		free:     make([]int32, 0, capacity),
	}
	s.Reset()
	return s
}

// Reset deactivates every slot and rebuilds the free list.
func (s *Store) Reset() {
	s.free = s.free[:0]
	for i := s.capacity - 1; i >= 0; i-- {
		s.active[i] = false
		s.pos[i] = Sentinel
		s.free = append(s.free, int32(i))
	}
	s.activeCount = 0
	s.dirty = false
}

// allocate pops a free slot index, or -1 if the pool is exhausted.
func (s *Store) allocate() int {
	n := len(s.free)
	if n == 0 {
		return -1
	}
	idx := s.free[n-1]
	s.free = s.free[:n-1]
	return int(idx)
}

// release retires a slot: deactivates it, parks it at the sentinel, and
// returns the index to the free list. Field values become overwritable.
func (s *Store) release(i int) {
	if !s.active[i] {
		return
	}
	s.active[i] = false
	s.pos[i] = Sentinel
	s.life[i] = 0
	s.activeCount--
	s.free = append(s.free, int32(i))
}

// Capacity returns the fixed slot count.
func (s *Store) Capacity() int { return s.capacity }

// ActiveCount returns the number of live slots.
func (s *Store) ActiveCount() int { return s.activeCount }

// Active reports whether slot i holds a live particle.
func (s *Store) Active(i int) bool { return s.active[i] }

// Positions exposes the position array (length = capacity) as the point-cloud
// render buffer. Inactive slots sit at the sentinel and draw as invisible.
func (s *Store) Positions() []mgl32.Vec3 { return s.pos }

// Colors exposes the color array (length = capacity).
func (s *Store) Colors() []mgl32.Vec3 { return s.col }

// Sizes exposes the size array (length = capacity).
func (s *Store) Sizes() []float32 { return s.size }

// Alphas exposes the derived fade factors (length = capacity).
func (s *Store) Alphas() []float32 { return s.alpha }

// ConsumeDirty reports whether any slot was active during the last update
// pass and clears the flag. The rendering collaborator uses this to skip
// walking the buffer while the engine is idle.
func (s *Store) ConsumeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
