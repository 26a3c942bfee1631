// Package telemetry collects engine statistics over rolling windows and
// writes them to structured logs and CSV files.
package telemetry

import "github.com/pthm-cable/cinder/systems"

// Collector accumulates per-window event counts and per-tick samples.
// All access happens on the frame loop; no locking.
type Collector struct {
	windowStart int32

	spawned int
	dropped int
	expired int
	settled int
	bounced int

	activeSamples []float64
}

// NewCollector creates a collector with its window starting at tick 0.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordEmit accounts for one preset emission: requested-spawned particles
// were dropped on pool exhaustion.
func (c *Collector) RecordEmit(spawned, requested int) {
	c.spawned += spawned
	if requested > spawned {
		c.dropped += requested - spawned
	}
}

// RecordSpawned accounts for directly spawned particles.
func (c *Collector) RecordSpawned(n int) {
	c.spawned += n
}

// RecordStep folds one Update pass into the window.
func (c *Collector) RecordStep(s systems.StepStats) {
	c.expired += s.Expired
	c.settled += s.Settled
	c.bounced += s.Bounced
	c.activeSamples = append(c.activeSamples, float64(s.Active))
}

// Window aggregates the current window into stats and resets the counters.
func (c *Collector) Window(endTick int32, simTime float64) WindowStats {
	stats := computeWindowStats(c.activeSamples)
	stats.WindowStartTick = c.windowStart
	stats.WindowEndTick = endTick
	stats.SimTimeSec = simTime
	stats.Spawned = c.spawned
	stats.Dropped = c.dropped
	stats.Expired = c.expired
	stats.Settled = c.settled
	stats.Bounced = c.bounced
	if total := c.spawned + c.dropped; total > 0 {
		stats.DropRate = float64(c.dropped) / float64(total)
	}

	c.windowStart = endTick
	c.spawned = 0
	c.dropped = 0
	c.expired = 0
	c.settled = 0
	c.bounced = 0
	c.activeSamples = c.activeSamples[:0]

	return stats
}
