package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/cinder/systems"
)

func TestComputeWindowStats(t *testing.T) {
	samples := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	ws := computeWindowStats(samples)

	if math.Abs(ws.ActiveMean-55) > 0.001 {
		t.Errorf("ActiveMean = %v, want 55", ws.ActiveMean)
	}
	// Empirical quantile: smallest sample with CDF >= p
	if ws.ActiveP50 != 50 {
		t.Errorf("ActiveP50 = %v, want 50", ws.ActiveP50)
	}
	if ws.ActiveP90 != 90 {
		t.Errorf("ActiveP90 = %v, want 90", ws.ActiveP90)
	}
	if ws.ActiveMax != 100 {
		t.Errorf("ActiveMax = %v, want 100", ws.ActiveMax)
	}
	if ws.ActiveStd <= 0 {
		t.Errorf("ActiveStd = %v, want > 0", ws.ActiveStd)
	}
}

func TestComputeWindowStatsEmpty(t *testing.T) {
	ws := computeWindowStats(nil)

	if ws.ActiveMean != 0 || ws.ActiveMax != 0 {
		t.Errorf("empty samples produced mean=%v max=%v, want zeros", ws.ActiveMean, ws.ActiveMax)
	}
}

func TestComputeWindowStatsUnsortedInput(t *testing.T) {
	ws := computeWindowStats([]float64{50, 10, 40, 20, 30})

	if ws.ActiveMax != 50 {
		t.Errorf("ActiveMax = %v, want 50", ws.ActiveMax)
	}
	if ws.ActiveP50 != 30 {
		t.Errorf("ActiveP50 = %v, want 30", ws.ActiveP50)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector()

	c.RecordEmit(8, 10)
	c.RecordSpawned(2)
	c.RecordStep(systems.StepStats{Active: 10, Expired: 1, Settled: 2, Bounced: 3})
	c.RecordStep(systems.StepStats{Active: 20, Expired: 0, Settled: 1, Bounced: 0})

	ws := c.Window(120, 2.0)

	if ws.Spawned != 10 {
		t.Errorf("Spawned = %d, want 10", ws.Spawned)
	}
	if ws.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", ws.Dropped)
	}
	if ws.Expired != 1 || ws.Settled != 3 || ws.Bounced != 3 {
		t.Errorf("events = %d/%d/%d, want 1/3/3", ws.Expired, ws.Settled, ws.Bounced)
	}
	if math.Abs(ws.ActiveMean-15) > 0.001 {
		t.Errorf("ActiveMean = %v, want 15", ws.ActiveMean)
	}
	if math.Abs(ws.DropRate-2.0/12.0) > 0.001 {
		t.Errorf("DropRate = %v, want %v", ws.DropRate, 2.0/12.0)
	}
	if ws.WindowEndTick != 120 || ws.SimTimeSec != 2.0 {
		t.Errorf("window end = %d @ %v, want 120 @ 2.0", ws.WindowEndTick, ws.SimTimeSec)
	}
}

func TestCollectorWindowResets(t *testing.T) {
	c := NewCollector()

	c.RecordEmit(5, 5)
	c.RecordStep(systems.StepStats{Active: 5})
	c.Window(60, 1.0)

	ws := c.Window(120, 2.0)
	if ws.Spawned != 0 || ws.ActiveMean != 0 {
		t.Errorf("second window spawned=%d mean=%v, want zeros", ws.Spawned, ws.ActiveMean)
	}
	if ws.WindowStartTick != 60 {
		t.Errorf("WindowStartTick = %d, want 60", ws.WindowStartTick)
	}
}
