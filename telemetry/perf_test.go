package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorBasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseEmitters)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseIntegrate)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseEmitters]; !ok {
		t.Error("expected emitters phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseIntegrate]; !ok {
		t.Error("expected integrate phase to be tracked")
	}
	if stats.PhaseAvg[PhaseIntegrate] <= stats.PhaseAvg[PhaseEmitters] {
		t.Errorf("integrate avg %v should exceed emitters avg %v",
			stats.PhaseAvg[PhaseIntegrate], stats.PhaseAvg[PhaseEmitters])
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseIntegrate)
		pc.EndTick()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want window size 5", pc.sampleCount)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	pc := NewPerfCollector(10)
	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Errorf("AvgTickDuration = %v, want 0 with no samples", stats.AvgTickDuration)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("phase maps should be non-nil even with no samples")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.StartTick()
	pc.StartPhase(PhaseEmitters)
	pc.StartPhase(PhaseIntegrate)
	pc.StartPhase(PhaseTelemetry)
	pc.EndTick()

	row := pc.Stats().ToCSV(300)

	if row.WindowEnd != 300 {
		t.Errorf("WindowEnd = %d, want 300", row.WindowEnd)
	}
	if row.AvgTickUS < 0 {
		t.Errorf("AvgTickUS = %d, want >= 0", row.AvgTickUS)
	}
}
