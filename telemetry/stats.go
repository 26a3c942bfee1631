package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated engine statistics for one time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Active-count distribution over the window's ticks
	ActiveMean float64 `csv:"active_mean"`
	ActiveStd  float64 `csv:"active_std"`
	ActiveP50  float64 `csv:"active_p50"`
	ActiveP90  float64 `csv:"active_p90"`
	ActiveMax  float64 `csv:"active_max"`

	// Events during the window
	Spawned int `csv:"spawned"`
	Dropped int `csv:"dropped"` // spawn requests lost to pool exhaustion
	Expired int `csv:"expired"`
	Settled int `csv:"settled"`
	Bounced int `csv:"bounced"`

	DropRate float64 `csv:"drop_rate"`
}

// computeWindowStats summarizes the active-count samples of one window.
func computeWindowStats(samples []float64) WindowStats {
	var ws WindowStats
	if len(samples) == 0 {
		return ws
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	ws.ActiveMean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		ws.ActiveStd = stat.StdDev(sorted, nil)
	}
	ws.ActiveP50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	ws.ActiveP90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	ws.ActiveMax = sorted[len(sorted)-1]
	return ws
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("active_mean", s.ActiveMean),
		slog.Float64("active_p90", s.ActiveP90),
		slog.Float64("active_max", s.ActiveMax),
		slog.Int("spawned", s.Spawned),
		slog.Int("dropped", s.Dropped),
		slog.Int("expired", s.Expired),
		slog.Int("settled", s.Settled),
		slog.Int("bounced", s.Bounced),
		slog.Float64("drop_rate", s.DropRate),
	)
}
