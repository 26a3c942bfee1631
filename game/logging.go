package game

import "log/slog"

// flushTelemetry closes the stats window every windowTicks ticks, logging and
// writing the aggregates.
func (g *Game) flushTelemetry() {
	if g.tick == 0 || g.tick%g.windowTicks != 0 {
		return
	}

	simTime := float64(g.tick) * float64(g.dt)
	stats := g.collector.Window(g.tick, simTime)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		slog.Info("window stats", "stats", stats)
		slog.Info("perf stats", "perf", perfStats)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
