package game

// Options holds configuration for game initialization.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool   // Log window and perf stats through slog
	StatsWindowSec float64
	OutputDir      string // Directory for CSV logs and the config snapshot (empty = disabled)
	ScoresPath     string // Score table CSV (empty = use config, "-" = in memory only)
	StepsPerUpdate int    // Ticks per UpdateHeadless call
	DebugPool      bool   // Validate the particle chains after every tick
}

// DefaultOptions returns options for an interactive session.
func DefaultOptions() Options {
	return Options{
		Seed:           42,
		StepsPerUpdate: 1,
	}
}
