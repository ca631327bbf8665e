package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rockdodge/config"
)

// RoundSummary is one finished round.
type RoundSummary struct {
	Round       int     `csv:"round"`
	EndTick     int32   `csv:"end_tick"`
	DurationSec float64 `csv:"duration_sec"`
	Score       int     `csv:"score"`
	RockKills   int     `csv:"rock_kills"`
	EnemyKills  int     `csv:"enemy_kills"`
	Qualified   bool    `csv:"qualified"`
}

// csvFile appends records to one CSV file, writing the header only once.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func (c *csvFile) write(records any, what string) error {
	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.f); err != nil {
			return fmt.Errorf("writing %s: %w", what, err)
		}
		c.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, c.f); err != nil {
		return fmt.Errorf("writing %s: %w", what, err)
	}
	return nil
}

// OutputManager handles structured run output with CSV logging.
// A nil manager is valid and discards everything.
type OutputManager struct {
	dir       string
	telemetry csvFile
	perf      csvFile
	rounds    csvFile
	bookmarks csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	files := []struct {
		name string
		dst  *csvFile
	}{
		{"telemetry.csv", &om.telemetry},
		{"perf.csv", &om.perf},
		{"rounds.csv", &om.rounds},
		{"bookmarks.csv", &om.bookmarks},
	}
	for _, spec := range files {
		f, err := os.Create(filepath.Join(dir, spec.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", spec.name, err)
		}
		spec.dst.f = f
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.write([]WindowStats{stats}, "telemetry")
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}, "perf")
}

// WriteRound writes a finished round to rounds.csv.
func (om *OutputManager) WriteRound(r RoundSummary) error {
	if om == nil {
		return nil
	}
	return om.rounds.write([]RoundSummary{r}, "round")
}

// WriteBookmarks appends bookmarks to bookmarks.csv.
func (om *OutputManager) WriteBookmarks(bookmarks []Bookmark) error {
	if om == nil || len(bookmarks) == 0 {
		return nil
	}
	return om.bookmarks.write(bookmarks, "bookmarks")
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{&om.telemetry, &om.perf, &om.rounds, &om.bookmarks} {
		if c.f == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.f = nil
	}
	return firstErr
}
