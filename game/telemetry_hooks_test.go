package game

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rockdodge/config"
	"github.com/pthm-cable/rockdodge/systems"
	"github.com/pthm-cable/rockdodge/telemetry"
)

func TestTelemetrySkipsMenuTime(t *testing.T) {
	dir := t.TempDir()
	g := NewGameWithOptions(Options{
		Seed:           3,
		Headless:       true,
		ScoresPath:     "-",
		StepsPerUpdate: 1,
		OutputDir:      dir,
		StatsWindowSec: 0.5,
	})
	dt := config.Cfg().Derived.DT32
	window := int32(math.Round(0.5 / float64(dt)))

	quietRound(g)
	loseAllLives(g)
	for i := 0; i < 60*20 && g.Mode() == ModePlaying; i++ {
		g.step(dt, systems.ShipInput{})
	}
	if g.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, want game over", g.Mode())
	}
	firstRoundEnd := g.tick - 1
	firstRoundTime := g.roundTime

	for i := int32(0); i < 3*window; i++ {
		g.step(dt, systems.ShipInput{})
	}
	if n := g.collector.Samples(); n != 0 {
		t.Fatalf("collector holds %d samples taken on the score table", n)
	}

	g.Continue()
	quietRound(g)
	start := g.roundStartTick
	for i := int32(0); i <= window; i++ {
		g.step(dt, systems.ShipInput{})
	}
	secondRoundTime := g.roundTime
	g.Unload()

	f, err := os.Open(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var rows []telemetry.WindowStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("telemetry.csv has %d rows, want at least 2", len(rows))
	}

	closing, next := rows[len(rows)-2], rows[len(rows)-1]
	if closing.WindowEndTick != firstRoundEnd {
		t.Errorf("first round's last window ends at %d, want %d", closing.WindowEndTick, firstRoundEnd)
	}
	if next.WindowEndTick != start+window {
		t.Errorf("second round's first window ends at %d, want %d", next.WindowEndTick, start+window)
	}
	if want := firstRoundTime + secondRoundTime; math.Abs(next.SimTimeSec-want) > 1e-4 {
		t.Errorf("SimTimeSec = %v, want %v (round time only)", next.SimTimeSec, want)
	}
}
