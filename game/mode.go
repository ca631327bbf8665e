package game

import (
	"log/slog"

	"github.com/pthm-cable/rockdodge/components"
	"github.com/pthm-cable/rockdodge/telemetry"
)

// Mode is the top-level state of the game.
type Mode uint8

const (
	ModeIntro Mode = iota
	ModePlaying
	ModeEnterName
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModeEnterName:
		return "enter_name"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// fireGrace is how long after a round starts the ship may not fire, so the
// key that started the round does not also shoot.
const fireGrace = 0.5

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) setMode(m Mode) {
	slog.Debug("mode", "from", g.mode.String(), "to", m.String(), "tick", g.tick)
	g.mode = m
	g.modeTime = 0
	if m == ModeEnterName && g.menu != nil {
		g.menu.Reset()
	}
}

// StartRound begins a new round from the intro screen.
func (g *Game) StartRound() {
	if g.mode != ModeIntro {
		return
	}
	g.resetRound()
	g.round++
	g.roundStartTick = g.tick
	g.collector.Restart(g.tick)
	g.setMode(ModePlaying)
	slog.Info("round started", "round", g.round, "tick", g.tick)
}

// SubmitName records the round's score under name and shows the table.
func (g *Game) SubmitName(name string) {
	if g.mode != ModeEnterName {
		return
	}
	rank := g.scores.Insert(name, g.combat.Score())
	if err := g.scores.Save(); err != nil {
		slog.Error("failed to save scores", "error", err)
	}
	slog.Info("score recorded", "name", name, "score", g.combat.Score(), "rank", rank)
	g.setMode(ModeGameOver)
}

// Continue returns from the score table to the intro screen.
func (g *Game) Continue() {
	if g.mode != ModeGameOver {
		return
	}
	g.setMode(ModeIntro)
}

// roundOver reports whether the round may end: no lives left and every
// explosion has finished playing.
func (g *Game) roundOver() bool {
	return g.combat.Lives() <= 0 && !g.particles.IsBusy() && g.emitters.NumActive() == 0
}

// endRound records the round and moves to name entry or the score table.
func (g *Game) endRound() {
	score := g.combat.Score()
	qualified := score > 0 && g.scores.Qualifies(score)

	summary := telemetry.RoundSummary{
		Round:       g.round,
		EndTick:     g.tick,
		DurationSec: g.roundTime,
		Score:       score,
		RockKills:   g.combat.Kills(components.KindRock),
		EnemyKills:  g.combat.Kills(components.KindEnemy),
		Qualified:   qualified,
	}
	// The round's last partial window is written now, so no window spans a menu.
	if g.collector.Pending() {
		g.writeWindow()
	}
	g.logRoundSummary(summary)
	if err := g.outputManager.WriteRound(summary); err != nil {
		slog.Error("failed to write round", "error", err)
	}

	if qualified {
		g.setMode(ModeEnterName)
		return
	}
	g.setMode(ModeGameOver)
}
