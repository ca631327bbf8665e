package systems

// SpawnTimer is an alarm whose delay shrinks the longer a round runs.
// Once it goes off it keeps reporting true until Restart, so a spawn that
// could not be placed is retried on the next tick.
type SpawnTimer struct {
	timer      float32
	decayTimer float32

	delay         float32 // Current delay, shrinks over time
	originalDelay float32 // Delay restored by Restart
	decayDelay    float32 // Seconds between delay reductions; 0 disables decay
	multiplier    float32
}

// Reset restarts both clocks and, for each argument that is not negative,
// replaces the stored setting. The current delay returns to the base delay.
func (t *SpawnTimer) Reset(delay, decayDelay, multiplier float32) {
	if delay >= 0 {
		t.originalDelay = delay
	}
	if decayDelay >= 0 {
		t.decayDelay = decayDelay
	}
	if multiplier >= 0 {
		t.multiplier = multiplier
	}
	t.timer = 0
	t.decayTimer = 0
	t.delay = t.originalDelay
}

// Restart rearms the alarm after a successful spawn. The decay clock and the
// shrunken delay carry on.
func (t *SpawnTimer) Restart() {
	t.timer = 0
}

// Cycle advances the clocks by dt and reports whether the alarm is due.
func (t *SpawnTimer) Cycle(dt float32) bool {
	t.timer += dt
	t.decayTimer += dt
	if t.decayDelay > 0 && t.decayTimer >= t.decayDelay {
		t.decayTimer = 0
		t.delay *= t.multiplier
	}
	return t.timer >= t.delay
}

// Delay returns the current delay.
func (t *SpawnTimer) Delay() float32 {
	return t.delay
}
