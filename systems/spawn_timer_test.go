package systems

import "testing"

func TestSpawnTimerFiresAndHolds(t *testing.T) {
	var st SpawnTimer
	st.Reset(1, 0, 0.99)

	if st.Cycle(0.5) {
		t.Fatal("fired before delay")
	}
	if !st.Cycle(0.5) {
		t.Fatal("did not fire at delay")
	}
	if !st.Cycle(0.1) {
		t.Error("alarm should keep firing until restarted")
	}

	st.Restart()
	if st.Cycle(0.5) {
		t.Error("fired right after Restart")
	}
}

func TestSpawnTimerDecay(t *testing.T) {
	var st SpawnTimer
	st.Reset(2, 0.5, 0.5)

	if st.Cycle(0.5) {
		t.Fatal("fired too early")
	}
	if st.Delay() != 1 {
		t.Fatalf("Delay() = %v after one decay, want 1", st.Delay())
	}
	if !st.Cycle(0.5) {
		t.Fatal("should fire once the shrunken delay has passed")
	}
	if st.Delay() != 0.5 {
		t.Errorf("Delay() = %v after two decays, want 0.5", st.Delay())
	}

	st.Restart()
	if st.Delay() != 0.5 {
		t.Errorf("Restart changed delay to %v", st.Delay())
	}
}

func TestSpawnTimerResetKeepsNegativeArgs(t *testing.T) {
	var st SpawnTimer
	st.Reset(2, 0.5, 0.5)
	st.Cycle(0.5)

	st.Reset(-1, -1, -1)
	if st.Delay() != 2 {
		t.Errorf("Delay() = %v after Reset, want base delay 2", st.Delay())
	}
	if st.Cycle(0.25) {
		t.Error("Reset should restart the clock")
	}

	st.Reset(3, -1, -1)
	if st.Delay() != 3 {
		t.Errorf("Delay() = %v, want 3", st.Delay())
	}
}
