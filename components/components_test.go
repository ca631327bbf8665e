package components

import "testing"

func TestActivateBumpsGeneration(t *testing.T) {
	var a Actor
	a.Activate()
	ref := a.RefTo(3)

	if !a.Active {
		t.Fatal("Activate did not set Active")
	}
	if ref.Index != 3 || ref.Gen != a.Generation {
		t.Errorf("RefTo(3) = %+v, want index 3 gen %d", ref, a.Generation)
	}

	a.Deactivate()
	a.Activate()
	if ref.Gen == a.Generation {
		t.Error("reactivation should invalidate refs taken in the previous generation")
	}
}

func TestDeactivateClearsColliding(t *testing.T) {
	a := Actor{Active: true, Colliding: true}
	a.Deactivate()
	if a.Active || a.Colliding {
		t.Errorf("after Deactivate: Active=%v Colliding=%v, want both false", a.Active, a.Colliding)
	}
}

func TestNoRef(t *testing.T) {
	if NoRef.IsSet() {
		t.Error("NoRef.IsSet() = true")
	}
	var a Actor
	a.Activate()
	if !a.RefTo(0).IsSet() {
		t.Error("ref to an activated actor at index 0 should be set")
	}
}

func TestWeaponReady(t *testing.T) {
	w := Weapon{Delay: 0.5}

	if !w.Ready(0.1) {
		t.Fatal("fresh weapon should fire immediately")
	}
	if w.Ready(0.3) {
		t.Error("weapon fired before its delay elapsed")
	}
	if !w.Ready(0.25) {
		t.Error("weapon should fire once the delay has elapsed")
	}
}

func TestWeaponCoolThenTrigger(t *testing.T) {
	w := Weapon{Delay: 0.2, Cooldown: 0.2}

	// Holding fire is not required for the cooldown to run out.
	for i := 0; i < 3; i++ {
		w.Cool(0.1)
	}
	if w.Cooldown > 0 {
		t.Fatalf("Cooldown = %v after cooling past the delay", w.Cooldown)
	}
	if !w.Trigger() {
		t.Fatal("Trigger() = false on a cooled weapon")
	}
	if w.Trigger() {
		t.Error("Trigger() fired twice without cooling")
	}
	if w.Cooldown != w.Delay {
		t.Errorf("Cooldown = %v, want re-armed to %v", w.Cooldown, w.Delay)
	}
}

func TestTintFromRGBAClamps(t *testing.T) {
	got := TintFromRGBA([4]int{-5, 128, 300, 255})
	want := Tint{R: 0, G: 128, B: 255, A: 255}
	if got != want {
		t.Errorf("TintFromRGBA = %+v, want %+v", got, want)
	}
}

func TestAnimationAdvance(t *testing.T) {
	tests := []struct {
		name      string
		frames    int
		steps     int
		dt        float32
		wantFrame int
	}{
		{"holds below frame time", 4, 1, 0.1, 0},
		{"one step per call", 4, 1, 0.5, 1},
		{"wraps at end", 4, 4, 0.2, 0},
		{"three of four", 4, 3, 0.2, 3},
		{"empty clip", 0, 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Animation{FrameTime: 0.125}
			a.Play(ClipWalk, tt.frames)
			for i := 0; i < tt.steps; i++ {
				a.Advance(tt.dt)
			}
			if a.Frame != tt.wantFrame {
				t.Errorf("Frame = %d, want %d", a.Frame, tt.wantFrame)
			}
		})
	}
}

func TestAnimationInstancesIndependent(t *testing.T) {
	a := Animation{FrameTime: 0.1}
	b := Animation{FrameTime: 0.1}
	a.Play(ClipWalk, 8)
	b.Play(ClipWalk, 8)

	a.Advance(0.2)
	a.Advance(0.2)
	b.Advance(0.2)

	if a.Frame != 2 || b.Frame != 1 {
		t.Errorf("frames = %d/%d, want 2/1", a.Frame, b.Frame)
	}
}

func TestAnimationPlaySameClipKeepsFrame(t *testing.T) {
	a := Animation{FrameTime: 0.1}
	a.Play(ClipIdle, 4)
	a.Advance(0.2)
	a.Play(ClipIdle, 4)
	if a.Frame != 1 {
		t.Errorf("Frame = %d, want 1 after replaying the same clip", a.Frame)
	}
	a.Play(ClipAttack, 7)
	if a.Frame != 0 {
		t.Errorf("Frame = %d, want 0 after switching clip", a.Frame)
	}
}
