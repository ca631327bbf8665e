package components

// Clip names a sprite animation strip.
type Clip uint8

const (
	ClipIdle Clip = iota
	ClipWalk
	ClipAttack
)

// Animation is a per-entity frame clock. Each instance advances on its own,
// so two entities playing the same clip never share a frame counter.
type Animation struct {
	Clip      Clip
	Frame     int
	Frames    int     // Frame count of the current clip
	FrameTime float32 // Seconds per frame
	elapsed   float32
}

// Play switches to clip. Switching restarts from frame 0; replaying the
// current clip keeps its position.
func (a *Animation) Play(clip Clip, frames int) {
	if a.Clip == clip && a.Frames == frames {
		return
	}
	a.Clip = clip
	a.Frames = frames
	a.Frame = 0
	a.elapsed = 0
}

// Advance moves the clock forward by dt, stepping at most one frame per call,
// and wraps at the end of the clip.
func (a *Animation) Advance(dt float32) {
	if a.Frames <= 0 || a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	if a.elapsed <= a.FrameTime {
		return
	}
	a.elapsed = 0
	a.Frame++
	if a.Frame >= a.Frames {
		a.Frame = 0
	}
}
