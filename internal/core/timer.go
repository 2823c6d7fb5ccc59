package core

import "time"

// Cadence fires once every N frames. It decouples simulation speed from the
// rate at which the front end polls input and renders.
type Cadence struct {
	every int
	count int
}

// NewCadence returns a Cadence that fires on every n-th call to Advance.
func NewCadence(n int) *Cadence {
	if n <= 0 {
		n = 1
	}
	return &Cadence{every: n}
}

// Advance counts one frame and reports whether a tick is due.
func (c *Cadence) Advance() bool {
	c.count++
	if c.count >= c.every {
		c.count = 0
		return true
	}
	return false
}

// Reset drops any partially counted frames.
func (c *Cadence) Reset() { c.count = 0 }

// FrameClock paces a render loop at a steady frames-per-second rate.
type FrameClock struct {
	frame time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock constructs a FrameClock targeting the given FPS.
func NewFrameClock(fps int) *FrameClock {
	fc := &FrameClock{now: time.Now, sleep: time.Sleep}
	fc.SetFPS(fps)
	return fc
}

// SetFPS changes the frame rate. Non-positive values fall back to 30.
func (f *FrameClock) SetFPS(fps int) {
	if fps <= 0 {
		fps = 30
	}
	f.frame = time.Second / time.Duration(fps)
}

// Frame returns the target duration of one frame.
func (f *FrameClock) Frame() time.Duration { return f.frame }

// Wait blocks for whatever remains of the current frame and starts the next.
func (f *FrameClock) Wait() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	if remaining := f.frame - now.Sub(f.last); remaining > 0 {
		f.sleep(remaining)
		now = now.Add(remaining)
	}
	f.last = now
}
