package core

import "time"

// FixedStep paces simulation frames at a steady rate independent of the
// display refresh rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given number of
// frames per second. The first ShouldStep call always reports true.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the frame rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one frame. At
// most one frame is released per call; backlog beyond one interval is dropped
// so a slow frame does not trigger a burst of catch-up frames.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
