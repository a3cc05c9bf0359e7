package reveal

import (
	"context"
	"errors"
	"fmt"
)

// DefaultFrameRate is the frame rate used when NewTimeline gets a
// non-positive value.
const DefaultFrameRate = 60

// maxFrames guards against tasks that never complete.
const maxFrames = 1 << 20

// ErrTooManyFrames is returned by Timeline.Run when a task does not
// finish within the frame budget.
var ErrTooManyFrames = errors.New("reveal: task did not finish within frame budget")

// Frame identifies one sampled instant of a timeline.
type Frame struct {
	Index int
	Time  float64 // seconds since the start of the run
}

// Timeline is the animation clock: it samples a task at a fixed frame
// rate. All task code runs on the goroutine that calls Run.
type Timeline struct {
	fps int
}

// NewTimeline creates a timeline ticking fps times per second.
func NewTimeline(fps int) *Timeline {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return &Timeline{fps: fps}
}

// FrameRate returns the number of frames per second.
func (tl *Timeline) FrameRate() int {
	return tl.fps
}

// FrameDuration returns the time between two frames in seconds.
func (tl *Timeline) FrameDuration() float64 {
	return 1 / float64(tl.fps)
}

// Run drives task to completion. onFrame is called once for the initial
// state (frame 0, before the task is advanced) and once after every tick.
// The run stops early if onFrame returns an error or ctx is done; the
// task itself has no cancellation path and is simply no longer advanced.
func (tl *Timeline) Run(ctx context.Context, task Task, onFrame func(Frame) error) error {
	dt := tl.FrameDuration()
	frame := Frame{}
	if err := emit(onFrame, frame); err != nil {
		return err
	}

	for done := false; !done; {
		if err := ctx.Err(); err != nil {
			return err
		}
		if frame.Index >= maxFrames {
			return ErrTooManyFrames
		}
		_, done = task.Advance(dt)
		frame.Index++
		frame.Time = float64(frame.Index) * dt
		if err := emit(onFrame, frame); err != nil {
			return err
		}
	}

	Logger().Debug("timeline finished", "frames", frame.Index+1, "seconds", frame.Time)
	return nil
}

func emit(onFrame func(Frame) error, f Frame) error {
	if onFrame == nil {
		return nil
	}
	if err := onFrame(f); err != nil {
		return fmt.Errorf("reveal: frame %d: %w", f.Index, err)
	}
	return nil
}
