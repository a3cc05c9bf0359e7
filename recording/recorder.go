package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/reveal"
)

// ErrUnbalancedFrame is returned for Draw or EndFrame outside a frame and
// for BeginFrame inside one.
var ErrUnbalancedFrame = errors.New("recording: unbalanced frame")

// Recorder captures surface calls as commands.
// Use FinishRecording to obtain an immutable Recording that can be
// replayed to different surfaces.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	frame    reveal.Frame
	inFrame  bool
	frames   int
}

var _ reveal.Surface = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 256)}
}

// BeginFrame records the start of a frame.
func (r *Recorder) BeginFrame(f reveal.Frame) error {
	if r.inFrame {
		return fmt.Errorf("%w: BeginFrame %d inside frame %d", ErrUnbalancedFrame, f.Index, r.frame.Index)
	}
	r.frame = f
	r.inFrame = true
	r.commands = append(r.commands, Command{Type: CmdBeginFrame, Frame: f})
	return nil
}

// Draw records one primitive. The outline is shared, not copied.
func (r *Recorder) Draw(d reveal.Draw) error {
	if !r.inFrame {
		return fmt.Errorf("%w: Draw %q outside a frame", ErrUnbalancedFrame, d.ID)
	}
	d.Stroke = d.Stroke.Clone()
	r.commands = append(r.commands, Command{Type: CmdDraw, Frame: r.frame, Draw: d})
	return nil
}

// EndFrame records the end of a frame.
func (r *Recorder) EndFrame() error {
	if !r.inFrame {
		return fmt.Errorf("%w: EndFrame outside a frame", ErrUnbalancedFrame)
	}
	r.inFrame = false
	r.frames++
	r.commands = append(r.commands, Command{Type: CmdEndFrame, Frame: r.frame})
	return nil
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{commands: r.commands, frames: r.frames}
}

// Recording is an immutable container for recorded commands.
type Recording struct {
	commands []Command
	frames   int
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// FrameCount returns the number of completed frames.
func (r *Recording) FrameCount() int {
	return r.frames
}

// Frame returns the draws of the frame with the given index.
func (r *Recording) Frame(index int) ([]reveal.Draw, bool) {
	var draws []reveal.Draw
	found := false
	for _, c := range r.commands {
		if c.Frame.Index != index {
			continue
		}
		found = true
		if c.Type == CmdDraw {
			draws = append(draws, c.Draw)
		}
	}
	return draws, found
}

// Last returns the draws of the last completed frame.
func (r *Recording) Last() ([]reveal.Draw, bool) {
	for i := len(r.commands) - 1; i >= 0; i-- {
		if r.commands[i].Type == CmdEndFrame {
			return r.Frame(r.commands[i].Frame.Index)
		}
	}
	return nil, false
}

// Playback replays the recording to the given surface.
func (r *Recording) Playback(s reveal.Surface) error {
	for _, c := range r.commands {
		var err error
		switch c.Type {
		case CmdBeginFrame:
			err = s.BeginFrame(c.Frame)
		case CmdDraw:
			err = s.Draw(c.Draw)
		case CmdEndFrame:
			err = s.EndFrame()
		}
		if err != nil {
			return fmt.Errorf("recording: playback %s: %w", c, err)
		}
	}
	return nil
}
