package recording

import (
	"fmt"

	"github.com/gogpu/reveal"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginFrame CommandType = iota // Start a frame
	CmdDraw                          // Paint one primitive
	CmdEndFrame                      // Finish a frame
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginFrame: "BeginFrame",
	CmdDraw:       "Draw",
	CmdEndFrame:   "EndFrame",
}

// String returns the command type name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded surface call. Frame is set for every command;
// Draw only for CmdDraw.
type Command struct {
	Type  CommandType
	Frame reveal.Frame
	Draw  reveal.Draw
}

// String returns a short description for logs and test failures.
func (c Command) String() string {
	if c.Type != CmdDraw {
		return fmt.Sprintf("%s#%d", c.Type, c.Frame.Index)
	}
	return fmt.Sprintf("Draw#%d(%s %s a=%.3g [%.3g,%.3g])",
		c.Frame.Index, c.Draw.ID, c.Draw.Mode, c.Draw.Color.A, c.Draw.Start, c.Draw.End)
}
