package recording

import (
	"github.com/gogpu/reveal"
	"github.com/gogpu/reveal/surface"
)

func init() {
	surface.Register("recording", 0, func(surface.Options) (reveal.Surface, error) {
		return NewRecorder(), nil
	}, nil)
}
