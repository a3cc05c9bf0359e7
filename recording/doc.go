// Package recording captures the frames a diagram paints as commands.
//
// A Recorder is a reveal.Surface that stores every BeginFrame, Draw and
// EndFrame it receives instead of rendering them. FinishRecording returns
// an immutable Recording that can be inspected in tests or replayed to any
// other surface:
//
//	rec := recording.NewRecorder()
//	_ = tl.Run(ctx, diagram.Reveal(), func(f reveal.Frame) error {
//	    return diagram.PaintFrame(rec, f)
//	})
//	r := rec.FinishRecording()
//
//	img, _ := surface.NewImageSurface(opts)
//	_ = r.Playback(img)
//
// Importing the package registers the recorder with the surface registry
// under the name "recording".
package recording
