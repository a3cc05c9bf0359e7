package reveal

// Option configures glyph construction and diagram assembly.
//
// Example:
//
//	d, err := reveal.Assemble(asset,
//	    reveal.WithFillCurve(reveal.EaseInOutCubic),
//	    reveal.WithStrokeReveal(reveal.DrawOnReveal),
//	)
type Option func(*options)

type options struct {
	fillCurve    FillCurve
	strokeReveal StrokeRevealFunc
	fadeDuration float64 // <= 0 keeps the asset's duration
}

func defaultOptions() options {
	return options{
		fillCurve: DoubleEaseFill,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFillCurve sets the curve mapping fill-phase progress to alpha.
// The default is DoubleEaseFill. nil restores the default.
func WithFillCurve(c FillCurve) Option {
	return func(o *options) {
		if c == nil {
			c = DoubleEaseFill
		}
		o.fillCurve = c
	}
}

// WithStrokeReveal installs a hook for the stroke phase of every fade-in.
// Without it the stroke phase only consumes its share of the duration.
func WithStrokeReveal(fn StrokeRevealFunc) Option {
	return func(o *options) {
		o.strokeReveal = fn
	}
}

// WithFadeDuration overrides the per-glyph fade duration of the asset.
func WithFadeDuration(seconds float64) Option {
	return func(o *options) {
		o.fadeDuration = seconds
	}
}
