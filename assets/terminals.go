package assets

import "github.com/gogpu/reveal"

// Authored colors.
const (
	Pink  = "rgb(96.42334%,52.000427%,78.35083%)"
	Green = "rgb(56.001282%,82.843018%,35.496521%)"
	White = "rgb(100%,100%,100%)"
)

// Connector styling shared by every authored connector.
const (
	ConnectorWidth      = 0.3985
	ConnectorMiterLimit = 10
)

// ConnectorDash is the dash pattern of the dashed connectors.
var ConnectorDash = []float64{2.78952, 1.59401}

// Connector curve and arrowhead data, in the local space of their matrix.
const (
	curve4      = "M -25.495344 21.234625 C -9.62425 30.863531 5.653094 31.195563 21.578875 22.453375"
	arrowhead5  = "M -2.072826 2.392012 C -1.694403 0.955427 -0.850274 0.277938 0.00124617 0.00108884 C -0.851651 -0.279815 -1.692937 -0.955386 -2.073359 -2.389552"
	curve7      = "M -33.268781 25.152594 C -33.628156 63.176031 31.129656 63.785406 31.481219 26.160406"
	arrowhead8  = "M -2.072788 2.392088 C -1.691734 0.954783 -0.850355 0.278845 -0.00132533 0.00130758 C -0.8517 -0.279787 -1.694066 -0.955523 -2.070861 -2.38961"
	loop11      = "M -39.909406 10.105719 C -103.760969 -53.745844 -104.893781 88.371344 -41.323469 24.797125"
	arrowhead   = "M -2.07311 2.390239 C -1.694628 0.956672 -0.849365 0.277207 0.00140448 0.00102274 C -0.849342 -0.280758 -1.694547 -0.954771 -2.070145 -2.391132"
	curve17     = "M 21.926531 11.230719 C 5.653094 2.297125 -9.62425 2.629156 -25.1555 12.051031"
	arrowhead18 = "M -2.073892 2.391692 C -1.691708 0.955831 -0.850953 0.277919 -0.000754398 -0.00132323 C -0.850912 -0.279485 -1.6931 -0.954893 -2.073322 -2.391796"
)

// Authored placement matrices.
var (
	flipY = reveal.NewMatrix(1, 0, 0, -1, 105.093, 95.844)

	matrix5  = reveal.NewMatrix(0.87663, 0.48108, 0.48108, -0.87663, 126.84604, 73.48473)
	matrix8  = reveal.NewMatrix(0.0094, 0.99991, 0.99991, -0.0094, 136.57683, 69.88415)
	matrix12 = reveal.NewMatrix(0.70706, 0.70712, 0.70712, -0.70706, 63.90844, 71.18723)
	matrix16 = reveal.NewMatrix(-0.50002, 0.866, 0.866, 0.50002, 76.77458, 70.52056)
	matrix18 = reveal.NewMatrix(-0.85493, -0.51865, -0.51865, 0.85493, 79.7682, 83.68824)
)

// TerminalsName is the name of the terminals asset.
const TerminalsName = "terminals"

// Terminals returns the terminals diagram: nine glyphs connected by dashed
// curves with arrowheads, revealed one glyph per second.
func Terminals() reveal.Asset {
	return reveal.Asset{
		Name: TerminalsName,
		Container: reveal.ContainerSpec{
			Scale:  20,
			Offset: reveal.Pt(-900, -1000),
		},
		Elements: []reveal.ElementSpec{
			reveal.GlyphSpec{ID: "t1", Data: outlineT, Color: Pink, Position: reveal.Pt(68.815, 81.658)},
			reveal.GlyphSpec{ID: "t2", Data: outlineT, Color: Green, Position: reveal.Pt(131.786, 81.658)},
			reveal.GlyphSpec{ID: "t3", Data: outlinePrime, Color: Green, Position: reveal.Pt(138.578, 78.042)},
			dashed("p4", curve4, flipY, Green),
			arrow("p5", arrowhead5, matrix5, Green),
			reveal.GlyphSpec{ID: "t6", Data: outlineF, Color: Green, Position: reveal.Pt(101.289, 64.653)},
			solid("p7", curve7, flipY, White),
			withoutScale(arrow("p8", arrowhead8, matrix8, White)),
			reveal.GlyphSpec{ID: "t9", Data: outlineF, Color: White, Position: reveal.Pt(100.44, 39.389)},
			reveal.GlyphSpec{ID: "t10", Data: outlinePrimeSmall, Color: White, Position: reveal.Pt(104.731, 36.858)},
			dashed("p11", loop11, flipY, Pink),
			arrow("p12", arrowhead, matrix12, Pink),
			reveal.GlyphSpec{ID: "t13a", Data: outlineFourA, Color: Pink, Position: reveal.Pt(2.414, 80.425)},
			reveal.GlyphSpec{ID: "t13b", Data: outlineFourB, Color: Pink, Position: reveal.Pt(4.725117, 80.425)},
			reveal.GlyphSpec{ID: "t14", Data: outlineFive, Color: Pink, Position: reveal.Pt(9.18, 81.482)},
			dashed("p15", loop11, flipY, Pink),
			arrow("p16", arrowhead, matrix16, Pink),
			dashed("p17", curve17, flipY, Pink),
			arrow("p18", arrowhead18, matrix18, Pink),
		},
		RevealOrder:  []string{"t1", "t2", "t3", "t6", "t9", "t10", "t13a", "t13b", "t14"},
		FadeDuration: 1.0,
	}
}

func solid(id, data string, m reveal.Matrix, color string) reveal.ConnectorSpec {
	return reveal.ConnectorSpec{
		ID:         id,
		Data:       data,
		Matrix:     m,
		Color:      color,
		Width:      ConnectorWidth,
		Cap:        "butt",
		Join:       "miter",
		MiterLimit: ConnectorMiterLimit,
	}
}

func dashed(id, data string, m reveal.Matrix, color string) reveal.ConnectorSpec {
	c := solid(id, data, m, color)
	c.Dash = append([]float64(nil), ConnectorDash...)
	return c
}

func arrow(id, data string, m reveal.Matrix, color string) reveal.ConnectorSpec {
	c := solid(id, data, m, color)
	c.Cap = "round"
	c.Join = "round"
	return c
}

// withoutScale keeps only the rotation, skew and translation of the
// matrix; the arrowhead of p8 is authored that way.
func withoutScale(c reveal.ConnectorSpec) reveal.ConnectorSpec {
	c.IgnoreScale = true
	return c
}
