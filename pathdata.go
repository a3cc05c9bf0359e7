package reveal

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// argCounts is the number of numeric arguments each command consumes.
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'Z': 0,
}

// ParsePathData parses SVG path data ("M 1 2 C 3 4 5 6 7 8 Z").
//
// Absolute and relative moveto, lineto, horizontal/vertical lineto, cubic
// and quadratic Beziers (including the smooth S/T forms) and closepath are
// supported. Elliptical arcs are rejected: authored glyph and connector
// outlines are exported as Beziers.
//
// Errors wrap ErrMalformedPath and report the byte offset of the problem.
func ParsePathData(s string) (*Path, error) {
	data := []byte(s)
	p := NewPath()

	i := skipSeparators(data, 0)
	if i == len(data) {
		return p, nil
	}
	if !isCommand(data[i]) || (data[i] != 'M' && data[i] != 'm') {
		return nil, fmt.Errorf("%w: must start with a moveto at offset %d", ErrMalformedPath, i)
	}

	var (
		args    [6]float64
		cur     Point // current point
		ctrl    Point // last cubic control point, for S
		quad    Point // last quadratic control point, for T
		prevCmd byte
		cmd     byte
	)

	for {
		i = skipSeparators(data, i)
		if i >= len(data) {
			break
		}

		if isCommand(data[i]) {
			cmd = data[i]
			i++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedPath, data[i], i)
		}

		upper := cmd &^ 0x20
		n, ok := argCounts[upper]
		if !ok {
			return nil, fmt.Errorf("%w: unsupported command %q at offset %d", ErrMalformedPath, cmd, i-1)
		}
		for j := 0; j < n; j++ {
			i = skipSeparators(data, i)
			v, used := strconv.ParseFloat(data[i:])
			if used == 0 {
				return nil, fmt.Errorf("%w: command %q needs %d numbers, missing one at offset %d", ErrMalformedPath, cmd, n, i)
			}
			args[j] = v
			i += used
		}

		rel := cmd != upper
		var origin Point
		if rel {
			origin = cur
		}

		switch upper {
		case 'M':
			cur = origin.Add(Pt(args[0], args[1]))
			p.MoveTo(cur.X, cur.Y)
			// Extra coordinate pairs after a moveto are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			cur = origin.Add(Pt(args[0], args[1]))
			p.LineTo(cur.X, cur.Y)
		case 'H':
			cur.X = origin.X + args[0]
			p.LineTo(cur.X, cur.Y)
		case 'V':
			cur.Y = origin.Y + args[0]
			p.LineTo(cur.X, cur.Y)
		case 'C':
			c1 := origin.Add(Pt(args[0], args[1]))
			c2 := origin.Add(Pt(args[2], args[3]))
			cur = origin.Add(Pt(args[4], args[5]))
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, cur.X, cur.Y)
			ctrl = c2
		case 'S':
			c1 := cur
			if u := prevCmd &^ 0x20; u == 'C' || u == 'S' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			c2 := origin.Add(Pt(args[0], args[1]))
			cur = origin.Add(Pt(args[2], args[3]))
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, cur.X, cur.Y)
			ctrl = c2
		case 'Q':
			c := origin.Add(Pt(args[0], args[1]))
			cur = origin.Add(Pt(args[2], args[3]))
			p.QuadraticTo(c.X, c.Y, cur.X, cur.Y)
			quad = c
		case 'T':
			c := cur
			if u := prevCmd &^ 0x20; u == 'Q' || u == 'T' {
				c = cur.Mul(2).Sub(quad)
			}
			cur = origin.Add(Pt(args[0], args[1]))
			p.QuadraticTo(c.X, c.Y, cur.X, cur.Y)
			quad = c
		case 'Z':
			p.Close()
			cur = p.StartPoint()
		}
		prevCmd = upper
	}

	for _, v := range p.elements {
		if !elementFinite(v) {
			return nil, fmt.Errorf("%w: non-finite coordinate", ErrMalformedPath)
		}
	}
	return p, nil
}

// MustParsePathData is like ParsePathData but panics on error.
func MustParsePathData(s string) *Path {
	p, err := ParsePathData(s)
	if err != nil {
		panic(err)
	}
	return p
}

func isCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func skipSeparators(data []byte, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			i++
		default:
			return i
		}
	}
	return i
}

func elementFinite(e PathElement) bool {
	switch e := e.(type) {
	case MoveTo:
		return e.Point.IsFinite()
	case LineTo:
		return e.Point.IsFinite()
	case QuadTo:
		return e.Control.IsFinite() && e.Point.IsFinite()
	case CubicTo:
		return e.Control1.IsFinite() && e.Control2.IsFinite() && e.Point.IsFinite()
	}
	return true
}
