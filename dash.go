package reveal

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths, in the
// user-space units of the outline being stroked.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is logically duplicated ([5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or none is positive.
//
//	NewDash(2.78952, 1.59401) // dashed connector
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// Apply splits polylines into the "on" intervals of the pattern.
// The pattern restarts at every subpath, as in SVG. A nil or solid dash
// returns pls unchanged.
func (d *Dash) Apply(pls []Polyline) []Polyline {
	if !d.IsDashed() {
		return pls
	}
	arr := d.effectiveArray()
	cycle := d.PatternLength()

	var out []Polyline
	for _, pl := range pls {
		if len(pl.Points) < 2 {
			continue
		}
		// Locate the starting dash index and the distance left in it.
		offset := math.Mod(d.Offset, cycle)
		if offset < 0 {
			offset += cycle
		}
		idx := 0
		for offset >= arr[idx] {
			offset -= arr[idx]
			idx = (idx + 1) % len(arr)
		}
		left := arr[idx] - offset
		on := idx%2 == 0

		var cur []Point
		if on {
			cur = append(cur, pl.Points[0])
		}
		for i := 1; i < len(pl.Points); i++ {
			a, b := pl.Points[i-1], pl.Points[i]
			seg := a.Distance(b)
			pos := 0.0
			for seg-pos > left {
				pos += left
				pt := a.Lerp(b, pos/seg)
				if on {
					cur = append(cur, pt)
					out = append(out, Polyline{Points: cur})
					cur = nil
				} else {
					cur = []Point{pt}
				}
				on = !on
				idx = (idx + 1) % len(arr)
				left = arr[idx]
			}
			left -= seg - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) >= 2 {
			out = append(out, Polyline{Points: cur})
		}
	}
	return out
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
