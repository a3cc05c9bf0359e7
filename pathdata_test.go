package reveal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParsePathData(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []PathElement
	}{
		{
			name: "empty",
			data: "  ",
			want: nil,
		},
		{
			name: "absolute lines",
			data: "M 1 2 L 3 4 Z",
			want: []PathElement{MoveTo{Pt(1, 2)}, LineTo{Pt(3, 4)}, Close{}},
		},
		{
			name: "relative lines",
			data: "m1,2 l3,4 l-1-1",
			want: []PathElement{MoveTo{Pt(1, 2)}, LineTo{Pt(4, 6)}, LineTo{Pt(3, 5)}},
		},
		{
			name: "implicit lineto after moveto",
			data: "M0 0 10 0 10 10",
			want: []PathElement{MoveTo{Pt(0, 0)}, LineTo{Pt(10, 0)}, LineTo{Pt(10, 10)}},
		},
		{
			name: "implicit relative lineto",
			data: "m5 5 1 1",
			want: []PathElement{MoveTo{Pt(5, 5)}, LineTo{Pt(6, 6)}},
		},
		{
			name: "horizontal and vertical",
			data: "M1 1 H5 V7 h-2 v-3",
			want: []PathElement{
				MoveTo{Pt(1, 1)}, LineTo{Pt(5, 1)}, LineTo{Pt(5, 7)},
				LineTo{Pt(3, 7)}, LineTo{Pt(3, 4)},
			},
		},
		{
			name: "cubic",
			data: "M0 0 C1 2 3 4 5 6 c1 1 2 2 3 3",
			want: []PathElement{
				MoveTo{Pt(0, 0)},
				CubicTo{Pt(1, 2), Pt(3, 4), Pt(5, 6)},
				CubicTo{Pt(6, 7), Pt(7, 8), Pt(8, 9)},
			},
		},
		{
			name: "smooth cubic reflects control",
			data: "M0 0 C0 1 2 1 2 0 S4 -1 4 0",
			want: []PathElement{
				MoveTo{Pt(0, 0)},
				CubicTo{Pt(0, 1), Pt(2, 1), Pt(2, 0)},
				CubicTo{Pt(2, -1), Pt(4, -1), Pt(4, 0)},
			},
		},
		{
			name: "smooth cubic without predecessor",
			data: "M1 1 S2 2 3 3",
			want: []PathElement{
				MoveTo{Pt(1, 1)},
				CubicTo{Pt(1, 1), Pt(2, 2), Pt(3, 3)},
			},
		},
		{
			name: "quadratic and smooth quadratic",
			data: "M0 0 Q1 1 2 0 T4 0",
			want: []PathElement{
				MoveTo{Pt(0, 0)},
				QuadTo{Pt(1, 1), Pt(2, 0)},
				QuadTo{Pt(3, -1), Pt(4, 0)},
			},
		},
		{
			name: "close returns to subpath start",
			data: "M2 2 l1 0 z l0 1",
			want: []PathElement{
				MoveTo{Pt(2, 2)}, LineTo{Pt(3, 2)}, Close{}, LineTo{Pt(2, 3)},
			},
		},
		{
			name: "compact numbers",
			data: "M.5.5L1e1-2.5",
			want: []PathElement{MoveTo{Pt(0.5, 0.5)}, LineTo{Pt(10, -2.5)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePathData(tt.data)
			if err != nil {
				t.Fatalf("ParsePathData(%q) error = %v", tt.data, err)
			}
			if diff := cmp.Diff(tt.want, p.Elements(), approx, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParsePathData(%q) mismatch (-want +got):\n%s", tt.data, diff)
			}
		})
	}
}

func TestParsePathDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no moveto", "L 1 2"},
		{"leading number", "1 2"},
		{"arc", "M0 0 A 1 1 0 0 1 2 2"},
		{"missing number", "M0 0 L 1"},
		{"number after close", "M0 0 L1 1 Z 3 3"},
		{"garbage", "M0 0 X 1 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePathData(tt.data)
			if !errors.Is(err, ErrMalformedPath) {
				t.Fatalf("ParsePathData(%q) error = %v, want ErrMalformedPath", tt.data, err)
			}
			if p != nil {
				t.Errorf("ParsePathData(%q) returned a path alongside an error", tt.data)
			}
		})
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	const data = "M 0 0 L 10 0 Q 15 5 10 10 C 5 15 0 15 0 10 Z"
	p := MustParsePathData(data)
	again, err := ParsePathData(p.String())
	if err != nil {
		t.Fatalf("ParsePathData(String()) error = %v", err)
	}
	if diff := cmp.Diff(p.Elements(), again.Elements(), approx); diff != "" {
		t.Errorf("String() does not round-trip (-want +got):\n%s", diff)
	}
}

func TestMustParsePathDataPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePathData did not panic on malformed data")
		}
	}()
	MustParsePathData("Z")
}
