package reveal

import "testing"

func TestParseLineCap(t *testing.T) {
	tests := []struct {
		in      string
		want    LineCap
		wantErr bool
	}{
		{"", LineCapButt, false},
		{"butt", LineCapButt, false},
		{"Round", LineCapRound, false},
		{" square ", LineCapSquare, false},
		{"arrow", LineCapButt, true},
	}

	for _, tt := range tests {
		got, err := ParseLineCap(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLineCap(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLineCap(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" {
			if again, _ := ParseLineCap(got.String()); again != got {
				t.Errorf("ParseLineCap(%v.String()) = %v", got, again)
			}
		}
	}
}

func TestParseLineJoin(t *testing.T) {
	tests := []struct {
		in      string
		want    LineJoin
		wantErr bool
	}{
		{"", LineJoinMiter, false},
		{"miter", LineJoinMiter, false},
		{"ROUND", LineJoinRound, false},
		{"bevel", LineJoinBevel, false},
		{"arcs", LineJoinMiter, true},
	}

	for _, tt := range tests {
		got, err := ParseLineJoin(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLineJoin(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLineJoin(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStrokeBuilders(t *testing.T) {
	s := DefaultStroke().
		WithWidth(0.3985).
		WithCap(LineCapRound).
		WithJoin(LineJoinBevel).
		WithMiterLimit(4).
		WithDashPattern(2, 1)

	if s.Width != 0.3985 || s.Cap != LineCapRound || s.Join != LineJoinBevel || s.MiterLimit != 4 {
		t.Errorf("builders produced %+v", s)
	}
	if !s.IsDashed() {
		t.Error("IsDashed() = false after WithDashPattern")
	}
	if DefaultStroke().IsDashed() {
		t.Error("DefaultStroke().IsDashed() = true")
	}

	c := s.Clone()
	c.Dash.Array[0] = 7
	if s.Dash.Array[0] != 2 {
		t.Error("Clone shares the dash pattern")
	}
}
