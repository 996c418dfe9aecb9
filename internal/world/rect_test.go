package world

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		rect Rect
		want Point
	}{
		{NewRect(10, 10, 6, 6), Point{13, 13}},
		{NewRect(0, 0, 7, 9), Point{3, 4}},
		{NewRect(5, 2, 10, 6), Point{10, 5}},
	}

	for _, tt := range tests {
		if got := tt.rect.Center(); got != tt.want {
			t.Errorf("%+v.Center() = %+v, want %+v", tt.rect, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 6, 6)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(12, 12, 6, 6), true},
		{"shared edge", NewRect(16, 10, 6, 6), true},
		{"shared corner", NewRect(4, 4, 6, 6), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"one tile apart", NewRect(17, 10, 6, 6), false},
		{"far away", NewRect(40, 30, 6, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInteriorContains(t *testing.T) {
	r := NewRect(10, 10, 6, 6)

	if !r.InteriorContains(Point{11, 15}) {
		t.Error("(11,15) should be inside")
	}
	if r.InteriorContains(Point{10, 12}) || r.InteriorContains(Point{16, 12}) {
		t.Error("edges should not be interior")
	}
}
