package core

import "testing"

func TestRectIntersects(t *testing.T) {
	body := NewRect(40, 100, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"tile under the feet", NewRect(40, 110, 10, 10), false},
		{"tile one pixel up", NewRect(40, 109, 10, 10), true},
		{"wall touching the right edge", NewRect(50, 100, 10, 10), false},
		{"wall one pixel in", NewRect(49, 100, 10, 10), true},
		{"whole frame", NewRect(0, 0, ViewportW, ViewportH), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := body.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(body); got != tt.want {
				t.Errorf("reversed Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, ViewportW, ViewportH)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{ViewportW - 1, ViewportH - 1, true},
		{ViewportW, 0, false},
		{0, ViewportH, false},
		{-1, 5, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if r.Right() != ViewportW || r.Bottom() != ViewportH {
		t.Errorf("edges = (%d, %d), want (%d, %d)", r.Right(), r.Bottom(), ViewportW, ViewportH)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{-3, 0, 240, 0},
		{120, 0, 240, 120},
		{250, 0, 240, 240},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}

	ftests := []struct {
		val, lo, hi, want float64
	}{
		{-0.05, 0, 150, 0},
		{60.5, 0, 150, 60.5},
		{152.5, 0, 150, 150},
	}
	for _, tt := range ftests {
		if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
