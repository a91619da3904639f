package biomech

import (
	"errors"
	"testing"
)

func TestAngleAt(t *testing.T) {
	tests := []struct {
		name   string
		p1     Point
		vertex Point
		p2     Point
		want   int
	}{
		{
			name:   "right angle",
			p1:     Point{X: 0, Y: 1},
			vertex: Point{X: 0, Y: 0},
			p2:     Point{X: 1, Y: 0},
			want:   90,
		},
		{
			name:   "collinear opposite sides",
			p1:     Point{X: -1, Y: 0},
			vertex: Point{X: 0, Y: 0},
			p2:     Point{X: 1, Y: 0},
			want:   180,
		},
		{
			name:   "collinear same side",
			p1:     Point{X: 1, Y: 0},
			vertex: Point{X: 0, Y: 0},
			p2:     Point{X: 2, Y: 0},
			want:   0,
		},
		{
			name:   "45 degrees",
			p1:     Point{X: 1, Y: 1},
			vertex: Point{X: 0, Y: 0},
			p2:     Point{X: 1, Y: 0},
			want:   45,
		},
		{
			name:   "near collinear rounds without NaN",
			p1:     Point{X: -1000, Y: 0.0001},
			vertex: Point{X: 0, Y: 0},
			p2:     Point{X: 1000, Y: 0.0001},
			want:   180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleAt(tt.p1, tt.vertex, tt.p2)
			if err != nil {
				t.Fatalf("AngleAt() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AngleAt() = %d, want %d", got, tt.want)
			}

			// Swapping the outer points must not change the angle.
			swapped, err := AngleAt(tt.p2, tt.vertex, tt.p1)
			if err != nil {
				t.Fatalf("AngleAt() swapped error = %v", err)
			}
			if swapped != got {
				t.Errorf("AngleAt() not symmetric: %d vs %d", got, swapped)
			}
		})
	}
}

func TestAngleAtDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		p1     Point
		vertex Point
		p2     Point
	}{
		{"p1 equals vertex", Point{X: 1, Y: 1}, Point{X: 1, Y: 1}, Point{X: 2, Y: 2}},
		{"p2 equals vertex", Point{X: 2, Y: 2}, Point{X: 1, Y: 1}, Point{X: 1, Y: 1}},
		{"all coincide", Point{}, Point{}, Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AngleAt(tt.p1, tt.vertex, tt.p2); !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("AngleAt() error = %v, want ErrDegenerateGeometry", err)
			}
		})
	}
}
