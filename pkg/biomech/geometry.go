package biomech

import (
	"errors"
	"math"
)

// ErrDegenerateGeometry is returned when two of the three keypoints
// coincide and the joint angle is undefined.
var ErrDegenerateGeometry = errors.New("degenerate keypoint geometry: zero-length vector")

type Point struct {
	X float64
	Y float64
}

// AngleAt returns the angle at vertex between the rays toward p1 and p2,
// in whole degrees within [0, 180]. The cosine is clamped to [-1, 1]
// before arccos so near-collinear joints round to 0 or 180 instead of
// producing NaN.
func AngleAt(p1, vertex, p2 Point) (int, error) {
	v1x := p1.X - vertex.X
	v1y := p1.Y - vertex.Y
	v2x := p2.X - vertex.X
	v2y := p2.Y - vertex.Y

	mag1 := math.Hypot(v1x, v1y)
	mag2 := math.Hypot(v2x, v2y)
	if mag1 == 0 || mag2 == 0 {
		return 0, ErrDegenerateGeometry
	}

	cos := (v1x*v2x + v1y*v2y) / (mag1 * mag2)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}

	return int(math.Round(math.Acos(cos) * 180 / math.Pi)), nil
}
