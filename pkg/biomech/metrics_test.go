package biomech

import (
	"testing"

	"ShotFormGolang/internal/entity"
)

// The status model is deliberately four-tier with per-metric-type
// thresholds; these cases pin the tier boundaries as inclusive.
func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		min        float64
		max        float64
		thresholds Thresholds
		want       entity.MetricStatus
	}{
		{"inside range", 90, 85, 95, AngleThresholds, entity.StatusOptimal},
		{"exactly at lower bound", 85, 85, 95, AngleThresholds, entity.StatusOptimal},
		{"exactly at upper bound", 95, 85, 95, AngleThresholds, entity.StatusOptimal},
		{"good tier above", 100, 85, 95, AngleThresholds, entity.StatusGood},
		{"good tier below inclusive", 80, 85, 95, AngleThresholds, entity.StatusGood},
		{"warning tier", 105, 85, 95, AngleThresholds, entity.StatusWarning},
		{"exactly 15 beyond is warning", 110, 85, 95, AngleThresholds, entity.StatusWarning},
		{"exactly 16 beyond is critical", 111, 85, 95, AngleThresholds, entity.StatusCritical},
		{"exactly 15 below bound is warning", 70, 85, 95, AngleThresholds, entity.StatusWarning},
		{"far below is critical", 60, 85, 95, AngleThresholds, entity.StatusCritical},
		{"percent exactly 10 beyond is warning", 75, 85, 100, PercentThresholds, entity.StatusWarning},
		{"percent 11 beyond is critical", 74, 85, 100, PercentThresholds, entity.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateStatus(tt.value, tt.min, tt.max, tt.thresholds)
			if got != tt.want {
				t.Errorf("EvaluateStatus(%v, [%v,%v]) = %s, want %s",
					tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestDeviation(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		min   float64
		max   float64
		want  float64
	}{
		{"inside", 90, 85, 95, 0},
		{"on bound", 95, 85, 95, 0},
		{"above", 100, 85, 95, 5},
		{"below", 80, 85, 95, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Deviation(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("Deviation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShoulderSquare(t *testing.T) {
	left := entity.Keypoint{Name: entity.KeypointLeftShoulder, X: 80, Y: 100, Confidence: 0.9}
	right := entity.Keypoint{Name: entity.KeypointRightShoulder, X: 120, Y: 100, Confidence: 0.9}

	value, ok := shoulderSquare(left, right)
	if !ok {
		t.Fatal("shoulderSquare() not computable for level shoulders")
	}
	if value != 100 {
		t.Errorf("shoulderSquare() = %v, want 100 for level shoulders", value)
	}

	right.Y = 110
	value, ok = shoulderSquare(left, right)
	if !ok {
		t.Fatal("shoulderSquare() not computable for tilted shoulders")
	}
	if value != 75 {
		t.Errorf("shoulderSquare() = %v, want 75 for 10px tilt over 40px width", value)
	}

	// Coincident shoulders have no width to normalize by.
	right.X = left.X
	if _, ok := shoulderSquare(left, right); ok {
		t.Error("shoulderSquare() computable with zero shoulder width")
	}
}

func TestReleaseHeight(t *testing.T) {
	nose := entity.Keypoint{Name: entity.KeypointNose, X: 100, Y: 50, Confidence: 0.9}
	hip := entity.Keypoint{Name: entity.KeypointRightHip, X: 100, Y: 150, Confidence: 0.9}

	// Ball centered at the nose: exactly 100% of torso height above hip.
	ball := entity.BallDetection{X: 90, Y: 40, Width: 20, Height: 20, Confidence: 0.8}
	value, ok := releaseHeight(nose, hip, ball)
	if !ok {
		t.Fatal("releaseHeight() not computable")
	}
	if value != 100 {
		t.Errorf("releaseHeight() = %v, want 100", value)
	}

	// Inverted pose (hip above nose) is not a usable measurement.
	if _, ok := releaseHeight(hip, nose, ball); ok {
		t.Error("releaseHeight() computable with non-positive torso height")
	}
}
