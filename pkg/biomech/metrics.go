package biomech

import (
	"math"

	"ShotFormGolang/internal/entity"
)

// MinKeypointConfidence is the cutoff below which a detected landmark is
// treated as missing. Metrics depending on it are skipped, not failed.
const MinKeypointConfidence = 0.3

const (
	UnitDegrees = "degrees"
	UnitPercent = "percent"
)

// Thresholds classify the deviation from the nearest optimal bound into
// the good and warning tiers. Both bounds are inclusive: a deviation of
// exactly WarnWithin is still a warning.
type Thresholds struct {
	GoodWithin float64
	WarnWithin float64
}

// Default tiers per metric type. Angle and percentage metrics carry
// separate tolerances so the bands stay a per-metric configuration
// rather than one hardcoded constant.
var (
	AngleThresholds   = Thresholds{GoodWithin: 5, WarnWithin: 15}
	PercentThresholds = Thresholds{GoodWithin: 5, WarnWithin: 10}
)

// EvaluateStatus maps a measured value against its optimal range.
// Values on the range bounds are optimal.
func EvaluateStatus(value, optimalMin, optimalMax float64, t Thresholds) entity.MetricStatus {
	if value >= optimalMin && value <= optimalMax {
		return entity.StatusOptimal
	}

	deviation := value - optimalMax
	if value < optimalMin {
		deviation = optimalMin - value
	}

	switch {
	case deviation <= t.GoodWithin:
		return entity.StatusGood
	case deviation <= t.WarnWithin:
		return entity.StatusWarning
	default:
		return entity.StatusCritical
	}
}

// Deviation returns the distance from value to the nearest bound of the
// optimal range, or 0 when the value is inside it.
func Deviation(value, optimalMin, optimalMax float64) float64 {
	if value >= optimalMin && value <= optimalMax {
		return 0
	}
	if value < optimalMin {
		return optimalMin - value
	}
	return value - optimalMax
}

// AngleMetricDef describes one joint-angle metric: the three landmarks
// forming the joint (p1, vertex, p2) and the optimal band in degrees.
type AngleMetricDef struct {
	Name        string
	Keypoints   [3]string
	OptimalMin  float64
	OptimalMax  float64
	Thresholds  Thresholds
	Location    string
	Description string
}

// Metric names reused across scoring, pro-shooter benchmarks and the
// coaching recommendation table.
const (
	MetricElbowAngle     = "Elbow Angle"
	MetricKneeBend       = "Knee Bend"
	MetricHipAlignment   = "Hip Alignment"
	MetricWristFollow    = "Wrist Follow-Through"
	MetricShoulderSquare = "Shoulder Square"
	MetricReleaseHeight  = "Release Height"
)

func defaultAngleMetrics() []AngleMetricDef {
	return []AngleMetricDef{
		{
			Name:        MetricElbowAngle,
			Keypoints:   [3]string{entity.KeypointRightShoulder, entity.KeypointRightElbow, entity.KeypointRightWrist},
			OptimalMin:  85,
			OptimalMax:  95,
			Thresholds:  AngleThresholds,
			Location:    "Shooting Elbow",
			Description: "Angle of the shooting elbow at the set point. Close to 90 degrees keeps the ball on a straight line to the rim.",
		},
		{
			Name:        MetricKneeBend,
			Keypoints:   [3]string{entity.KeypointRightHip, entity.KeypointRightKnee, entity.KeypointRightAnkle},
			OptimalMin:  115,
			OptimalMax:  135,
			Thresholds:  AngleThresholds,
			Location:    "Knees",
			Description: "Knee flexion driving the shot. Too straight loses power, too deep slows the release.",
		},
		{
			Name:        MetricHipAlignment,
			Keypoints:   [3]string{entity.KeypointRightShoulder, entity.KeypointRightHip, entity.KeypointRightKnee},
			OptimalMin:  165,
			OptimalMax:  180,
			Thresholds:  AngleThresholds,
			Location:    "Hips",
			Description: "Trunk-to-thigh line. A near-straight line keeps the body stacked under the ball.",
		},
		{
			Name:        MetricWristFollow,
			Keypoints:   [3]string{entity.KeypointRightElbow, entity.KeypointRightWrist, entity.KeypointRightIndex},
			OptimalMin:  120,
			OptimalMax:  145,
			Thresholds:  AngleThresholds,
			Location:    "Shooting Wrist",
			Description: "Wrist snap at release. A relaxed downward snap puts backspin on the ball.",
		},
	}
}

// mirrored returns the metric definition flipped to the left side for
// left-handed shooters.
func (d AngleMetricDef) mirrored() AngleMetricDef {
	m := d
	for i, name := range m.Keypoints {
		m.Keypoints[i] = mirrorKeypoint(name)
	}
	return m
}

func mirrorKeypoint(name string) string {
	switch name {
	case entity.KeypointRightShoulder:
		return entity.KeypointLeftShoulder
	case entity.KeypointRightElbow:
		return entity.KeypointLeftElbow
	case entity.KeypointRightWrist:
		return entity.KeypointLeftWrist
	case entity.KeypointRightHip:
		return entity.KeypointLeftHip
	case entity.KeypointRightKnee:
		return entity.KeypointLeftKnee
	case entity.KeypointRightAnkle:
		return entity.KeypointLeftAnkle
	case entity.KeypointRightIndex:
		return entity.KeypointLeftIndex
	default:
		return name
	}
}

// shoulderSquare measures how level the shoulders sit, as a percentage.
// 100 means perfectly level; the vertical offset is normalized by the
// shoulder width so the metric works in any coordinate space.
func shoulderSquare(left, right entity.Keypoint) (float64, bool) {
	width := math.Abs(left.X - right.X)
	if width == 0 {
		return 0, false
	}
	tilt := math.Abs(left.Y-right.Y) / width * 100
	if tilt > 100 {
		tilt = 100
	}
	return math.Round((100 - tilt)), true
}

// releaseHeight measures where the ball sits at release relative to the
// body, as a percentage of nose-to-hip height above the hip. Y grows
// downward in image space, so ball above hip means hipY - ballY > 0.
func releaseHeight(nose, hip entity.Keypoint, ball entity.BallDetection) (float64, bool) {
	torso := hip.Y - nose.Y
	if torso <= 0 {
		return 0, false
	}
	ballCenterY := ball.Y + ball.Height/2
	return math.Round((hip.Y - ballCenterY) / torso * 100), true
}
