package biomech

import (
	"errors"

	"ShotFormGolang/internal/entity"
)

// PercentMetricDef describes one percentage-based metric with its own
// optimal band and tolerance tiers.
type PercentMetricDef struct {
	Name        string
	OptimalMin  float64
	OptimalMax  float64
	Thresholds  Thresholds
	Location    string
	Description string
}

// Analyzer runs the full scoring pipeline. It holds only metric
// configuration, so one instance is safe for concurrent use and a
// single analysis is a pure function of its inputs.
type Analyzer struct {
	AngleMetrics   []AngleMetricDef
	ShoulderSquare PercentMetricDef
	ReleaseHeight  PercentMetricDef
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		AngleMetrics: defaultAngleMetrics(),
		ShoulderSquare: PercentMetricDef{
			Name:        MetricShoulderSquare,
			OptimalMin:  85,
			OptimalMax:  100,
			Thresholds:  PercentThresholds,
			Location:    "Shoulders",
			Description: "How level the shoulders sit facing the basket. 100 is perfectly square.",
		},
		ReleaseHeight: PercentMetricDef{
			Name:        MetricReleaseHeight,
			OptimalMin:  105,
			OptimalMax:  140,
			Thresholds:  PercentThresholds,
			Location:    "Release Point",
			Description: "Ball height at release as a percentage of nose-to-hip height above the hip. Above 100 means above the head.",
		},
	}
}

// Analyze scores one set of detected keypoints, optionally with a ball
// detection for the release-height metric. Metrics whose required
// landmarks are missing, below confidence, or geometrically degenerate
// are skipped rather than failing the run.
func (a *Analyzer) Analyze(keypoints []entity.Keypoint, ball *entity.BallDetection) entity.FormAnalysisResult {
	visible := make(map[string]entity.Keypoint, len(keypoints))
	for _, kp := range keypoints {
		if kp.Confidence >= MinKeypointConfidence {
			visible[kp.Name] = kp
		}
	}

	lefty := isLeftHanded(visible)

	result := entity.FormAnalysisResult{
		Angles:         []entity.AngleMeasurement{},
		Metrics:        []entity.MetricScore{},
		Issues:         []entity.FormIssue{},
		PriorityIssues: []entity.PriorityIssue{},
	}

	locations := make(map[string]string)

	for _, def := range a.AngleMetrics {
		if lefty {
			def = def.mirrored()
		}

		p1, ok1 := visible[def.Keypoints[0]]
		vertex, ok2 := visible[def.Keypoints[1]]
		p2, ok3 := visible[def.Keypoints[2]]
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		degrees, err := AngleAt(
			Point{X: p1.X, Y: p1.Y},
			Point{X: vertex.X, Y: vertex.Y},
			Point{X: p2.X, Y: p2.Y},
		)
		if errors.Is(err, ErrDegenerateGeometry) {
			continue
		}

		status := EvaluateStatus(float64(degrees), def.OptimalMin, def.OptimalMax, def.Thresholds)

		result.Angles = append(result.Angles, entity.AngleMeasurement{
			Name:       def.Name,
			Keypoints:  def.Keypoints,
			Degrees:    degrees,
			OptimalMin: def.OptimalMin,
			OptimalMax: def.OptimalMax,
			Status:     status,
		})
		result.Metrics = append(result.Metrics, entity.MetricScore{
			Name:        def.Name,
			Value:       float64(degrees),
			OptimalMin:  def.OptimalMin,
			OptimalMax:  def.OptimalMax,
			Unit:        UnitDegrees,
			Status:      status,
			Description: def.Description,
		})
		locations[def.Name] = def.Location
	}

	if left, ok1 := visible[entity.KeypointLeftShoulder]; ok1 {
		if right, ok2 := visible[entity.KeypointRightShoulder]; ok2 {
			if value, ok := shoulderSquare(left, right); ok {
				result.Metrics = append(result.Metrics, a.percentMetric(a.ShoulderSquare, value))
				locations[a.ShoulderSquare.Name] = a.ShoulderSquare.Location
			}
		}
	}

	if ball != nil && ball.Confidence >= MinKeypointConfidence {
		hipName := entity.KeypointRightHip
		if lefty {
			hipName = entity.KeypointLeftHip
		}
		if nose, ok1 := visible[entity.KeypointNose]; ok1 {
			if hip, ok2 := visible[hipName]; ok2 {
				if value, ok := releaseHeight(nose, hip, *ball); ok {
					result.Metrics = append(result.Metrics, a.percentMetric(a.ReleaseHeight, value))
					locations[a.ReleaseHeight.Name] = a.ReleaseHeight.Location
				}
			}
		}
	}

	for _, metric := range result.Metrics {
		if issue, ok := IssueFromMetric(metric, locations[metric.Name]); ok {
			result.Issues = append(result.Issues, issue)
		}
	}

	result.PriorityIssues = Prioritize(result.Issues)
	result.TotalMetrics = len(result.Metrics)
	result.OverallScore = OverallScore(result.Metrics)
	result.Category = CategoryForScore(result.OverallScore)

	return result
}

func (a *Analyzer) percentMetric(def PercentMetricDef, value float64) entity.MetricScore {
	return entity.MetricScore{
		Name:        def.Name,
		Value:       value,
		OptimalMin:  def.OptimalMin,
		OptimalMax:  def.OptimalMax,
		Unit:        UnitPercent,
		Status:      EvaluateStatus(value, def.OptimalMin, def.OptimalMax, def.Thresholds),
		Description: def.Description,
	}
}

// isLeftHanded guesses the shooting hand from which arm chain the
// detector saw more confidently. Right-handed is the default.
func isLeftHanded(visible map[string]entity.Keypoint) bool {
	left := visible[entity.KeypointLeftElbow].Confidence + visible[entity.KeypointLeftWrist].Confidence
	right := visible[entity.KeypointRightElbow].Confidence + visible[entity.KeypointRightWrist].Confidence
	return left > right
}
