package biomech

import (
	"reflect"
	"testing"

	"ShotFormGolang/internal/entity"
)

// standardPose is a right-handed shooter holding a clean set point:
// 90 degree elbow, ~125 degree knee bend, straight trunk, level
// shoulders. Pixel coordinates, y growing downward.
func standardPose() []entity.Keypoint {
	return []entity.Keypoint{
		{Name: entity.KeypointNose, X: 100, Y: 50, Confidence: 0.95},
		{Name: entity.KeypointLeftShoulder, X: 80, Y: 100, Confidence: 0.9},
		{Name: entity.KeypointRightShoulder, X: 120, Y: 100, Confidence: 0.9},
		{Name: entity.KeypointRightElbow, X: 150, Y: 130, Confidence: 0.9},
		{Name: entity.KeypointRightWrist, X: 180, Y: 100, Confidence: 0.9},
		{Name: entity.KeypointRightHip, X: 120, Y: 200, Confidence: 0.9},
		{Name: entity.KeypointRightKnee, X: 120, Y: 260, Confidence: 0.9},
		{Name: entity.KeypointRightAnkle, X: 169.2, Y: 294.4, Confidence: 0.9},
	}
}

func metricByName(t *testing.T, metrics []entity.MetricScore, name string) (entity.MetricScore, bool) {
	t.Helper()
	for _, m := range metrics {
		if m.Name == name {
			return m, true
		}
	}
	return entity.MetricScore{}, false
}

func TestAnalyzeStandardPose(t *testing.T) {
	result := NewAnalyzer().Analyze(standardPose(), nil)

	// Wrist follow-through needs the index landmark, which the pose
	// lacks; everything else is computable.
	if result.TotalMetrics != 4 {
		t.Fatalf("TotalMetrics = %d, want 4", result.TotalMetrics)
	}

	elbow, ok := metricByName(t, result.Metrics, MetricElbowAngle)
	if !ok {
		t.Fatal("Elbow Angle metric missing")
	}
	if elbow.Value != 90 {
		t.Errorf("Elbow Angle = %v, want 90", elbow.Value)
	}
	if elbow.Status != entity.StatusOptimal {
		t.Errorf("Elbow Angle status = %s, want optimal", elbow.Status)
	}

	if _, ok := metricByName(t, result.Metrics, MetricWristFollow); ok {
		t.Error("Wrist Follow-Through computed without an index landmark")
	}

	if result.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", result.OverallScore)
	}
	if result.Category != entity.CategoryExcellent {
		t.Errorf("Category = %s, want EXCELLENT", result.Category)
	}
	if len(result.Issues) != 0 {
		t.Errorf("Issues = %d, want none for an all-optimal pose", len(result.Issues))
	}
}

func TestAnalyzeSkipsLowConfidenceKeypoints(t *testing.T) {
	pose := standardPose()
	for i := range pose {
		if pose[i].Name == entity.KeypointRightElbow {
			pose[i].Confidence = 0.29
		}
	}

	result := NewAnalyzer().Analyze(pose, nil)

	if _, ok := metricByName(t, result.Metrics, MetricElbowAngle); ok {
		t.Error("Elbow Angle computed from a keypoint below the confidence cutoff")
	}
	if result.TotalMetrics != 3 {
		t.Errorf("TotalMetrics = %d, want 3 after skipping the elbow metric", result.TotalMetrics)
	}
}

func TestAnalyzeEmptyKeypoints(t *testing.T) {
	result := NewAnalyzer().Analyze(nil, nil)

	if result.OverallScore != 0 {
		t.Errorf("OverallScore = %d, want 0", result.OverallScore)
	}
	if result.TotalMetrics != 0 {
		t.Errorf("TotalMetrics = %d, want 0 so callers can see there was no data", result.TotalMetrics)
	}
	if result.Category != entity.CategoryCritical {
		t.Errorf("Category = %s, want CRITICAL band for score 0", result.Category)
	}
}

func TestAnalyzeWithBall(t *testing.T) {
	// Ball centered 120% of torso height above the hip: inside the
	// optimal release band.
	ball := &entity.BallDetection{X: 130, Y: 10, Width: 20, Height: 20, Confidence: 0.8}

	result := NewAnalyzer().Analyze(standardPose(), ball)

	release, ok := metricByName(t, result.Metrics, MetricReleaseHeight)
	if !ok {
		t.Fatal("Release Height metric missing with a confident ball detection")
	}
	if release.Value != 120 {
		t.Errorf("Release Height = %v, want 120", release.Value)
	}
	if release.Status != entity.StatusOptimal {
		t.Errorf("Release Height status = %s, want optimal", release.Status)
	}

	// A low-confidence ball is treated like a missing landmark.
	ball.Confidence = 0.29
	result = NewAnalyzer().Analyze(standardPose(), ball)
	if _, ok := metricByName(t, result.Metrics, MetricReleaseHeight); ok {
		t.Error("Release Height computed from a ball below the confidence cutoff")
	}
}

func TestAnalyzePoorForm(t *testing.T) {
	// Flatten the elbow to 180 (critical, 85 beyond the band) and drop
	// a shoulder for a tilted upper body.
	pose := standardPose()
	for i := range pose {
		switch pose[i].Name {
		case entity.KeypointRightElbow:
			pose[i].X = 150
			pose[i].Y = 100
		case entity.KeypointLeftShoulder:
			pose[i].Y = 108
		}
	}

	result := NewAnalyzer().Analyze(pose, nil)

	elbow, ok := metricByName(t, result.Metrics, MetricElbowAngle)
	if !ok {
		t.Fatal("Elbow Angle metric missing")
	}
	if elbow.Status != entity.StatusCritical {
		t.Errorf("Elbow Angle status = %s, want critical for a locked arm", elbow.Status)
	}

	if len(result.PriorityIssues) == 0 {
		t.Fatal("no priority issues for a critical metric")
	}
	if result.PriorityIssues[0].Severity != entity.SeverityCritical {
		t.Errorf("top priority severity = %s, want critical first", result.PriorityIssues[0].Severity)
	}
	if result.PriorityIssues[0].Recommendation == "" {
		t.Error("top priority issue carries no recommendation")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	analyzer := NewAnalyzer()
	pose := standardPose()

	first := analyzer.Analyze(pose, nil)
	second := analyzer.Analyze(pose, nil)

	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze() is not deterministic for identical inputs")
	}
}

func TestAnalyzeLeftHanded(t *testing.T) {
	// Mirror the arm chain to the left side; the elbow metric must be
	// computed from the left landmarks.
	pose := []entity.Keypoint{
		{Name: entity.KeypointLeftShoulder, X: 80, Y: 100, Confidence: 0.9},
		{Name: entity.KeypointRightShoulder, X: 120, Y: 100, Confidence: 0.9},
		{Name: entity.KeypointLeftElbow, X: 50, Y: 130, Confidence: 0.9},
		{Name: entity.KeypointLeftWrist, X: 20, Y: 100, Confidence: 0.9},
	}

	result := NewAnalyzer().Analyze(pose, nil)

	elbow, ok := metricByName(t, result.Metrics, MetricElbowAngle)
	if !ok {
		t.Fatal("Elbow Angle missing for a left-handed pose")
	}
	if elbow.Value != 90 {
		t.Errorf("Elbow Angle = %v, want 90 from mirrored landmarks", elbow.Value)
	}
}
