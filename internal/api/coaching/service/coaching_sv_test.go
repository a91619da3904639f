package coachingService

import (
	"strings"
	"testing"

	"ShotFormGolang/internal/entity"
)

func sampleResult() entity.FormAnalysisResult {
	return entity.FormAnalysisResult{
		OverallScore: 72,
		TotalMetrics: 3,
		Category:     entity.CategoryGood,
		Metrics: []entity.MetricScore{
			{Name: "Elbow Angle", Value: 99, Unit: "degrees", OptimalMin: 85, OptimalMax: 95, Status: entity.StatusGood},
		},
		PriorityIssues: []entity.PriorityIssue{
			{Rank: 1, Title: "Elbow Angle", Severity: entity.SeverityMinor, Description: "slightly wide", Recommendation: "Tuck the elbow under the ball."},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	summary := renderSummary(sampleResult())

	for _, want := range []string{
		"Overall score 72/100 (GOOD), 3 metrics measured.",
		"Elbow Angle: 99.0 degrees (optimal 85-95), status good",
		"Priority 1 (minor): Elbow Angle",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestCannedFeedback(t *testing.T) {
	feedback := cannedFeedback(sampleResult())

	if feedback.Headline != "Your form scored 72/100" {
		t.Errorf("got headline %q", feedback.Headline)
	}
	if len(feedback.Drills) != 1 {
		t.Fatalf("got %d drills, want 1", len(feedback.Drills))
	}
	if !strings.Contains(feedback.Drills[0], "Tuck the elbow under the ball.") {
		t.Errorf("drill missing recommendation: %q", feedback.Drills[0])
	}
}

func TestCannedFeedbackCleanShot(t *testing.T) {
	result := entity.FormAnalysisResult{OverallScore: 100, Category: entity.CategoryExcellent}
	feedback := cannedFeedback(result)

	if len(feedback.Drills) != 0 {
		t.Errorf("got %d drills for a clean shot, want 0", len(feedback.Drills))
	}
	if !strings.Contains(feedback.Feedback, "No issues detected") {
		t.Errorf("got feedback %q", feedback.Feedback)
	}
}
