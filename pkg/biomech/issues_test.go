package biomech

import (
	"testing"

	"ShotFormGolang/internal/entity"
)

func TestPrioritizeOrders(t *testing.T) {
	// Detection order minor, critical, moderate must come back
	// critical, moderate, minor with ranks 1, 2, 3.
	issues := []entity.FormIssue{
		{Title: "Minor Issue", Severity: entity.SeverityMinor},
		{Title: "Critical Issue", Severity: entity.SeverityCritical},
		{Title: "Moderate Issue", Severity: entity.SeverityModerate},
	}

	got := Prioritize(issues)
	if len(got) != 3 {
		t.Fatalf("Prioritize() returned %d issues, want 3", len(got))
	}

	wantOrder := []entity.IssueSeverity{
		entity.SeverityCritical,
		entity.SeverityModerate,
		entity.SeverityMinor,
	}
	for i, want := range wantOrder {
		if got[i].Severity != want {
			t.Errorf("Prioritize()[%d].Severity = %s, want %s", i, got[i].Severity, want)
		}
		if got[i].Rank != i+1 {
			t.Errorf("Prioritize()[%d].Rank = %d, want %d", i, got[i].Rank, i+1)
		}
	}
}

func TestPrioritizeStableOnTies(t *testing.T) {
	issues := []entity.FormIssue{
		{Title: "First Critical", Severity: entity.SeverityCritical},
		{Title: "Second Critical", Severity: entity.SeverityCritical},
		{Title: "Third Critical", Severity: entity.SeverityCritical},
	}

	got := Prioritize(issues)
	for i, issue := range issues {
		if got[i].Title != issue.Title {
			t.Errorf("Prioritize()[%d].Title = %q, want %q (ties keep detection order)",
				i, got[i].Title, issue.Title)
		}
	}
}

func TestPrioritizeDoesNotMutateInput(t *testing.T) {
	issues := []entity.FormIssue{
		{Title: "Minor Issue", Severity: entity.SeverityMinor},
		{Title: "Critical Issue", Severity: entity.SeverityCritical},
	}

	Prioritize(issues)
	if issues[0].Title != "Minor Issue" {
		t.Error("Prioritize() reordered the caller's slice")
	}
}

func TestRecommendationFor(t *testing.T) {
	if got := RecommendationFor(MetricElbowAngle); got == FallbackRecommendation {
		t.Errorf("RecommendationFor(%q) fell back to the generic message", MetricElbowAngle)
	}
	if got := RecommendationFor("Unmapped Title"); got != FallbackRecommendation {
		t.Errorf("RecommendationFor(unmapped) = %q, want fallback", got)
	}
}

func TestIssueFromMetric(t *testing.T) {
	tests := []struct {
		name         string
		status       entity.MetricStatus
		wantSeverity entity.IssueSeverity
		wantIssue    bool
	}{
		{"optimal raises nothing", entity.StatusOptimal, "", false},
		{"good is minor", entity.StatusGood, entity.SeverityMinor, true},
		{"warning is moderate", entity.StatusWarning, entity.SeverityModerate, true},
		{"critical stays critical", entity.StatusCritical, entity.SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric := entity.MetricScore{
				Name:       MetricElbowAngle,
				Value:      120,
				OptimalMin: 85,
				OptimalMax: 95,
				Unit:       UnitDegrees,
				Status:     tt.status,
			}

			issue, ok := IssueFromMetric(metric, "Shooting Elbow")
			if ok != tt.wantIssue {
				t.Fatalf("IssueFromMetric() ok = %v, want %v", ok, tt.wantIssue)
			}
			if !ok {
				return
			}
			if issue.Severity != tt.wantSeverity {
				t.Errorf("IssueFromMetric() severity = %s, want %s", issue.Severity, tt.wantSeverity)
			}
			if issue.Title != MetricElbowAngle {
				t.Errorf("IssueFromMetric() title = %q, want %q", issue.Title, MetricElbowAngle)
			}
			if issue.Location != "Shooting Elbow" {
				t.Errorf("IssueFromMetric() location = %q", issue.Location)
			}
		})
	}
}
