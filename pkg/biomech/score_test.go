package biomech

import (
	"testing"

	"ShotFormGolang/internal/entity"
)

func metricsWithStatuses(statuses ...entity.MetricStatus) []entity.MetricScore {
	metrics := make([]entity.MetricScore, 0, len(statuses))
	for _, s := range statuses {
		metrics = append(metrics, entity.MetricScore{Status: s})
	}
	return metrics
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name     string
		statuses []entity.MetricStatus
		want     int
	}{
		{
			name: "two in-range one warning one critical",
			statuses: []entity.MetricStatus{
				entity.StatusOptimal, entity.StatusOptimal,
				entity.StatusWarning, entity.StatusCritical,
			},
			want: 65, // round((2*100 + 60 + 0) / 4)
		},
		{
			name:     "all optimal",
			statuses: []entity.MetricStatus{entity.StatusOptimal, entity.StatusOptimal},
			want:     100,
		},
		{
			name:     "all critical",
			statuses: []entity.MetricStatus{entity.StatusCritical, entity.StatusCritical},
			want:     0,
		},
		{
			name:     "single good",
			statuses: []entity.MetricStatus{entity.StatusGood},
			want:     85,
		},
		{
			name:     "empty set scores zero without dividing by zero",
			statuses: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallScore(metricsWithStatuses(tt.statuses...)); got != tt.want {
				t.Errorf("OverallScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		score int
		want  entity.FormCategory
	}{
		{100, entity.CategoryExcellent},
		{85, entity.CategoryExcellent},
		{84, entity.CategoryGood},
		{70, entity.CategoryGood},
		{69, entity.CategoryNeedsImprovement},
		{65, entity.CategoryNeedsImprovement},
		{50, entity.CategoryNeedsImprovement},
		{49, entity.CategoryCritical},
		{0, entity.CategoryCritical},
	}

	for _, tt := range tests {
		if got := CategoryForScore(tt.score); got != tt.want {
			t.Errorf("CategoryForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
