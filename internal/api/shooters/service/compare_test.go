package shootersService

import (
	"testing"

	"ShotFormGolang/internal/entity"
)

func TestCompareMetrics(t *testing.T) {
	benchmarks := []entity.BenchmarkRange{
		{Metric: "Elbow Angle", Min: 85, Max: 95},
		{Metric: "Knee Bend", Min: 115, Max: 135},
	}

	tests := []struct {
		name        string
		metrics     []entity.MetricScore
		wantCount   int
		wantOverall int
	}{
		{
			name: "all metrics inside bands score 100",
			metrics: []entity.MetricScore{
				{Name: "Elbow Angle", Value: 90},
				{Name: "Knee Bend", Value: 120},
			},
			wantCount:   2,
			wantOverall: 100,
		},
		{
			name: "boundary value counts as inside",
			metrics: []entity.MetricScore{
				{Name: "Elbow Angle", Value: 95},
			},
			wantCount:   1,
			wantOverall: 100,
		},
		{
			name: "deviation of half the band width scores 50",
			metrics: []entity.MetricScore{
				{Name: "Elbow Angle", Value: 100},
			},
			wantCount:   1,
			wantOverall: 50,
		},
		{
			name: "far outside the band floors at 0",
			metrics: []entity.MetricScore{
				{Name: "Elbow Angle", Value: 150},
			},
			wantCount:   1,
			wantOverall: 0,
		},
		{
			name: "unmatched metrics are skipped",
			metrics: []entity.MetricScore{
				{Name: "Elbow Angle", Value: 90},
				{Name: "Release Height", Value: 120},
			},
			wantCount:   1,
			wantOverall: 100,
		},
		{
			name: "no overlap yields nothing",
			metrics: []entity.MetricScore{
				{Name: "Release Height", Value: 120},
			},
			wantCount:   0,
			wantOverall: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparisons, overall := compareMetrics(tt.metrics, benchmarks)
			if len(comparisons) != tt.wantCount {
				t.Fatalf("got %d comparisons, want %d", len(comparisons), tt.wantCount)
			}
			if overall != tt.wantOverall {
				t.Errorf("got overall similarity %d, want %d", overall, tt.wantOverall)
			}
		})
	}
}

func TestCompareMetricsAveragesMixed(t *testing.T) {
	benchmarks := []entity.BenchmarkRange{
		{Metric: "Elbow Angle", Min: 85, Max: 95},
		{Metric: "Knee Bend", Min: 115, Max: 135},
	}
	metrics := []entity.MetricScore{
		{Name: "Elbow Angle", Value: 90},  // 100
		{Name: "Knee Bend", Value: 145},   // deviation 10, span 20 -> 50
	}

	comparisons, overall := compareMetrics(metrics, benchmarks)
	if len(comparisons) != 2 {
		t.Fatalf("got %d comparisons, want 2", len(comparisons))
	}
	if overall != 75 {
		t.Errorf("got overall similarity %d, want 75", overall)
	}

	knee := comparisons[1]
	if knee.Deviation != 10 {
		t.Errorf("got deviation %v, want 10", knee.Deviation)
	}
	if knee.Similarity != 50 {
		t.Errorf("got similarity %d, want 50", knee.Similarity)
	}
}
