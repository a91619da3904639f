package biomech

import (
	"math"

	"ShotFormGolang/internal/entity"
)

// Per-status weights feeding the overall score.
const (
	WeightOptimal  = 100
	WeightGood     = 85
	WeightWarning  = 60
	WeightCritical = 0
)

// Category cutoffs. A score equal to a cutoff lands in the higher band.
const (
	CategoryExcellentMin        = 85
	CategoryGoodMin             = 70
	CategoryNeedsImprovementMin = 50
)

var statusWeights = map[entity.MetricStatus]int{
	entity.StatusOptimal:  WeightOptimal,
	entity.StatusGood:     WeightGood,
	entity.StatusWarning:  WeightWarning,
	entity.StatusCritical: WeightCritical,
}

// OverallScore reduces all metric statuses to one 0-100 score. The
// denominator is clamped to 1 so an empty metric set scores 0 instead of
// dividing by zero; callers distinguish "insufficient data" via
// FormAnalysisResult.TotalMetrics.
func OverallScore(metrics []entity.MetricScore) int {
	total := len(metrics)
	if total < 1 {
		total = 1
	}

	sum := 0
	for _, m := range metrics {
		sum += statusWeights[m.Status]
	}

	return int(math.Round(float64(sum) / float64(total)))
}

// CategoryForScore maps a 0-100 score onto the overall grade.
func CategoryForScore(score int) entity.FormCategory {
	switch {
	case score >= CategoryExcellentMin:
		return entity.CategoryExcellent
	case score >= CategoryGoodMin:
		return entity.CategoryGood
	case score >= CategoryNeedsImprovementMin:
		return entity.CategoryNeedsImprovement
	default:
		return entity.CategoryCritical
	}
}
