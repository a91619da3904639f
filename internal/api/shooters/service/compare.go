package shootersService

import (
	"math"

	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/analysis"
	"ShotFormGolang/internal/api/shooters"
	"ShotFormGolang/internal/entity"
	contextPkg "ShotFormGolang/pkg/context"
	"ShotFormGolang/pkg/log"
)

func (s *shooterService) CompareAnalysis(ctx context.Context, userID, shooterID, analysisID string) (entity.ShooterComparison, error) {
	requestID := contextPkg.GetRequestID(ctx)

	shooterRepo, err := s.shooterRepository.NewClient(false)
	if err != nil {
		return entity.ShooterComparison{}, err
	}

	shooter, err := shooterRepo.Shooters.GetByID(ctx, shooterID)
	if err != nil {
		return entity.ShooterComparison{}, err
	}

	analysisRepo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return entity.ShooterComparison{}, err
	}

	a, err := analysisRepo.Analyses.GetByID(ctx, analysisID)
	if err != nil {
		return entity.ShooterComparison{}, err
	}

	if a.UserID != userID {
		return entity.ShooterComparison{}, analysis.ErrAnalysisNotOwned
	}

	metrics, overall := compareMetrics(a.Result.Metrics, shooter.Benchmarks)
	if len(metrics) == 0 {
		return entity.ShooterComparison{}, shooters.ErrNoComparableMetrics
	}

	s.log.WithFields(log.Fields{
		"request_id":         requestID,
		"shooter_id":         shooterID,
		"analysis_id":        analysisID,
		"overall_similarity": overall,
	}).Info("Shooter comparison completed")

	return entity.ShooterComparison{
		ShooterID:         shooter.ID,
		ShooterName:       shooter.Name,
		AnalysisID:        a.ID,
		Metrics:           metrics,
		OverallSimilarity: overall,
	}, nil
}

// compareMetrics holds each analysis metric against the shooter's benchmark
// band of the same name. Values inside the band score 100; outside, the
// similarity drops by the distance to the nearest bound relative to the band
// width, floored at 0. Metrics without a matching benchmark are skipped.
func compareMetrics(metrics []entity.MetricScore, benchmarks []entity.BenchmarkRange) ([]entity.MetricComparison, int) {
	bands := make(map[string]entity.BenchmarkRange, len(benchmarks))
	for _, b := range benchmarks {
		bands[b.Metric] = b
	}

	comparisons := make([]entity.MetricComparison, 0, len(metrics))
	sum := 0

	for _, m := range metrics {
		band, ok := bands[m.Name]
		if !ok {
			continue
		}

		var deviation float64
		switch {
		case m.Value < band.Min:
			deviation = band.Min - m.Value
		case m.Value > band.Max:
			deviation = m.Value - band.Max
		}

		span := band.Max - band.Min
		if span <= 0 {
			span = 1
		}

		similarity := 100 - int(math.Round(deviation/span*100))
		if similarity < 0 {
			similarity = 0
		}

		comparisons = append(comparisons, entity.MetricComparison{
			Metric:     m.Name,
			UserValue:  m.Value,
			ProMin:     band.Min,
			ProMax:     band.Max,
			Deviation:  deviation,
			Similarity: similarity,
		})
		sum += similarity
	}

	if len(comparisons) == 0 {
		return nil, 0
	}

	overall := int(math.Round(float64(sum) / float64(len(comparisons))))
	return comparisons, overall
}
