package entity

import "time"

// BenchmarkRange is the measured band one professional shooter holds a
// metric in. Named by the same metric names the scoring pipeline emits.
type BenchmarkRange struct {
	Metric string  `json:"metric"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ProShooter is one professional shooter reference entry users can
// compare their analyses against.
type ProShooter struct {
	ID         string
	Name       string
	Team       string
	Position   string
	ImageURL   string
	Benchmarks []BenchmarkRange
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MetricComparison is one metric of a user analysis held against a pro
// shooter's benchmark band.
type MetricComparison struct {
	Metric     string  `json:"metric"`
	UserValue  float64 `json:"user_value"`
	ProMin     float64 `json:"pro_min"`
	ProMax     float64 `json:"pro_max"`
	Deviation  float64 `json:"deviation"`
	Similarity int     `json:"similarity"`
}

// ShooterComparison is the full comparison of one analysis against one
// pro shooter.
type ShooterComparison struct {
	ShooterID         string             `json:"shooter_id"`
	ShooterName       string             `json:"shooter_name"`
	AnalysisID        string             `json:"analysis_id"`
	Metrics           []MetricComparison `json:"metrics"`
	OverallSimilarity int                `json:"overall_similarity"`
}
