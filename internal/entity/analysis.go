package entity

import "time"

// MetricStatus is the canonical four-tier classification used by every
// metric in the pipeline.
type MetricStatus string

const (
	StatusOptimal  MetricStatus = "optimal"
	StatusGood     MetricStatus = "good"
	StatusWarning  MetricStatus = "warning"
	StatusCritical MetricStatus = "critical"
)

// IssueSeverity orders coaching issues. Critical sorts first.
type IssueSeverity string

const (
	SeverityMinor    IssueSeverity = "minor"
	SeverityModerate IssueSeverity = "moderate"
	SeverityCritical IssueSeverity = "critical"
)

// FormCategory is the overall grade attached to one analysis.
type FormCategory string

const (
	CategoryExcellent        FormCategory = "EXCELLENT"
	CategoryGood             FormCategory = "GOOD"
	CategoryNeedsImprovement FormCategory = "NEEDS_IMPROVEMENT"
	CategoryCritical         FormCategory = "CRITICAL"
)

// AngleMeasurement is one computed joint angle with the keypoints that
// produced it and the biomechanically correct range.
type AngleMeasurement struct {
	Name       string       `json:"name"`
	Keypoints  [3]string    `json:"keypoints"`
	Degrees    int          `json:"degrees"`
	OptimalMin float64      `json:"optimal_min"`
	OptimalMax float64      `json:"optimal_max"`
	Status     MetricStatus `json:"status"`
}

// MetricScore is the unit of display and of scoring: one named
// measurement (angle or percentage) with its evaluated status.
type MetricScore struct {
	Name        string       `json:"name"`
	Value       float64      `json:"value"`
	OptimalMin  float64      `json:"optimal_min"`
	OptimalMax  float64      `json:"optimal_max"`
	Unit        string       `json:"unit"`
	Status      MetricStatus `json:"status"`
	Description string       `json:"description"`
}

// FormIssue is one detected deviation from optimal form.
type FormIssue struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    IssueSeverity `json:"severity"`
	Location    string        `json:"location"`
}

// PriorityIssue is a FormIssue ranked by severity with the coaching
// recommendation attached. Rank is the 1-based position after sorting.
type PriorityIssue struct {
	Rank           int           `json:"rank"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Severity       IssueSeverity `json:"severity"`
	Location       string        `json:"location"`
	Recommendation string        `json:"recommendation"`
}

// FormAnalysisResult is the aggregate output of one scoring run.
// TotalMetrics lets callers tell a score of 0 with no computable
// metrics (insufficient data) apart from genuinely poor form.
type FormAnalysisResult struct {
	Angles         []AngleMeasurement `json:"angles"`
	Metrics        []MetricScore      `json:"metrics"`
	Issues         []FormIssue        `json:"issues"`
	PriorityIssues []PriorityIssue    `json:"priority_issues"`
	OverallScore   int                `json:"overall_score"`
	TotalMetrics   int                `json:"total_metrics"`
	Category       FormCategory       `json:"category"`
}

// ShotContext is metadata about the shot extracted from the uploaded
// frame by the vision model. Best-effort; empty fields are fine.
type ShotContext struct {
	ShotType string `json:"shot_type"`
	Phase    string `json:"phase"`
	Handed   string `json:"handed"`
}

// Analysis is one persisted analysis run.
type Analysis struct {
	ID        string
	UserID    string
	MediaURL  string
	ShotType  string
	Result    FormAnalysisResult
	CreatedAt time.Time
	UpdatedAt time.Time
}
