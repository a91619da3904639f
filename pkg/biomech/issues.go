package biomech

import (
	"fmt"
	"sort"

	"ShotFormGolang/internal/entity"
)

var severityRank = map[entity.IssueSeverity]int{
	entity.SeverityCritical: 0,
	entity.SeverityModerate: 1,
	entity.SeverityMinor:    2,
}

func severityForStatus(status entity.MetricStatus) (entity.IssueSeverity, bool) {
	switch status {
	case entity.StatusGood:
		return entity.SeverityMinor, true
	case entity.StatusWarning:
		return entity.SeverityModerate, true
	case entity.StatusCritical:
		return entity.SeverityCritical, true
	default:
		return "", false
	}
}

// IssueFromMetric builds the coaching issue for one non-optimal metric.
// The second return is false for optimal metrics, which raise no issue.
func IssueFromMetric(m entity.MetricScore, location string) (entity.FormIssue, bool) {
	severity, ok := severityForStatus(m.Status)
	if !ok {
		return entity.FormIssue{}, false
	}

	side := "high"
	if m.Value < m.OptimalMin {
		side = "low"
	}

	return entity.FormIssue{
		Title:    m.Name,
		Severity: severity,
		Location: location,
		Description: fmt.Sprintf("%s measured %.0f %s, %s of the optimal %.0f-%.0f range.",
			m.Name, m.Value, m.Unit, side, m.OptimalMin, m.OptimalMax),
	}, true
}

// Prioritize stable-sorts issues by severity (critical first, ties keep
// detection order) and attaches 1-based ranks and recommendations.
func Prioritize(issues []entity.FormIssue) []entity.PriorityIssue {
	sorted := make([]entity.FormIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return severityRank[sorted[i].Severity] < severityRank[sorted[j].Severity]
	})

	prioritized := make([]entity.PriorityIssue, 0, len(sorted))
	for i, issue := range sorted {
		prioritized = append(prioritized, entity.PriorityIssue{
			Rank:           i + 1,
			Title:          issue.Title,
			Description:    issue.Description,
			Severity:       issue.Severity,
			Location:       issue.Location,
			Recommendation: RecommendationFor(issue.Title),
		})
	}

	return prioritized
}

// FallbackRecommendation is returned for titles missing from the
// recommendation table. The lookup never fails an analysis.
const FallbackRecommendation = "Work with a coach to break down this part of your shot and build a consistent, repeatable routine."

var recommendations = map[string]string{
	MetricElbowAngle:     "Keep the shooting elbow tucked under the ball and aligned with the rim. Form-shoot close to the basket focusing on a 90-degree set point.",
	MetricKneeBend:       "Load the legs with an athletic knee bend before rising into the shot. Practice catch-and-shoot reps emphasizing a quick, consistent dip.",
	MetricHipAlignment:   "Stack shoulders over hips through the shot. Wall drills help keep the trunk tall instead of leaning back or folding forward.",
	MetricWristFollow:    "Finish with a full, relaxed wrist snap and hold the follow-through until the ball hits the rim.",
	MetricShoulderSquare: "Square both shoulders to the basket before the dip. Film yourself from the front to check for a dropped off-hand shoulder.",
	MetricReleaseHeight:  "Release the ball above the forehead at full extension. Shooting over a taller defender or a contest stick trains a higher release point.",
}

// RecommendationFor returns the canned coaching recommendation for an
// issue title, falling back to generic advice for unmapped titles.
func RecommendationFor(title string) string {
	if rec, ok := recommendations[title]; ok {
		return rec
	}
	return FallbackRecommendation
}
